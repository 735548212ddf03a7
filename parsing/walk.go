package parsing

import (
	"strconv"
	"strings"

	"github.com/NickyBoy89/classcheck/collector"
	"github.com/NickyBoy89/classcheck/keywords"
	"github.com/NickyBoy89/classcheck/nodeutil"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
)

// The method that acts as a class's destructor
const destructorName = "finalize"

type walker struct {
	source []byte
	emit   Emitter
	logger log.FieldLogger
	// Greater than zero while inside a method or constructor body
	bodyDepth int
}

// Walk visits every node under root in document order, emitting an event for
// each declaration it finds
func Walk(root *sitter.Node, source []byte, emit Emitter, options ...Option) error {
	w := &walker{
		source: source,
		emit:   emit,
		logger: log.StandardLogger(),
	}
	for _, option := range options {
		option(w)
	}
	return w.walk(root)
}

func (w *walker) walk(node *sitter.Node) error {
	if w.bodyDepth > 0 {
		return w.walkBody(node)
	}

	switch node.Type() {
	case "ERROR":
		w.parseError(node)
	case "interface_declaration":
		// Nothing inside an interface belongs to a class, so its body is not walked
		return w.emit(w.interfaceDeclaration(node))
	case "class_declaration":
		if err := w.emit(w.classDeclaration(node)); err != nil {
			return err
		}
		if body := node.ChildByFieldName("body"); body != nil {
			return w.walkChildren(body)
		}
		return nil
	case "field_declaration":
		return w.fieldDeclaration(node)
	case "method_declaration":
		name := w.nameOf(node)
		var ev collector.Event = collector.MethodDeclared{Name: name}
		if name == destructorName && parameterCount(node) == 0 {
			ev = collector.DestructorDeclared{Name: name}
		}
		if err := w.emit(ev); err != nil {
			return err
		}
		return w.methodBody(node)
	case "constructor_declaration":
		if err := w.emit(collector.ConstructorDeclared{Name: w.nameOf(node)}); err != nil {
			return err
		}
		return w.methodBody(node)
	case "block":
		// Instance and static initializers
		w.bodyDepth++
		defer func() { w.bodyDepth-- }()
		return w.walkChildren(node)
	case "enum_declaration", "record_declaration", "annotation_type_declaration":
		w.logger.WithFields(log.Fields{
			"kind": node.Type(),
			"name": w.nameOf(node),
		}).Debug("Skipping unsupported declaration")
		return nil
	}
	return w.walkChildren(node)
}

// methodBody walks the body of a method or constructor, which contributes
// nothing but integer output
func (w *walker) methodBody(node *sitter.Node) error {
	body := node.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	w.bodyDepth++
	defer func() { w.bodyDepth-- }()
	return w.walkChildren(body)
}

// walkBody visits a node inside a method body. Local and anonymous classes
// are skipped, since their members belong to neither the enclosing class nor
// a class of their own in the table
func (w *walker) walkBody(node *sitter.Node) error {
	switch node.Type() {
	case "ERROR":
		w.parseError(node)
	case "method_invocation":
		if value, ok := w.integerOutput(node); ok {
			if err := w.emit(collector.IntegerOutput{Value: value}); err != nil {
				return err
			}
		}
	case "class_body":
		w.logger.WithFields(log.Fields{
			"line": node.StartPoint().Row + 1,
		}).Debug("Skipping anonymous class")
		return nil
	case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration", "annotation_type_declaration":
		w.logger.WithFields(log.Fields{
			"kind": node.Type(),
			"name": w.nameOf(node),
		}).Debug("Skipping local declaration")
		return nil
	}
	return w.walkChildren(node)
}

func (w *walker) walkChildren(node *sitter.Node) error {
	for _, child := range nodeutil.Children(node) {
		if err := w.walk(child); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) parseError(node *sitter.Node) {
	w.logger.WithFields(log.Fields{
		"parsed": node.Content(w.source),
		"line":   node.StartPoint().Row + 1,
	}).Warn("Source parse error")
}

func (w *walker) nameOf(node *sitter.Node) string {
	if name := node.ChildByFieldName("name"); name != nil {
		return name.Content(w.source)
	}
	return ""
}

func (w *walker) interfaceDeclaration(node *sitter.Node) collector.InterfaceDeclared {
	decl := collector.InterfaceDeclared{Name: w.nameOf(node)}
	if body := node.ChildByFieldName("body"); body != nil {
		for _, method := range nodeutil.ChildrenOfType(body, "method_declaration") {
			decl.Methods = append(decl.Methods, w.nameOf(method))
		}
	}
	return decl
}

func (w *walker) classDeclaration(node *sitter.Node) collector.ClassDeclared {
	decl := collector.ClassDeclared{Name: w.nameOf(node)}

	// superclass: `extends Type`
	if superclass := node.ChildByFieldName("superclass"); superclass != nil && superclass.NamedChildCount() > 0 {
		decl.Parent = w.typeName(superclass.NamedChild(0))
	}

	// super_interfaces: `implements type_list`
	if interfaces := node.ChildByFieldName("interfaces"); interfaces != nil {
		for _, list := range nodeutil.ChildrenOfType(interfaces, "type_list") {
			for _, typ := range nodeutil.Children(list) {
				decl.Interfaces = append(decl.Interfaces, w.typeName(typ))
			}
		}
	}
	return decl
}

// A single field declaration can declare several variables, such as `int x, y;`
func (w *walker) fieldDeclaration(node *sitter.Node) error {
	var modifiers []string
	for _, child := range nodeutil.ChildrenOfType(node, "modifiers") {
		for _, modifier := range nodeutil.UnnamedChildren(child) {
			modifiers = append(modifiers, modifier.Type())
		}
	}
	visibility := keywords.Visibility(modifiers)

	var fieldType string
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		fieldType = typeNode.Content(w.source)
	}

	for _, declarator := range nodeutil.ChildrenOfType(node, "variable_declarator") {
		err := w.emit(collector.VariableDeclared{
			Name:       w.nameOf(declarator),
			Type:       fieldType,
			Visibility: visibility,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// typeName is the name a type is referred to by. Generic types drop their
// type arguments, so `Comparable<T>` names `Comparable`
func (w *walker) typeName(node *sitter.Node) string {
	if node.Type() == "generic_type" && node.NamedChildCount() > 0 {
		return node.NamedChild(0).Content(w.source)
	}
	return node.Content(w.source)
}

// integerOutput matches `System.out.println(<integer literal>)`
func (w *walker) integerOutput(node *sitter.Node) (int64, bool) {
	object := node.ChildByFieldName("object")
	if object == nil || object.Content(w.source) != "System.out" || w.nameOf(node) != "println" {
		return 0, false
	}

	arguments := node.ChildByFieldName("arguments")
	if arguments == nil || arguments.NamedChildCount() != 1 {
		return 0, false
	}

	literal := arguments.NamedChild(0)
	switch literal.Type() {
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal":
	default:
		return 0, false
	}

	text := strings.TrimRight(strings.ReplaceAll(literal.Content(w.source), "_", ""), "lL")
	value, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		w.logger.WithFields(log.Fields{
			"literal": literal.Content(w.source),
		}).Warn("Integer literal out of range")
		return 0, false
	}
	return value, true
}

func parameterCount(node *sitter.Node) int {
	parameters := node.ChildByFieldName("parameters")
	if parameters == nil {
		return 0
	}
	return int(parameters.NamedChildCount())
}

package symbol

// Table is the symbol table for one checked program. It maps interface and
// class names to their definitions, and remembers the order in which each name
// was first defined so that anything iterating over it is deterministic
//
// A Table only ever grows or overwrites; nothing is deleted from it
type Table struct {
	interfaces     map[string]*InterfaceDefinition
	interfaceOrder []string

	classes    map[string]*ClassDefinition
	classOrder []string
}

// NewTable returns an empty symbol table
func NewTable() *Table {
	return &Table{
		interfaces: make(map[string]*InterfaceDefinition),
		classes:    make(map[string]*ClassDefinition),
	}
}

// DefineInterface creates the interface `name` with the given method names,
// replacing any interface already defined under that name. It reports whether
// an earlier definition was replaced
func (t *Table) DefineInterface(name string, methods []string) bool {
	_, replaced := t.interfaces[name]
	if !replaced {
		t.interfaceOrder = append(t.interfaceOrder, name)
	}
	t.interfaces[name] = &InterfaceDefinition{
		name:    name,
		methods: append([]string{}, methods...),
	}
	return replaced
}

// DefineClass creates the class `name` with no methods and no variables. An
// empty parent means the class extends nothing. Redefining a class discards
// everything previously recorded for it, and the return value reports whether
// that happened
func (t *Table) DefineClass(name, parent string, interfaces []string) bool {
	_, replaced := t.classes[name]
	if !replaced {
		t.classOrder = append(t.classOrder, name)
	}
	class := &ClassDefinition{
		Name:      name,
		Parent:    parent,
		variables: make(map[string]string),
	}
	class.Interfaces = append(class.Interfaces, interfaces...)
	t.classes[name] = class
	return replaced
}

// RecordMethod appends a method, constructor, or destructor name to a class
func (t *Table) RecordMethod(className, methodName string) error {
	class, ok := t.classes[className]
	if !ok {
		return undefinedClass(className)
	}
	class.Methods = append(class.Methods, methodName)
	return nil
}

// RecordVariable sets the visibility of a variable in a class, overwriting
// the visibility of a variable that was already declared with the same name
func (t *Table) RecordVariable(className, varName, visibility string) error {
	class, ok := t.classes[className]
	if !ok {
		return undefinedClass(className)
	}
	class.setVariable(varName, visibility)
	return nil
}

// Interface looks up an interface by name
func (t *Table) Interface(name string) (*InterfaceDefinition, bool) {
	def, ok := t.interfaces[name]
	return def, ok
}

// Class looks up a class by name
func (t *Table) Class(name string) (*ClassDefinition, bool) {
	def, ok := t.classes[name]
	return def, ok
}

// Classes returns every class, in the order their names were first defined
func (t *Table) Classes() []*ClassDefinition {
	classes := make([]*ClassDefinition, len(t.classOrder))
	for ind, name := range t.classOrder {
		classes[ind] = t.classes[name]
	}
	return classes
}

// Interfaces returns every interface, in the order their names were first defined
func (t *Table) Interfaces() []*InterfaceDefinition {
	interfaces := make([]*InterfaceDefinition, len(t.interfaceOrder))
	for ind, name := range t.interfaceOrder {
		interfaces[ind] = t.interfaces[name]
	}
	return interfaces
}

func (t *Table) String() string {
	result := ""
	for _, def := range t.Interfaces() {
		result += def.String() + "\n"
	}
	for _, def := range t.Classes() {
		result += def.String() + "\n"
	}
	return result
}

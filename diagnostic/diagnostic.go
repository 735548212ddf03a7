// Package diagnostic defines the structured findings produced while checking a
// program, and the reporters that render them
package diagnostic

import (
	"encoding/json"
	"fmt"
)

// Kind identifies what a diagnostic is reporting
type Kind int

const (
	// UnknownParent means a class extends a class that was never declared
	UnknownParent Kind = iota
	// IncompleteInheritance means a class does not declare all of its parent's methods
	IncompleteInheritance
	// InheritanceOk means a class declares every method of its parent
	InheritanceOk
	// UnknownInterface means a class implements an interface that was never declared
	UnknownInterface
	// IncompleteInterface means a class does not declare all of an interface's methods
	IncompleteInterface
	// InterfaceOk means a class declares every method of an interface it implements
	InterfaceOk
	// PrivateVariableWarning flags a private member variable
	PrivateVariableWarning
	// Redefinition means a class or interface name was declared more than once,
	// and the earlier declaration was discarded
	Redefinition
)

var kindNames = map[Kind]string{
	UnknownParent:          "UnknownParent",
	IncompleteInheritance:  "IncompleteInheritance",
	InheritanceOk:          "InheritanceOk",
	UnknownInterface:       "UnknownInterface",
	IncompleteInterface:    "IncompleteInterface",
	InterfaceOk:            "InterfaceOk",
	PrivateVariableWarning: "PrivateVariableWarning",
	Redefinition:           "Redefinition",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes a kind by its name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind from the name MarshalText produces
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown diagnostic kind: %s", text)
}

// Severity is how serious a diagnostic is. No severity ever stops a check from
// running
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "ok"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// MarshalText encodes a severity the way String renders it
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic is a single finding about a class
type Diagnostic struct {
	Kind Kind
	// The class the finding is about, or for a redefinition, the redefined name
	Class string
	// The parent class, interface, or variable the finding refers to. For a
	// redefinition, this is either "class" or "interface"
	Target string
	// Missing method names, in the order the parent or interface declared them
	Missing []string
}

// Severity returns the severity of the diagnostic's kind
func (d Diagnostic) Severity() Severity {
	switch d.Kind {
	case InheritanceOk, InterfaceOk:
		return Info
	case PrivateVariableWarning, Redefinition:
		return Warning
	}
	return Error
}

// Message renders a human-readable description of the diagnostic
func (d Diagnostic) Message() string {
	switch d.Kind {
	case UnknownParent:
		return fmt.Sprintf("Parent class %s not found for child %s", d.Target, d.Class)
	case IncompleteInheritance:
		return fmt.Sprintf("Class %s does not fully inherit from %s; missing inherited methods: %v", d.Class, d.Target, d.Missing)
	case InheritanceOk:
		return fmt.Sprintf("Class %s successfully inherits from %s", d.Class, d.Target)
	case UnknownInterface:
		return fmt.Sprintf("Interface %s implemented by %s is not defined", d.Target, d.Class)
	case IncompleteInterface:
		return fmt.Sprintf("Class %s does not fully implement interface %s; missing interface methods: %v", d.Class, d.Target, d.Missing)
	case InterfaceOk:
		return fmt.Sprintf("Class %s fully implements interface %s", d.Class, d.Target)
	case PrivateVariableWarning:
		return fmt.Sprintf("Encapsulation warning: %s in %s is private", d.Target, d.Class)
	case Redefinition:
		return fmt.Sprintf("The %s %s was declared again; its earlier declaration was discarded", d.Target, d.Class)
	}
	return d.Kind.String()
}

func (d Diagnostic) String() string {
	return d.Severity().String() + ": " + d.Message()
}

// MarshalJSON includes the severity and the rendered message alongside the
// diagnostic's fields
func (d Diagnostic) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     Kind     `json:"kind"`
		Severity Severity `json:"severity"`
		Class    string   `json:"class"`
		Target   string   `json:"target"`
		Missing  []string `json:"missing,omitempty"`
		Message  string   `json:"message"`
	}{d.Kind, d.Severity(), d.Class, d.Target, d.Missing, d.Message()})
}

// NewUnknownParent reports that `child` extends `parent`, which was never defined
func NewUnknownParent(child, parent string) Diagnostic {
	return Diagnostic{Kind: UnknownParent, Class: child, Target: parent}
}

// NewIncompleteInheritance reports the parent's methods that `child` never declared
func NewIncompleteInheritance(child, parent string, missing []string) Diagnostic {
	return Diagnostic{Kind: IncompleteInheritance, Class: child, Target: parent, Missing: missing}
}

// NewInheritanceOk reports that `child` declares every method of `parent`
func NewInheritanceOk(child, parent string) Diagnostic {
	return Diagnostic{Kind: InheritanceOk, Class: child, Target: parent}
}

// NewUnknownInterface reports that `class` lists an interface that was never defined
func NewUnknownInterface(class, iface string) Diagnostic {
	return Diagnostic{Kind: UnknownInterface, Class: class, Target: iface}
}

// NewIncompleteInterface reports the interface methods that `class` never declared
func NewIncompleteInterface(class, iface string, missing []string) Diagnostic {
	return Diagnostic{Kind: IncompleteInterface, Class: class, Target: iface, Missing: missing}
}

// NewInterfaceOk reports that `class` declares every method of `iface`
func NewInterfaceOk(class, iface string) Diagnostic {
	return Diagnostic{Kind: InterfaceOk, Class: class, Target: iface}
}

// NewPrivateVariableWarning flags a private member variable of `class`
func NewPrivateVariableWarning(class, variable string) Diagnostic {
	return Diagnostic{Kind: PrivateVariableWarning, Class: class, Target: variable}
}

// NewRedefinition reports that `name` was declared again as a class or interface,
// with `declaration` naming which
func NewRedefinition(name, declaration string) Diagnostic {
	return Diagnostic{Kind: Redefinition, Class: name, Target: declaration}
}

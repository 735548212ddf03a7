package collector

import "fmt"

// Event is a single declaration seen while walking a program, in the order it
// appears in the source
type Event interface {
	fmt.Stringer
	event()
}

// InterfaceDeclared is an interface declaration and the names of the methods
// it requires
type InterfaceDeclared struct {
	Name    string
	Methods []string
}

// ClassDeclared opens a class. Every member event that follows belongs to this
// class, until the next ClassDeclared
type ClassDeclared struct {
	Name string
	// Empty when the class does not extend anything
	Parent     string
	Interfaces []string
}

// VariableDeclared is a member variable of the current class
type VariableDeclared struct {
	Name string
	// The declared type is carried along, but never checked
	Type       string
	Visibility string
}

// MethodDeclared is a method of the current class
type MethodDeclared struct {
	Name string
}

// ConstructorDeclared is a constructor of the current class
type ConstructorDeclared struct {
	Name string
}

// DestructorDeclared is a destructor of the current class
type DestructorDeclared struct {
	Name string
}

// IntegerOutput is a statement that prints an integer. It has no effect on the
// symbol table
type IntegerOutput struct {
	Value int64
}

func (InterfaceDeclared) event()   {}
func (ClassDeclared) event()       {}
func (VariableDeclared) event()    {}
func (MethodDeclared) event()      {}
func (ConstructorDeclared) event() {}
func (DestructorDeclared) event()  {}
func (IntegerOutput) event()       {}

func (e InterfaceDeclared) String() string {
	return fmt.Sprintf("interface %s %v", e.Name, e.Methods)
}

func (e ClassDeclared) String() string {
	s := "class " + e.Name
	if e.Parent != "" {
		s += " extends " + e.Parent
	}
	if len(e.Interfaces) > 0 {
		s += fmt.Sprintf(" implements %v", e.Interfaces)
	}
	return s
}

func (e VariableDeclared) String() string {
	return fmt.Sprintf("%s variable %s %s", e.Visibility, e.Type, e.Name)
}

func (e MethodDeclared) String() string {
	return "method " + e.Name
}

func (e ConstructorDeclared) String() string {
	return "constructor " + e.Name
}

func (e DestructorDeclared) String() string {
	return "destructor " + e.Name
}

func (e IntegerOutput) String() string {
	return fmt.Sprintf("output %d", e.Value)
}

package symbol

import (
	"errors"
	"fmt"
)

// ErrUndefinedClass is returned when a member is recorded for a class that
// has not been defined
var ErrUndefinedClass = errors.New("class is not defined")

func undefinedClass(name string) error {
	return fmt.Errorf("%w: %s", ErrUndefinedClass, name)
}

// InterfaceDefinition represents a declared interface. It is never modified
// after being defined
type InterfaceDefinition struct {
	name    string
	methods []string
}

// Name is the name of the interface
func (id InterfaceDefinition) Name() string {
	return id.name
}

// Methods returns the interface's method names in declaration order,
// duplicates included
func (id InterfaceDefinition) Methods() []string {
	return append([]string{}, id.methods...)
}

func (id InterfaceDefinition) String() string {
	return fmt.Sprintf("interface %s Methods: %v", id.name, id.methods)
}

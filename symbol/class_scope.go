package symbol

import (
	"fmt"
	"strings"
)

// ClassDefinition represents a single defined class, and the members declared in it
type ClassDefinition struct {
	Name string
	// The class that this class extends, empty if it extends nothing
	Parent string
	// Names of the interfaces the class claims to implement, in declaration order
	Interfaces []string
	// Methods, constructors, and destructors, in declaration order
	Methods []string

	// Maps a variable's name to its visibility
	variables map[string]string
	// Variable names in the order they were first declared
	variableOrder []string
}

// Variable is a single member variable of a class
type Variable struct {
	Name       string
	Visibility string
}

// HasParent reports whether the class extends another class
func (cd *ClassDefinition) HasParent() bool {
	return cd.Parent != ""
}

// Visibility returns the visibility a variable was declared with
func (cd *ClassDefinition) Visibility(name string) (string, bool) {
	visibility, ok := cd.variables[name]
	return visibility, ok
}

// Variables returns the class's variables in the order they were first declared
func (cd *ClassDefinition) Variables() []Variable {
	vars := make([]Variable, len(cd.variableOrder))
	for ind, name := range cd.variableOrder {
		vars[ind] = Variable{Name: name, Visibility: cd.variables[name]}
	}
	return vars
}

// FindVariable searches through the class's variables to find specific ones
func (cd *ClassDefinition) FindVariable() VariableFinder {
	cv := classVariableFinder(*cd)
	return &cv
}

func (cd *ClassDefinition) setVariable(name, visibility string) {
	if _, in := cd.variables[name]; !in {
		cd.variableOrder = append(cd.variableOrder, name)
	}
	cd.variables[name] = visibility
}

func (cd ClassDefinition) String() string {
	var header strings.Builder
	header.WriteString("class " + cd.Name)
	if cd.HasParent() {
		header.WriteString(" extends " + cd.Parent)
	}
	if len(cd.Interfaces) > 0 {
		header.WriteString(" implements " + strings.Join(cd.Interfaces, ", "))
	}
	return fmt.Sprintf("%s Methods: %v Variables: %v", header.String(), cd.Methods, cd.Variables())
}

type classVariableFinder ClassDefinition

func (cv *classVariableFinder) By(criteria func(v Variable) bool) []Variable {
	results := []Variable{}
	for _, variable := range (*ClassDefinition)(cv).Variables() {
		if criteria(variable) {
			results = append(results, variable)
		}
	}
	return results
}

func (cv *classVariableFinder) ByVisibility(visibility string) []Variable {
	return cv.By(func(v Variable) bool {
		return v.Visibility == visibility
	})
}

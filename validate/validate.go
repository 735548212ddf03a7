// Package validate checks a completed symbol table for inheritance, interface,
// and encapsulation problems
//
// None of the checks modify the table, and none of them stop early: every
// finding is returned as a diagnostic
package validate

import (
	"github.com/NickyBoy89/classcheck/diagnostic"
	"github.com/NickyBoy89/classcheck/keywords"
	"github.com/NickyBoy89/classcheck/symbol"
)

// Pass is a single sweep over a symbol table
type Pass struct {
	Name string
	Run  func(table *symbol.Table) []diagnostic.Diagnostic
}

// Passes are every validation pass, in the order they are run
var Passes = []Pass{
	{Name: "inheritance", Run: Inheritance},
	{Name: "interfaces", Run: Interfaces},
	{Name: "encapsulation", Run: Encapsulation},
}

// Result holds the diagnostics of each pass, one section per pass in the
// order the passes ran
type Result []diagnostic.Section

// Validate runs every pass in Passes over the table
func Validate(table *symbol.Table) Result {
	result := make(Result, len(Passes))
	for ind, pass := range Passes {
		result[ind] = diagnostic.Section{Name: pass.Name, Diagnostics: pass.Run(table)}
	}
	return result
}

// Sections groups the result by pass
func (r Result) Sections() []diagnostic.Section {
	return r
}

// All returns every diagnostic in pass order
func (r Result) All() []diagnostic.Diagnostic {
	var all []diagnostic.Diagnostic
	for _, section := range r {
		all = append(all, section.Diagnostics...)
	}
	return all
}

// HasErrors reports whether any pass produced an error
func (r Result) HasErrors() bool {
	for _, diag := range r.All() {
		if diag.Severity() == diagnostic.Error {
			return true
		}
	}
	return false
}

// Inheritance compares each class that extends another against its direct
// parent. The parent's own ancestors are not considered
func Inheritance(table *symbol.Table) []diagnostic.Diagnostic {
	var diags []diagnostic.Diagnostic
	for _, child := range table.Classes() {
		if !child.HasParent() {
			continue
		}

		parent, ok := table.Class(child.Parent)
		if !ok {
			diags = append(diags, diagnostic.NewUnknownParent(child.Name, child.Parent))
			continue
		}

		if missing := Missing(parent.Methods, child.Methods); len(missing) > 0 {
			diags = append(diags, diagnostic.NewIncompleteInheritance(child.Name, parent.Name, missing))
		} else {
			diags = append(diags, diagnostic.NewInheritanceOk(child.Name, parent.Name))
		}
	}
	return diags
}

// Interfaces checks every interface listed by every class. A class that lists
// the same interface twice is checked twice
func Interfaces(table *symbol.Table) []diagnostic.Diagnostic {
	var diags []diagnostic.Diagnostic
	for _, class := range table.Classes() {
		for _, name := range class.Interfaces {
			iface, ok := table.Interface(name)
			if !ok {
				diags = append(diags, diagnostic.NewUnknownInterface(class.Name, name))
				continue
			}

			if missing := Missing(iface.Methods(), class.Methods); len(missing) > 0 {
				diags = append(diags, diagnostic.NewIncompleteInterface(class.Name, name, missing))
			} else {
				diags = append(diags, diagnostic.NewInterfaceOk(class.Name, name))
			}
		}
	}
	return diags
}

// Encapsulation warns about every private member variable. Nothing else about
// visibility is checked
func Encapsulation(table *symbol.Table) []diagnostic.Diagnostic {
	var diags []diagnostic.Diagnostic
	for _, class := range table.Classes() {
		for _, variable := range class.FindVariable().ByVisibility(keywords.Private) {
			diags = append(diags, diagnostic.NewPrivateVariableWarning(class.Name, variable.Name))
		}
	}
	return diags
}

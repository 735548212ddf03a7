package validate

import (
	"reflect"
	"testing"

	"github.com/NickyBoy89/classcheck/collector"
	"github.com/NickyBoy89/classcheck/diagnostic"
	"github.com/NickyBoy89/classcheck/symbol"
	"github.com/go-test/deep"
)

func collect(t *testing.T, events ...collector.Event) *symbol.Table {
	t.Helper()
	table, _, err := collector.Collect(events)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestMissing(t *testing.T) {
	tests := []struct {
		required, declared, expected []string
	}{
		{[]string{"area"}, []string{"area"}, nil},
		{[]string{"area", "perimeter"}, []string{"area"}, []string{"perimeter"}},
		{[]string{"speak", "eat", "sleep"}, []string{"sleep"}, []string{"speak", "eat"}},
		{[]string{"a", "b", "a"}, nil, []string{"a", "b"}},
		{[]string{"a", "a"}, []string{"a"}, nil},
		{nil, []string{"a"}, nil},
	}

	for _, test := range tests {
		if actual := Missing(test.required, test.declared); !reflect.DeepEqual(actual, test.expected) {
			t.Errorf("Missing(%v, %v): Expected: %v, Actual: %v", test.required, test.declared, test.expected, actual)
		}
	}
}

func TestInterfaceImplemented(t *testing.T) {
	table := collect(t,
		collector.InterfaceDeclared{Name: "Shape", Methods: []string{"area"}},
		collector.ClassDeclared{Name: "Circle", Interfaces: []string{"Shape"}},
		collector.MethodDeclared{Name: "area"},
	)

	expected := []diagnostic.Diagnostic{diagnostic.NewInterfaceOk("Circle", "Shape")}
	if diff := deep.Equal(Interfaces(table), expected); diff != nil {
		t.Error(diff)
	}
}

func TestInterfaceMissingMethod(t *testing.T) {
	table := collect(t,
		collector.InterfaceDeclared{Name: "Shape", Methods: []string{"area", "perimeter"}},
		collector.ClassDeclared{Name: "Circle", Interfaces: []string{"Shape"}},
		collector.MethodDeclared{Name: "area"},
	)

	expected := []diagnostic.Diagnostic{
		diagnostic.NewIncompleteInterface("Circle", "Shape", []string{"perimeter"}),
	}
	if diff := deep.Equal(Interfaces(table), expected); diff != nil {
		t.Error(diff)
	}
}

func TestInheritanceMissingMethod(t *testing.T) {
	table := collect(t,
		collector.ClassDeclared{Name: "Animal"},
		collector.MethodDeclared{Name: "speak"},
		collector.MethodDeclared{Name: "eat"},
		collector.ClassDeclared{Name: "Dog", Parent: "Animal"},
		collector.MethodDeclared{Name: "eat"},
	)

	expected := []diagnostic.Diagnostic{
		diagnostic.NewIncompleteInheritance("Dog", "Animal", []string{"speak"}),
	}
	if diff := deep.Equal(Inheritance(table), expected); diff != nil {
		t.Error(diff)
	}
}

func TestUnknownParent(t *testing.T) {
	table := collect(t,
		collector.ClassDeclared{Name: "Dog", Parent: "Cat"},
		collector.MethodDeclared{Name: "bark"},
	)

	expected := []diagnostic.Diagnostic{diagnostic.NewUnknownParent("Dog", "Cat")}
	if diff := deep.Equal(Inheritance(table), expected); diff != nil {
		t.Error(diff)
	}
}

func TestInheritanceIsNotTransitive(t *testing.T) {
	table := collect(t,
		collector.ClassDeclared{Name: "Animal", Parent: "Organism"},
		collector.MethodDeclared{Name: "eat"},
		collector.ClassDeclared{Name: "Dog", Parent: "Animal"},
		collector.ConstructorDeclared{Name: "Dog"},
		collector.MethodDeclared{Name: "eat"},
		collector.ClassDeclared{Name: "Puppy", Parent: "Dog"},
		collector.MethodDeclared{Name: "eat"},
	)

	// Puppy does not declare the constructor Dog, and Dog is not affected by
	// Animal's missing parent
	expected := []diagnostic.Diagnostic{
		diagnostic.NewUnknownParent("Animal", "Organism"),
		diagnostic.NewInheritanceOk("Dog", "Animal"),
		diagnostic.NewIncompleteInheritance("Puppy", "Dog", []string{"Dog"}),
	}
	if diff := deep.Equal(Inheritance(table), expected); diff != nil {
		t.Error(diff)
	}
}

func TestUnknownInterfaceSkipsComparison(t *testing.T) {
	table := collect(t,
		collector.InterfaceDeclared{Name: "Shape", Methods: []string{"area"}},
		collector.ClassDeclared{Name: "Circle", Interfaces: []string{"Drawable", "Shape", "Drawable"}},
	)

	expected := []diagnostic.Diagnostic{
		diagnostic.NewUnknownInterface("Circle", "Drawable"),
		diagnostic.NewIncompleteInterface("Circle", "Shape", []string{"area"}),
		diagnostic.NewUnknownInterface("Circle", "Drawable"),
	}
	if diff := deep.Equal(Interfaces(table), expected); diff != nil {
		t.Error(diff)
	}
}

func TestInterfaceDeclaredAfterClass(t *testing.T) {
	table := collect(t,
		collector.ClassDeclared{Name: "Circle", Interfaces: []string{"Shape"}},
		collector.MethodDeclared{Name: "area"},
		collector.InterfaceDeclared{Name: "Shape", Methods: []string{"area"}},
	)

	expected := []diagnostic.Diagnostic{diagnostic.NewInterfaceOk("Circle", "Shape")}
	if diff := deep.Equal(Interfaces(table), expected); diff != nil {
		t.Error(diff)
	}
}

func TestEncapsulationIgnoresOrder(t *testing.T) {
	orders := [][]collector.Event{
		{
			collector.VariableDeclared{Name: "a", Type: "int", Visibility: "private"},
			collector.VariableDeclared{Name: "b", Type: "int", Visibility: "public"},
		},
		{
			collector.VariableDeclared{Name: "b", Type: "int", Visibility: "public"},
			collector.VariableDeclared{Name: "a", Type: "int", Visibility: "private"},
		},
	}

	expected := []diagnostic.Diagnostic{diagnostic.NewPrivateVariableWarning("Box", "a")}
	for _, order := range orders {
		events := append([]collector.Event{collector.ClassDeclared{Name: "Box"}}, order...)
		if diff := deep.Equal(Encapsulation(collect(t, events...)), expected); diff != nil {
			t.Error(diff)
		}
	}
}

func TestEncapsulationUsesLatestVisibility(t *testing.T) {
	table := collect(t,
		collector.ClassDeclared{Name: "Box"},
		collector.VariableDeclared{Name: "a", Type: "int", Visibility: "private"},
		collector.VariableDeclared{Name: "c", Type: "int", Visibility: "protected"},
		collector.VariableDeclared{Name: "a", Type: "int", Visibility: "public"},
	)

	if diags := Encapsulation(table); len(diags) != 0 {
		t.Errorf("Expected no warnings, Actual: %v", diags)
	}
}

func TestValidateRunsEveryPass(t *testing.T) {
	table := collect(t,
		collector.InterfaceDeclared{Name: "Shape", Methods: []string{"area"}},
		collector.ClassDeclared{Name: "Base"},
		collector.MethodDeclared{Name: "area"},
		collector.ClassDeclared{Name: "Circle", Parent: "Base", Interfaces: []string{"Shape"}},
		collector.VariableDeclared{Name: "radius", Type: "double", Visibility: "private"},
	)
	before := table.String()

	result := Validate(table)

	expected := Result{
		{Name: "inheritance", Diagnostics: []diagnostic.Diagnostic{diagnostic.NewIncompleteInheritance("Circle", "Base", []string{"area"})}},
		{Name: "interfaces", Diagnostics: []diagnostic.Diagnostic{diagnostic.NewIncompleteInterface("Circle", "Shape", []string{"area"})}},
		{Name: "encapsulation", Diagnostics: []diagnostic.Diagnostic{diagnostic.NewPrivateVariableWarning("Circle", "radius")}},
	}
	if diff := deep.Equal(result, expected); diff != nil {
		t.Error(diff)
	}
	if !result.HasErrors() {
		t.Errorf("Expected the result to have errors")
	}
	if len(result.All()) != 3 {
		t.Errorf("Expected: 3 diagnostics, Actual: %v", result.All())
	}

	var names []string
	for _, section := range result.Sections() {
		names = append(names, section.Name)
	}
	if !reflect.DeepEqual(names, []string{"inheritance", "interfaces", "encapsulation"}) {
		t.Errorf("Unexpected pass order: %v", names)
	}

	if after := table.String(); after != before {
		t.Errorf("Validation modified the table:\nbefore: %v\nafter: %v", before, after)
	}
}

func TestValidateOnlyWarnings(t *testing.T) {
	table := collect(t,
		collector.ClassDeclared{Name: "Box"},
		collector.VariableDeclared{Name: "a", Type: "int", Visibility: "private"},
	)

	if Validate(table).HasErrors() {
		t.Errorf("A private variable warning counted as an error")
	}
}

func TestValidateFollowsPasses(t *testing.T) {
	saved := Passes
	defer func() { Passes = saved }()

	var ran []string
	pass := func(name string) Pass {
		return Pass{Name: name, Run: func(*symbol.Table) []diagnostic.Diagnostic {
			ran = append(ran, name)
			return []diagnostic.Diagnostic{diagnostic.NewPrivateVariableWarning(name, "x")}
		}}
	}
	Passes = []Pass{pass("second"), pass("first")}

	result := Validate(symbol.NewTable())

	if !reflect.DeepEqual(ran, []string{"second", "first"}) {
		t.Errorf("Expected: %v, Actual: %v", []string{"second", "first"}, ran)
	}
	if len(result) != 2 || result[0].Name != "second" || result[1].Diagnostics[0].Class != "first" {
		t.Errorf("Unexpected result: %v", result)
	}
}

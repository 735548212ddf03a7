package symbol

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-test/deep"
)

func TestDefineClassResetsMembers(t *testing.T) {
	table := NewTable()
	if replaced := table.DefineClass("Dog", "Animal", []string{"Pet"}); replaced {
		t.Errorf("First definition of Dog reported a replacement")
	}
	if err := table.RecordMethod("Dog", "bark"); err != nil {
		t.Fatal(err)
	}
	if err := table.RecordVariable("Dog", "name", "private"); err != nil {
		t.Fatal(err)
	}

	if replaced := table.DefineClass("Dog", "", nil); !replaced {
		t.Errorf("Second definition of Dog did not report a replacement")
	}

	dog, ok := table.Class("Dog")
	if !ok {
		t.Fatal("Dog was not found after being redefined")
	}
	if len(dog.Methods) != 0 {
		t.Errorf("Expected: no methods, Actual: %v", dog.Methods)
	}
	if len(dog.Variables()) != 0 {
		t.Errorf("Expected: no variables, Actual: %v", dog.Variables())
	}
	if dog.HasParent() {
		t.Errorf("Expected the redefined Dog to have no parent, Actual: %v", dog.Parent)
	}
	if len(table.Classes()) != 1 {
		t.Errorf("Expected: 1 class, Actual: %v", len(table.Classes()))
	}
}

func TestRecordMethodPreservesDuplicates(t *testing.T) {
	table := NewTable()
	table.DefineClass("Shape", "", nil)
	for _, method := range []string{"Shape", "area", "area", "Destroy"} {
		if err := table.RecordMethod("Shape", method); err != nil {
			t.Fatal(err)
		}
	}

	shape, _ := table.Class("Shape")
	expected := []string{"Shape", "area", "area", "Destroy"}
	if !reflect.DeepEqual(shape.Methods, expected) {
		t.Errorf("Expected: %v, Actual: %v", expected, shape.Methods)
	}
}

func TestRecordVariableOverwritesVisibility(t *testing.T) {
	table := NewTable()
	table.DefineClass("Account", "", nil)
	table.RecordVariable("Account", "balance", "public")
	table.RecordVariable("Account", "owner", "protected")
	table.RecordVariable("Account", "balance", "private")

	account, _ := table.Class("Account")
	expected := []Variable{
		{Name: "balance", Visibility: "private"},
		{Name: "owner", Visibility: "protected"},
	}
	if diff := deep.Equal(account.Variables(), expected); diff != nil {
		t.Error(diff)
	}

	if private := account.FindVariable().ByVisibility("private"); len(private) != 1 || private[0].Name != "balance" {
		t.Errorf("Expected only balance to be private, Actual: %v", private)
	}
}

func TestRecordOnUndefinedClass(t *testing.T) {
	table := NewTable()
	if err := table.RecordMethod("Ghost", "haunt"); !errors.Is(err, ErrUndefinedClass) {
		t.Errorf("Expected: %v, Actual: %v", ErrUndefinedClass, err)
	}
	if err := table.RecordVariable("Ghost", "sheet", "public"); !errors.Is(err, ErrUndefinedClass) {
		t.Errorf("Expected: %v, Actual: %v", ErrUndefinedClass, err)
	}
}

func TestDefineInterfaceOverwrites(t *testing.T) {
	table := NewTable()
	methods := []string{"area", "perimeter", "area"}
	table.DefineInterface("Shape", methods)
	methods[0] = "changed"

	shape, ok := table.Interface("Shape")
	if !ok {
		t.Fatal("Shape was not defined")
	}
	if !reflect.DeepEqual(shape.Methods(), []string{"area", "perimeter", "area"}) {
		t.Errorf("Interface methods were not copied on definition: %v", shape.Methods())
	}

	if replaced := table.DefineInterface("Shape", []string{"draw"}); !replaced {
		t.Errorf("Redefining Shape did not report a replacement")
	}
	shape, _ = table.Interface("Shape")
	if !reflect.DeepEqual(shape.Methods(), []string{"draw"}) {
		t.Errorf("Expected: %v, Actual: %v", []string{"draw"}, shape.Methods())
	}

	if _, ok := table.Interface("Drawable"); ok {
		t.Errorf("Lookup of an undefined interface succeeded")
	}
}

func TestDefinitionOrder(t *testing.T) {
	table := NewTable()
	table.DefineClass("B", "", nil)
	table.DefineClass("A", "B", []string{"I", "J", "I"})
	table.DefineClass("B", "", nil)

	var names []string
	for _, class := range table.Classes() {
		names = append(names, class.Name)
	}
	if !reflect.DeepEqual(names, []string{"B", "A"}) {
		t.Errorf("Expected: %v, Actual: %v", []string{"B", "A"}, names)
	}

	a, _ := table.Class("A")
	if !reflect.DeepEqual(a.Interfaces, []string{"I", "J", "I"}) {
		t.Errorf("Expected: %v, Actual: %v", []string{"I", "J", "I"}, a.Interfaces)
	}
}

package symbol

// VariableFinder represents an object that can search through its variables
// for the ones matching a certain criteria
type VariableFinder interface {
	By(criteria func(v Variable) bool) []Variable
	ByVisibility(visibility string) []Variable
}

package keywords

import "golang.org/x/exp/slices"

// Visibilities that a member variable can be declared with
const (
	Private   = "private"
	Protected = "protected"
	Public    = "public"
	// The visibility of a member declared without any access modifier
	Package = "package"
)

// AccessModifiers are the modifiers that set a member's visibility
var AccessModifiers = []string{Private, Protected, Public}

// IsAccessModifier reports whether a modifier controls visibility
func IsAccessModifier(modifier string) bool {
	return slices.Contains(AccessModifiers, modifier)
}

// Visibility picks the visibility out of a member's modifiers, the first access
// modifier wins
func Visibility(modifiers []string) string {
	for _, modifier := range modifiers {
		if IsAccessModifier(modifier) {
			return modifier
		}
	}
	return Package
}

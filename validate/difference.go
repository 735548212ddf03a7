package validate

import "golang.org/x/exp/slices"

// Missing returns the names in `required` that never appear in `declared`.
// Only presence matters: a name declared once satisfies any number of
// requirements, and each missing name is listed once, in the order it was
// first required. A name that `required` repeats is still only listed once
func Missing(required, declared []string) []string {
	var missing []string
	for _, name := range required {
		if slices.Contains(declared, name) || slices.Contains(missing, name) {
			continue
		}
		missing = append(missing, name)
	}
	return missing
}

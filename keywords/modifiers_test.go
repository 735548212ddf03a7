package keywords

import "testing"

func TestVisibility(t *testing.T) {
	tests := []struct {
		modifiers []string
		expected  string
	}{
		{[]string{"private"}, Private},
		{[]string{"static", "final", "protected"}, Protected},
		{[]string{"public", "private"}, Public},
		{[]string{"static"}, Package},
		{nil, Package},
	}

	for _, test := range tests {
		if actual := Visibility(test.modifiers); actual != test.expected {
			t.Errorf("%v: Expected: %v, Actual: %v", test.modifiers, test.expected, actual)
		}
	}
}

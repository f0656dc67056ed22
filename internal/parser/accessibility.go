package parser

import "fmt"

// ParseAccessibility consumes a single leading +, - or # marker. Leading
// whitespace is not skipped.
func ParseAccessibility(s string) (Accessibility, string, error) {
	if s == "" {
		return 0, s, fmt.Errorf("end of input: %w", ErrAccessibility)
	}
	switch s[0] {
	case '+':
		return Public, s[1:], nil
	case '-':
		return Private, s[1:], nil
	case '#':
		return Protected, s[1:], nil
	}
	return 0, s, fmt.Errorf("found %q: %w", excerpt(s), ErrAccessibility)
}

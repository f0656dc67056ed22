package parser

import "fmt"

// ParseInterface parses `interface Name {`, one method per line, and the
// closing `}`.
func ParseInterface(s string) (Interface, string, error) {
	name, rest, err := header(s, "interface")
	if err != nil {
		return Interface{}, s, err
	}

	methods, rest, stopped := repeatMethods(rest)
	after, err := closeBrace(rest)
	if err != nil {
		return Interface{}, s, fmt.Errorf("interface %s: %w", name, unclosed(err, stopped, rest))
	}
	return Interface{Name: name, Methods: methods}, after, nil
}

// repeatMethods parses newline-terminated methods until one fails. The
// returned error is the one that stopped the repetition.
func repeatMethods(s string) ([]Method, string, error) {
	var methods []Method
	for {
		m, r, err := ParseMethod(s)
		if err != nil {
			return methods, s, err
		}
		r, ok := terminated(r)
		if !ok {
			return methods, s, fmt.Errorf("method %s: unexpected %q after ')': %w", m.Name, excerpt(r), ErrStructure)
		}
		methods = append(methods, m)
		s = r
	}
}

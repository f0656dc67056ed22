package parser

import (
	"fmt"
	"strings"
)

// ParseClass parses `class Name {`, newline-terminated fields, then
// newline-terminated methods, and the closing `}`. Fields must come before
// methods: once a line fails as a field the parser only accepts methods.
func ParseClass(s string) (Class, string, error) {
	name, rest, err := header(s, "class")
	if err != nil {
		return Class{}, s, err
	}

	var fields []Field
	var fieldErr error
	for {
		f, r, err := ParseField(rest)
		if err != nil {
			fieldErr = err
			break
		}
		r, ok := terminated(r)
		if !ok {
			fieldErr = fmt.Errorf("field %s is not followed by a newline: %w", f.Name, ErrStructure)
			break
		}
		fields = append(fields, f)
		rest = r
	}

	methods, rest, stopped := repeatMethods(rest)
	// A line without an argument list that stopped the fields was meant as a field.
	if len(methods) == 0 && !strings.Contains(line(trimLeft(rest)), "(") {
		stopped = fieldErr
	}

	after, err := closeBrace(rest)
	if err != nil {
		return Class{}, s, fmt.Errorf("class %s: %w", name, unclosed(err, stopped, rest))
	}
	return Class{Name: name, Fields: fields, Methods: methods}, after, nil
}

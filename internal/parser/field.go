package parser

import (
	"fmt"
	"strings"
)

// ParseField parses a class attribute line such as "- {static} count: int".
// The line terminator is left in the returned remainder.
func ParseField(s string) (Field, string, error) {
	in := s
	acc, rest, err := ParseAccessibility(trimLeft(s))
	if err != nil {
		return Field{}, in, fmt.Errorf("field: %w", err)
	}
	mod, rest := ParseModifier(trimInline(rest))
	name, rest, err := parseFieldName(trimInline(rest))
	if err != nil {
		return Field{}, in, err
	}
	typ, rest, err := parseFieldType(rest)
	if err != nil {
		return Field{}, in, fmt.Errorf("field %s: %w", name, err)
	}
	return Field{
		Name:          name,
		Type:          typ,
		Accessibility: acc,
		Modifier:      mod,
	}, rest, nil
}

// parseFieldName takes everything before the first colon on the line.
func parseFieldName(s string) (string, string, error) {
	i := strings.IndexByte(line(s), ':')
	if i < 0 {
		return "", s, fmt.Errorf("field %q has no type annotation: %w", excerpt(s), ErrType)
	}
	if err := checkName("field name", s[:i]); err != nil {
		return "", s, err
	}
	return s[:i], s[i:], nil
}

// parseFieldType expects ": Type" and takes the rest of the line.
func parseFieldType(s string) (string, string, error) {
	rest, err := literal(s, ":")
	if err != nil {
		return "", s, err
	}
	rest = trimInline(rest)
	l := line(rest)
	typ := strings.TrimSpace(l)
	if typ == "" {
		return "", s, fmt.Errorf("empty type annotation: %w", ErrType)
	}
	return typ, rest[len(l):], nil
}

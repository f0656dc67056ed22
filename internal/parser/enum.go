package parser

import (
	"fmt"
	"strings"
)

// ParseEnumVariant parses one variant line. The line terminator is left in
// the returned remainder.
func ParseEnumVariant(s string) (EnumVariant, string, error) {
	in := s
	s = trimLeft(s)
	l := line(s)
	name := strings.TrimSpace(l)
	if err := checkName("enum variant", name); err != nil {
		return EnumVariant{}, in, err
	}
	if strings.ContainsAny(name, "{}") {
		return EnumVariant{}, in, fmt.Errorf("enum variant %q contains a brace: %w", name, ErrName)
	}
	return EnumVariant{Name: name}, s[len(l):], nil
}

// ParseEnum parses `enum Name {`, one variant per line, and the closing `}`.
//
// The variant list ends at the first line that is not a valid variant. A
// malformed variant therefore fails the enum unless `}` follows it.
func ParseEnum(s string) (Enum, string, error) {
	name, rest, err := header(s, "enum")
	if err != nil {
		return Enum{}, s, err
	}

	var variants []EnumVariant
	var stopped error
	for {
		v, r, err := ParseEnumVariant(rest)
		if err != nil {
			stopped = err
			break
		}
		r, ok := terminated(r)
		if !ok {
			stopped = fmt.Errorf("enum variant %s is not followed by a newline: %w", v.Name, ErrStructure)
			break
		}
		variants = append(variants, v)
		rest = r
	}

	after, err := closeBrace(rest)
	if err != nil {
		return Enum{}, s, fmt.Errorf("enum %s: %w", name, unclosed(err, stopped, rest))
	}
	return Enum{Name: name, Variants: variants}, after, nil
}

// unclosed picks the error to report when the closing brace is missing. The
// member error is only meaningful when the repetition stopped on a line with
// content; at the end of input the brace itself is what is missing.
func unclosed(braceErr, memberErr error, rest string) error {
	if memberErr == nil || trimLeft(rest) == "" {
		return braceErr
	}
	return memberErr
}

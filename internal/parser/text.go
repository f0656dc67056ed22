package parser

import (
	"fmt"
	"strings"
	"unicode"
)

// trimLeft skips all leading whitespace, newlines included.
func trimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// trimInline skips leading blanks without leaving the current line.
func trimInline(s string) string {
	return strings.TrimLeft(s, " \t\r")
}

// line returns s up to, not including, the first newline.
func line(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

func checkName(what, name string) error {
	if name == "" {
		return fmt.Errorf("%s is empty: %w", what, ErrName)
	}
	if hasSpace(name) {
		return fmt.Errorf("%s %q contains whitespace: %w", what, name, ErrName)
	}
	return nil
}

func literal(s, lit string) (string, error) {
	if !strings.HasPrefix(s, lit) {
		return s, fmt.Errorf("expected %q at %q: %w", lit, excerpt(s), ErrStructure)
	}
	return s[len(lit):], nil
}

// token takes characters up to the first whitespace.
func token(s string) (string, string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// header parses `<keyword> Name {` and returns the name.
func header(s, keyword string) (string, string, error) {
	rest, err := literal(s, keyword+" ")
	if err != nil {
		return "", s, err
	}
	name, rest := token(rest)
	if err := checkName(keyword+" name", name); err != nil {
		return "", s, err
	}
	rest, err = literal(rest, " {")
	if err != nil {
		l := line(rest)
		if i := strings.IndexByte(l, '{'); i >= 0 && strings.TrimSpace(l[:i]) != "" {
			full := name + strings.TrimRight(l[:i], " \t")
			return "", s, fmt.Errorf("%s name %q contains whitespace: %w", keyword, full, ErrName)
		}
		return "", s, fmt.Errorf("%s %s: %w", keyword, name, err)
	}
	return name, rest, nil
}

// closeBrace consumes the `}` ending an element body, skipping whitespace before it.
func closeBrace(s string) (string, error) {
	return literal(trimLeft(s), "}")
}

// terminated consumes the newline ending a member line.
func terminated(s string) (string, bool) {
	if strings.HasPrefix(s, "\n") {
		return s[1:], true
	}
	return s, false
}

func excerpt(s string) string {
	l := line(s)
	if len(l) > 40 {
		return l[:40] + "..."
	}
	return l
}

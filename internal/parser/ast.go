package parser

import (
	"errors"
	"fmt"
)

// Layer 1: parse results. All string fields are substrings of the parsed input.

type Accessibility int

const (
	Public Accessibility = iota
	Private
	Protected
)

func (a Accessibility) String() string {
	switch a {
	case Public:
		return "public"
	case Private:
		return "private"
	case Protected:
		return "protected"
	}
	return fmt.Sprintf("Accessibility(%d)", int(a))
}

// Symbol returns the marker used in the notation: +, - or #.
func (a Accessibility) Symbol() string {
	switch a {
	case Private:
		return "-"
	case Protected:
		return "#"
	}
	return "+"
}

func (a Accessibility) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

type Modifier int

const (
	NoModifier Modifier = iota
	Static
	Abstract
	Virtual
	Constructor
)

func (m Modifier) String() string {
	switch m {
	case NoModifier:
		return "none"
	case Static:
		return "static"
	case Abstract:
		return "abstract"
	case Virtual:
		return "virtual"
	case Constructor:
		return "ctor"
	}
	return fmt.Sprintf("Modifier(%d)", int(m))
}

// Token returns the bracketed marker, e.g. "{static}". Empty for NoModifier.
func (m Modifier) Token() string {
	if m == NoModifier {
		return ""
	}
	return "{" + m.String() + "}"
}

func (m Modifier) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

type Field struct {
	Name          string        `json:"name"`
	Type          string        `json:"type"`
	Accessibility Accessibility `json:"accessibility"`
	Modifier      Modifier      `json:"modifier"`
}

type MethodArgument struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type Method struct {
	Name          string           `json:"name"`
	ReturnType    string           `json:"return_type,omitempty"`
	Accessibility Accessibility    `json:"accessibility"`
	Modifier      Modifier         `json:"modifier"`
	Arguments     []MethodArgument `json:"arguments,omitempty"`
}

type EnumVariant struct {
	Name string `json:"name"`
}

type Enum struct {
	Name     string        `json:"name"`
	Variants []EnumVariant `json:"variants,omitempty"`
}

type Interface struct {
	Name    string   `json:"name"`
	Methods []Method `json:"methods,omitempty"`
}

type Class struct {
	Name    string   `json:"name"`
	Fields  []Field  `json:"fields,omitempty"`
	Methods []Method `json:"methods,omitempty"`
}

type Document struct {
	Classes    []Class     `json:"classes"`
	Interfaces []Interface `json:"interfaces"`
	Enums      []Enum      `json:"enums"`
}

// ParseError describes one malformed top-level element.
type ParseError struct {
	Line    int    // 1-based line of the element's opening line
	Element string // class, interface or enum
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Failure categories reported by the grammar rules. Match with errors.Is.
var (
	ErrAccessibility = errors.New("expected accessibility marker (+, - or #)")
	ErrName          = errors.New("malformed name")
	ErrType          = errors.New("missing type")
	ErrStructure     = errors.New("structural mismatch")
)

package parser

import (
	"fmt"
	"strings"
)

// ParseMethodArgument parses one "Type name" pair. The name ends at the first
// comma or closing parenthesis, which is left in the remainder.
func ParseMethodArgument(s string) (MethodArgument, string, error) {
	in := s
	s = trimInline(s)
	l := line(s)
	end := strings.IndexAny(l, ",)")
	if end < 0 {
		return MethodArgument{}, in, fmt.Errorf("argument %q is not closed by ',' or ')': %w", excerpt(s), ErrStructure)
	}
	sp := strings.IndexByte(l[:end], ' ')
	if sp < 0 {
		return MethodArgument{}, in, fmt.Errorf("argument %q has no type: %w", l[:end], ErrType)
	}
	name := l[sp+1 : end]
	if err := checkName("argument name", name); err != nil {
		return MethodArgument{}, in, err
	}
	return MethodArgument{Name: name, Type: l[:sp]}, s[end:], nil
}

// ParseMethodArguments parses the arguments between a method's parentheses,
// stopping in front of the closing ')'. An empty list is valid.
func ParseMethodArguments(s string) ([]MethodArgument, string, error) {
	in := s
	var args []MethodArgument
	rest := trimInline(s)
	for !strings.HasPrefix(rest, ")") {
		if strings.HasPrefix(rest, ",") {
			rest = trimInline(rest[1:])
		}
		arg, r, err := ParseMethodArgument(rest)
		if err != nil {
			return nil, in, err
		}
		args = append(args, arg)
		rest = trimInline(r)
	}
	return args, rest, nil
}

// ParseMethod parses a method line such as "+ {static} void main(String[] args)".
// The line terminator is left in the returned remainder.
func ParseMethod(s string) (Method, string, error) {
	in := s
	acc, rest, err := ParseAccessibility(trimLeft(s))
	if err != nil {
		return Method{}, in, fmt.Errorf("method: %w", err)
	}
	mod, rest := ParseModifier(trimInline(rest))
	rest = trimInline(rest)

	open := strings.IndexByte(line(rest), '(')
	if open < 0 {
		return Method{}, in, fmt.Errorf("method %q has no argument list: %w", excerpt(rest), ErrStructure)
	}
	var returnType, name string
	if sp := strings.IndexByte(rest[:open], ' '); sp >= 0 {
		returnType = rest[:sp]
		name = trimInline(rest[sp:open])
	} else {
		name = rest[:open]
	}
	if err := checkName("method name", name); err != nil {
		return Method{}, in, err
	}
	if returnType == "" && mod != Constructor {
		return Method{}, in, fmt.Errorf("method %s has no return type: %w", name, ErrType)
	}

	args, rest, err := ParseMethodArguments(rest[open+1:])
	if err != nil {
		return Method{}, in, fmt.Errorf("method %s: %w", name, err)
	}
	rest, err = literal(rest, ")")
	if err != nil {
		return Method{}, in, fmt.Errorf("method %s: %w", name, err)
	}
	return Method{
		Name:          name,
		ReturnType:    returnType,
		Accessibility: acc,
		Modifier:      mod,
		Arguments:     args,
	}, trimInline(rest), nil
}

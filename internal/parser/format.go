package parser

import "strings"

// String renders the field in diagram notation, e.g. "- {static} count: int".
func (f Field) String() string {
	var b strings.Builder
	writePrefix(&b, f.Accessibility, f.Modifier)
	b.WriteString(f.Name)
	b.WriteString(": ")
	b.WriteString(f.Type)
	return b.String()
}

func (a MethodArgument) String() string {
	return a.Type + " " + a.Name
}

// String renders the method in diagram notation, e.g. "+ void setName(String name)".
func (m Method) String() string {
	var b strings.Builder
	writePrefix(&b, m.Accessibility, m.Modifier)
	if m.ReturnType != "" {
		b.WriteString(m.ReturnType)
		b.WriteByte(' ')
	}
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, arg := range m.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

func writePrefix(b *strings.Builder, acc Accessibility, mod Modifier) {
	b.WriteString(acc.Symbol())
	b.WriteByte(' ')
	if mod != NoModifier {
		b.WriteString(mod.Token())
		b.WriteByte(' ')
	}
}

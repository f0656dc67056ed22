package parser

import (
	"strings"
)

// ParsedFile is the Layer 2 application model extracted from the AST.
type ParsedFile struct {
	Name     string
	Elements []ParsedElement
	Errors   []ParseError
}

// ParsedElement is a class, interface or enum flattened for storage and display.
type ParsedElement struct {
	Kind    string // class, interface, enum
	Name    string
	Members []ParsedMember
}

// ParsedMember is a field, method or enum variant.
type ParsedMember struct {
	Kind          string // field, method, variant
	Name          string
	Type          string // field type or method return type
	Accessibility string // empty for variants
	Modifier      string // empty for variants and unmodified members
	Signature     string // the member rendered back into diagram notation
}

// Transform converts a Layer 1 Document into a Layer 2 ParsedFile. Elements
// are ordered classes first, then interfaces, then enums.
func Transform(doc *Document, filename string, errors []ParseError) *ParsedFile {
	pf := &ParsedFile{
		Name:   filenameWithoutExt(filename),
		Errors: errors,
	}

	if doc == nil {
		return pf
	}

	for _, c := range doc.Classes {
		el := ParsedElement{Kind: "class", Name: c.Name}
		for _, f := range c.Fields {
			el.Members = append(el.Members, fieldMember(f))
		}
		for _, m := range c.Methods {
			el.Members = append(el.Members, methodMember(m))
		}
		pf.Elements = append(pf.Elements, el)
	}

	for _, i := range doc.Interfaces {
		el := ParsedElement{Kind: "interface", Name: i.Name}
		for _, m := range i.Methods {
			el.Members = append(el.Members, methodMember(m))
		}
		pf.Elements = append(pf.Elements, el)
	}

	for _, e := range doc.Enums {
		el := ParsedElement{Kind: "enum", Name: e.Name}
		for _, v := range e.Variants {
			el.Members = append(el.Members, ParsedMember{
				Kind:      "variant",
				Name:      v.Name,
				Signature: v.Name,
			})
		}
		pf.Elements = append(pf.Elements, el)
	}

	return pf
}

func fieldMember(f Field) ParsedMember {
	return ParsedMember{
		Kind:          "field",
		Name:          f.Name,
		Type:          f.Type,
		Accessibility: f.Accessibility.String(),
		Modifier:      modifierName(f.Modifier),
		Signature:     f.String(),
	}
}

func methodMember(m Method) ParsedMember {
	return ParsedMember{
		Kind:          "method",
		Name:          m.Name,
		Type:          m.ReturnType,
		Accessibility: m.Accessibility.String(),
		Modifier:      modifierName(m.Modifier),
		Signature:     m.String(),
	}
}

func modifierName(m Modifier) string {
	if m == NoModifier {
		return ""
	}
	return m.String()
}

func filenameWithoutExt(filename string) string {
	name := filename
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[:idx]
	}
	return name
}

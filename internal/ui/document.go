package ui

import (
	"fmt"
	"io"

	"github.com/chriserin/puml/internal/parser"
)

// Document prints a parsed diagram as an indented tree.
func Document(w io.Writer, doc *parser.Document) {
	for _, c := range doc.Classes {
		ShowHeader(w, "class", c.Name, fmt.Sprintf("%d fields, %d methods", len(c.Fields), len(c.Methods)))
		for _, f := range c.Fields {
			MemberLine(w, f.String())
		}
		for _, m := range c.Methods {
			MemberLine(w, m.String())
		}
	}
	for _, i := range doc.Interfaces {
		ShowHeader(w, "interface", i.Name, fmt.Sprintf("%d methods", len(i.Methods)))
		for _, m := range i.Methods {
			MemberLine(w, m.String())
		}
	}
	for _, e := range doc.Enums {
		ShowHeader(w, "enum", e.Name, fmt.Sprintf("%d variants", len(e.Variants)))
		for _, v := range e.Variants {
			MemberLine(w, v.Name)
		}
	}
}

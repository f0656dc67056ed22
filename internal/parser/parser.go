package parser

import (
	"strings"
)

// Parse scans a diagram line by line and parses every class, interface and
// enum it finds. Lines that do not start with one of those keywords are
// skipped.
//
// A malformed element is recorded as a ParseError and scanning resumes at the
// next '}'. If any element failed, Parse returns a nil Document and all
// errors; otherwise it returns the Document and the unconsumed trailing text.
func Parse(content string) (string, *Document, []ParseError) {
	var errors []ParseError
	doc := &Document{}

	rest := trimLeft(content)
	for {
		i := strings.IndexByte(rest, '\n')
		if i < 0 {
			break
		}
		line := rest[:i]

		switch {
		case strings.HasPrefix(line, "class"):
			rest = parseElement(content, rest, "class", ParseClass, &doc.Classes, &errors)
		case strings.HasPrefix(line, "interface"):
			rest = parseElement(content, rest, "interface", ParseInterface, &doc.Interfaces, &errors)
		case strings.HasPrefix(line, "enum"):
			rest = parseElement(content, rest, "enum", ParseEnum, &doc.Enums, &errors)
		default:
			rest = rest[i:]
		}
		rest = trimLeft(rest)
	}

	if len(errors) > 0 {
		return "", nil, errors
	}
	return rest, doc, nil
}

// parseElement runs one element parser at the start of rest. On failure it
// records the error and skips to the next '}', or to the end of input.
func parseElement[T any](content, rest, kind string, parse func(string) (T, string, error), results *[]T, errors *[]ParseError) string {
	elem, after, err := parse(rest)
	if err == nil {
		*results = append(*results, elem)
		return after
	}

	*errors = append(*errors, ParseError{
		Line:    lineNumber(content, rest),
		Element: kind,
		Message: err.Error(),
	})
	if i := strings.IndexByte(rest, '}'); i >= 0 {
		return rest[i:]
	}
	return ""
}

// lineNumber returns the 1-based line at which rest starts within content.
func lineNumber(content, rest string) int {
	return strings.Count(content[:len(content)-len(rest)], "\n") + 1
}

// Messages returns the description of each error, in order.
func Messages(errs []ParseError) []string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return msgs
}

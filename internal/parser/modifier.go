package parser

import "strings"

var modifierTokens = []struct {
	token    string
	modifier Modifier
}{
	{"{static}", Static},
	{"{abstract}", Abstract},
	{"{virtual}", Virtual},
	{"{ctor}", Constructor},
}

// ParseModifier consumes an optional bracketed modifier. It never fails;
// without a recognized token it returns NoModifier and s unchanged.
func ParseModifier(s string) (Modifier, string) {
	for _, m := range modifierTokens {
		if strings.HasPrefix(s, m.token) {
			return m.modifier, s[len(m.token):]
		}
	}
	return NoModifier, s
}

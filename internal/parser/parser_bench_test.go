package parser

import (
	"fmt"
	"strings"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&sb, "class Clase%d {\n    - campo: int\n    + void metodo(String a, int b)\n}\n", i)
	}
	content := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, errs := Parse(content)
		if len(errs) > 0 {
			b.Fatal(errs)
		}
	}
}

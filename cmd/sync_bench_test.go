package cmd

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chriserin/puml/internal/config"
)

func generateDiagram(name string, classCount int) string {
	var buf bytes.Buffer
	buf.WriteString("@startuml\n")
	for i := 1; i <= classCount; i++ {
		fmt.Fprintf(&buf, "class %s%d {\n", name, i)
		fmt.Fprintf(&buf, "    - id%d: int\n", i)
		fmt.Fprintf(&buf, "    # {static} nombre%d: String\n", i)
		fmt.Fprintf(&buf, "    + {ctor} %s%d()\n", name, i)
		fmt.Fprintf(&buf, "    + void procesar%d(String entrada, int veces)\n", i)
		buf.WriteString("}\n\n")
	}
	fmt.Fprintf(&buf, "enum %sEstado {\n    ACTIVO\n    INACTIVO\n}\n", name)
	buf.WriteString("@enduml\n")
	return buf.String()
}

func setupBenchProject(b *testing.B, fileCount, classesPerFile int) {
	b.Helper()
	dir := b.TempDir()
	orig, err := os.Getwd()
	require.NoError(b, err)
	require.NoError(b, os.Chdir(dir))
	b.Cleanup(func() { os.Chdir(orig) })

	var buf bytes.Buffer
	require.NoError(b, RunInit(&buf))

	for i := 0; i < fileCount; i++ {
		name := fmt.Sprintf("Modulo%d", i)
		content := generateDiagram(name, classesPerFile)
		require.NoError(b, os.WriteFile(fmt.Sprintf("modulo_%d.puml", i), []byte(content), 0o644))
	}
}

func benchmarkSync(b *testing.B, fileCount, classesPerFile int) {
	setupBenchProject(b, fileCount, classesPerFile)
	cfg := config.DefaultConfig()
	var buf bytes.Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		require.NoError(b, RunSync(&buf, cfg, nil))
	}
}

// BenchmarkSync_Small: 5 files, 10 classes each
func BenchmarkSync_Small(b *testing.B) {
	benchmarkSync(b, 5, 10)
}

// BenchmarkSync_Medium: 20 files, 20 classes each
func BenchmarkSync_Medium(b *testing.B) {
	benchmarkSync(b, 20, 20)
}

// BenchmarkSync_Large: 50 files, 50 classes each
func BenchmarkSync_Large(b *testing.B) {
	benchmarkSync(b, 50, 50)
}

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runList(t *testing.T, kind string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunList(&buf, kind))
	return buf.String()
}

func TestList_AllElements(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeDiagram(t, "carros.puml", carrosDiagram)
	runSync(t)

	out := runList(t, "")

	assert.Contains(t, out, "ICarro")
	assert.Contains(t, out, "Carro")
	assert.Contains(t, out, "Color")
	assert.Contains(t, out, "carros.puml")
}

func TestList_FilterByKind(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeDiagram(t, "carros.puml", carrosDiagram)
	runSync(t)

	out := runList(t, "enum")

	assert.Contains(t, out, "Color")
	assert.NotContains(t, out, "ICarro")
}

func TestList_UnknownKind(t *testing.T) {
	inTempDir(t)
	runInit(t)

	var buf bytes.Buffer
	assert.Error(t, RunList(&buf, "struct"))
}

func TestList_SortedByFilePath(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeDiagram(t, "b.puml", "class Beta {\n}\n")
	writeDiagram(t, "a.puml", "class Alfa {\n}\n")
	runSync(t)

	out := runList(t, "")

	alfa := strings.Index(out, "Alfa")
	beta := strings.Index(out, "Beta")
	require.True(t, alfa >= 0 && beta >= 0)
	assert.True(t, alfa < beta, "a.puml elements should appear first")
}

func TestList_ColumnsAligned(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeDiagram(t, "carros.puml", carrosDiagram)
	runSync(t)

	out := runList(t, "")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	col := strings.Index(lines[0], "carros.puml")
	for _, line := range lines[1:] {
		assert.Equal(t, col, strings.Index(line, "carros.puml"))
	}
}

func TestList_MemberCounts(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeDiagram(t, "carros.puml", carrosDiagram)
	runSync(t)

	out := runList(t, "class")

	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), " 3"), out)
}

func TestList_EmptyWhenNothingSynced(t *testing.T) {
	inTempDir(t)
	runInit(t)

	assert.Empty(t, runList(t, ""))
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClass_FieldsAndMethods(t *testing.T) {
	input := `class VentanaPrograma {
    - analizador: AnalizadorEquipos
    # {static} instancias: int
    + {ctor} VentanaPrograma()
    + {static} void main(String[] args)
    + {abstract} AccionUsuario preguntarUsuario()
}
`
	c, rest, err := ParseClass(input)
	require.NoError(t, err)
	assert.Equal(t, "\n", rest)
	assert.Equal(t, "VentanaPrograma", c.Name)
	assert.Equal(t, []Field{
		{Name: "analizador", Type: "AnalizadorEquipos", Accessibility: Private},
		{Name: "instancias", Type: "int", Accessibility: Protected, Modifier: Static},
	}, c.Fields)
	require.Len(t, c.Methods, 3)
	assert.Equal(t, Method{Name: "VentanaPrograma", Accessibility: Public, Modifier: Constructor}, c.Methods[0])
	assert.Equal(t, Method{
		Name:          "main",
		ReturnType:    "void",
		Accessibility: Public,
		Modifier:      Static,
		Arguments:     []MethodArgument{{Name: "args", Type: "String[]"}},
	}, c.Methods[1])
	assert.Equal(t, "AccionUsuario", c.Methods[2].ReturnType)
	assert.Equal(t, Abstract, c.Methods[2].Modifier)
}

func TestParseClass_OnlyFields(t *testing.T) {
	c, rest, err := ParseClass("class Punto {\n  - x: int\n  - y: int\n}")
	require.NoError(t, err)
	assert.Len(t, c.Fields, 2)
	assert.Empty(t, c.Methods)
	assert.Equal(t, "", rest)
}

func TestParseClass_Empty(t *testing.T) {
	c, _, err := ParseClass("class Vacia {\n}\n")
	require.NoError(t, err)
	assert.Equal(t, "Vacia", c.Name)
	assert.Empty(t, c.Fields)
	assert.Empty(t, c.Methods)
}

func TestParseClass_FieldAfterMethodFails(t *testing.T) {
	input := `class Equipo {
    - nombre: String
    + String getNombre()
    - goles: int
}
`
	_, rest, err := ParseClass(input)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStructure)
	assert.Equal(t, input, rest)
}

func TestParseClass_NameWithSpaceFails(t *testing.T) {
	_, _, err := ParseClass("class Ventana Programa {\n}\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrName)
	assert.Contains(t, err.Error(), "Ventana Programa")
}

func TestParseClass_MalformedFieldName(t *testing.T) {
	input := "class Roto {\n    - a b: int\n}\n"
	_, rest, err := ParseClass(input)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrName)
	assert.Contains(t, err.Error(), `"a b"`)
	assert.Equal(t, input, rest)
}

func TestParseClass_MalformedMethodAfterFields(t *testing.T) {
	_, _, err := ParseClass("class Roto {\n    - a: int\n    + void mal formado()\n}\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrName)
	assert.Contains(t, err.Error(), "mal formado")
}

func TestParseClass_MalformedMemberReported(t *testing.T) {
	input := "class Equipo {\n    - nombre Equipo: String\n}\n"
	_, _, err := ParseClass(input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class Equipo")
}

func TestParseClass_MissingBrace(t *testing.T) {
	for _, input := range []string{
		"class Equipo {\n    - nombre: String\n",
		"class Equipo {\n    - nombre: String\n    + void jugar()\n\n",
		"class Equipo {\n",
	} {
		_, rest, err := ParseClass(input)
		require.Error(t, err, input)
		assert.ErrorIs(t, err, ErrStructure, input)
		assert.Equal(t, input, rest, input)
	}
}

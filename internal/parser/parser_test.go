package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ventanaDiagram = `class VentanaPrograma {
    - analizador: AnalizadorEquipos
    + {ctor} VentanaPrograma()
    + {static} void main(String[] args)
    + {abstract} AccionUsuario preguntarUsuario()
}

enum AccionUsuario {
    SALIR
    TOTAL_GOLES
    TOTAL_TIROS_ESQUINA
    TOTAL_TARJETAS_AMARILLAS
    TOTAL_TARJETAS_ROJAS
}
`

func TestParse_ClassAndEnum(t *testing.T) {
	rest, doc, errors := Parse(ventanaDiagram)
	require.Empty(t, errors)
	require.NotNil(t, doc)
	assert.Equal(t, "", rest)

	require.Len(t, doc.Classes, 1)
	c := doc.Classes[0]
	assert.Equal(t, "VentanaPrograma", c.Name)
	assert.Equal(t, []Field{{Name: "analizador", Type: "AnalizadorEquipos", Accessibility: Private}}, c.Fields)
	assert.Equal(t, []Method{
		{Name: "VentanaPrograma", Accessibility: Public, Modifier: Constructor},
		{
			Name:          "main",
			ReturnType:    "void",
			Accessibility: Public,
			Modifier:      Static,
			Arguments:     []MethodArgument{{Name: "args", Type: "String[]"}},
		},
		{Name: "preguntarUsuario", ReturnType: "AccionUsuario", Accessibility: Public, Modifier: Abstract},
	}, c.Methods)

	require.Len(t, doc.Enums, 1)
	assert.Equal(t, "AccionUsuario", doc.Enums[0].Name)
	assert.Equal(t, []EnumVariant{
		{Name: "SALIR"},
		{Name: "TOTAL_GOLES"},
		{Name: "TOTAL_TIROS_ESQUINA"},
		{Name: "TOTAL_TARJETAS_AMARILLAS"},
		{Name: "TOTAL_TARJETAS_ROJAS"},
	}, doc.Enums[0].Variants)
	assert.Empty(t, doc.Interfaces)
}

func TestParse_MalformedElementsReportedTogether(t *testing.T) {
	content := `class Ventana Programa {
    - analizador: AnalizadorEquipos
    + {ctor} VentanaPrograma()
}

enum AccionUsuario {
    SALIR
    TOTAL_ GOLES
    TOTAL_TIROS_ESQUINA
}
`
	rest, doc, errors := Parse(content)
	assert.Nil(t, doc)
	assert.Equal(t, "", rest)
	require.Len(t, errors, 2)
	assert.Equal(t, "class", errors[0].Element)
	assert.Equal(t, 1, errors[0].Line)
	assert.Equal(t, "enum", errors[1].Element)
	assert.Equal(t, 6, errors[1].Line)
}

func TestParse_OneBadElementDiscardsEverything(t *testing.T) {
	content := `class Equipo {
    - nombre: String
}

enum AccionUsuario {
    SALIR
    TOTAL_ GOLES
}
`
	_, doc, errors := Parse(content)
	assert.Nil(t, doc)
	require.Len(t, errors, 1)
	assert.Equal(t, "enum", errors[0].Element)
	assert.Contains(t, errors[0].Message, "TOTAL_ GOLES")
	assert.Equal(t, []string{errors[0].Message}, Messages(errors))
}

func TestParse_RecoveryContinuesAfterBrace(t *testing.T) {
	content := `interface Roto {
    + void mal formado()
}
interface Bueno {
    + void ok()
}
class Roto2 {
    - a b: int
}
`
	_, _, errors := Parse(content)
	require.Len(t, errors, 2)
	assert.Equal(t, 1, errors[0].Line)
	assert.Equal(t, "interface", errors[0].Element)
	assert.Equal(t, 7, errors[1].Line)
	assert.Equal(t, "class", errors[1].Element)
}

func TestParse_RecoveryWithoutBraceReachesEnd(t *testing.T) {
	_, doc, errors := Parse("class Roto {\n    - a b: int\n")
	assert.Nil(t, doc)
	require.Len(t, errors, 1)
}

func TestParse_SkipsOtherLines(t *testing.T) {
	content := `@startuml
title Carros

interface ICarro {
    + void Avanzar()
}
@enduml
`
	rest, doc, errors := Parse(content)
	require.Empty(t, errors)
	assert.Equal(t, "", rest)
	require.Len(t, doc.Interfaces, 1)
	assert.Equal(t, "ICarro", doc.Interfaces[0].Name)
}

func TestParse_FileOrderWithinKind(t *testing.T) {
	content := "enum B {\n}\nclass A {\n}\nenum C {\n}\nclass D {\n}\n"
	_, doc, errors := Parse(content)
	require.Empty(t, errors)
	require.Len(t, doc.Classes, 2)
	assert.Equal(t, "A", doc.Classes[0].Name)
	assert.Equal(t, "D", doc.Classes[1].Name)
	require.Len(t, doc.Enums, 2)
	assert.Equal(t, "B", doc.Enums[0].Name)
	assert.Equal(t, "C", doc.Enums[1].Name)
}

func TestParse_Empty(t *testing.T) {
	rest, doc, errors := Parse("")
	require.Empty(t, errors)
	assert.Equal(t, "", rest)
	assert.Empty(t, doc.Classes)
	assert.Empty(t, doc.Interfaces)
	assert.Empty(t, doc.Enums)
}

func TestParse_TrailingTextIsReturned(t *testing.T) {
	rest, doc, errors := Parse("enum E {\nA\n}\n\n   trailing")
	require.Empty(t, errors)
	assert.Len(t, doc.Enums, 1)
	assert.Equal(t, "trailing", rest)

	again, doc2, errors := Parse(rest)
	require.Empty(t, errors)
	assert.Equal(t, rest, again)
	assert.Empty(t, doc2.Classes)
	assert.Empty(t, doc2.Interfaces)
	assert.Empty(t, doc2.Enums)
}

func TestParse_LastLineWithoutNewlineIsLeft(t *testing.T) {
	rest, doc, errors := Parse("enum E {\n}\nclass A {}")
	require.Empty(t, errors)
	assert.Len(t, doc.Enums, 1)
	assert.Empty(t, doc.Classes)
	assert.Equal(t, "class A {}", rest)
}

func TestParse_KeywordPrefixIsAnElement(t *testing.T) {
	_, doc, errors := Parse("classification of things\n")
	assert.Nil(t, doc)
	require.Len(t, errors, 1)
	assert.Equal(t, "class", errors[0].Element)
}

func TestParseError_Error(t *testing.T) {
	e := ParseError{Line: 3, Element: "enum", Message: "bad"}
	assert.Equal(t, "line 3: bad", e.Error())
}

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	newStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	trkStyle   = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	delStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	kindStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	nameStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func NewLine(w io.Writer, path string) {
	fmt.Fprintln(w, newStyle.Render("new")+"  "+path)
}

func TrkLine(w io.Writer, path string) {
	fmt.Fprintln(w, trkStyle.Render("trk")+"  "+path)
}

func DelLine(w io.Writer, path string) {
	fmt.Fprintln(w, delStyle.Render("del")+"  "+path)
}

func ErrLine(w io.Writer, path string, count int) {
	noun := "errors"
	if count == 1 {
		noun = "error"
	}
	fmt.Fprintf(w, "%s  %s (%d %s)\n", errStyle.Render("err"), path, count, noun)
}

func SummaryLine(w io.Writer, count int) {
	fmt.Fprintf(w, "synced %d files\n", count)
}

// ListRow prints one stored element, padding columns to the given widths.
func ListRow(w io.Writer, kind, name, file string, members, kindWidth, nameWidth, fileWidth int) {
	fmt.Fprintf(w, "%s  %s  %s  %d\n",
		kindStyle.Render(pad(kind, kindWidth)),
		nameStyle.Render(pad(name, nameWidth)),
		faintStyle.Render(pad(file, fileWidth)),
		members)
}

func ShowHeader(w io.Writer, kind, name, file string) {
	fmt.Fprintf(w, "%s %s  %s\n", kindStyle.Render(kind), nameStyle.Render(name), faintStyle.Render(file))
}

func MemberLine(w io.Writer, signature string) {
	fmt.Fprintln(w, "  "+signature)
}

// DiagnosticLine prints a parse error as path:line: message.
func DiagnosticLine(w io.Writer, path string, line int, message string) {
	fmt.Fprintf(w, "%s:%d: %s\n", path, line, errStyle.Render(message))
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

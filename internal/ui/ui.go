// Package ui renders the small amount of decoration the tour prints:
// section banners and the tic-tac-toe grid.
//
// Every helper builds a lipgloss renderer bound to the destination writer,
// so output piped to a file or captured in a test stays plain text while a
// real terminal gets colour.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#7a869a")
	xColor = lipgloss.Color("#e57373")
	oColor = lipgloss.Color("#4db6ac")
)

// Section prints a banner of the form "━━━ title ━━━" preceded by a blank line.
func Section(w io.Writer, title string) {
	r := lipgloss.NewRenderer(w)
	style := r.NewStyle().Bold(true).Foreground(accent)
	fmt.Fprintf(w, "\n%s\n", style.Render("━━━ "+title+" ━━━"))
}

// Sub prints a smaller heading used inside a section.
func Sub(w io.Writer, title string) {
	r := lipgloss.NewRenderer(w)
	style := r.NewStyle().Foreground(muted)
	fmt.Fprintf(w, "\n  %s\n", style.Render("── "+title+" ──"))
}

// Grid prints rows of single-character cells separated by spaces. Cells
// equal to "X" or "O" are coloured; everything else is printed as-is.
func Grid(w io.Writer, rows [][]string) {
	r := lipgloss.NewRenderer(w)
	xStyle := r.NewStyle().Bold(true).Foreground(xColor)
	oStyle := r.NewStyle().Bold(true).Foreground(oColor)

	var b strings.Builder
	for _, row := range rows {
		for _, cell := range row {
			switch cell {
			case "X":
				b.WriteString(xStyle.Render(cell))
			case "O":
				b.WriteString(oStyle.Render(cell))
			default:
				b.WriteString(cell)
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}

// Table prints aligned two-column rows with a bold header.
func Table(w io.Writer, header [2]string, rows [][2]string) {
	width := len(header[0])
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}

	r := lipgloss.NewRenderer(w)
	head := r.NewStyle().Bold(true)
	fmt.Fprintf(w, "%s\n", head.Render(fmt.Sprintf("%-*s  %s", width, header[0], header[1])))
	for _, row := range rows {
		fmt.Fprintf(w, "%-*s  %s\n", width, row[0], row[1])
	}
}

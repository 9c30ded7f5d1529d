package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// printer renders labelled lines. Styling is dropped automatically when out
// isn't a terminal.
type printer struct {
	out   io.Writer
	label lipgloss.Style
}

func newPrinter(out io.Writer) *printer {
	r := lipgloss.NewRenderer(out)

	return &printer{
		out:   out,
		label: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

func (p *printer) field(name, value string) {
	fmt.Fprintf(p.out, "%s %s\n", p.label.Render(name+":"), value)
}

func (p *printer) heading(name string) {
	fmt.Fprintln(p.out, p.label.Render(name+":"))
}

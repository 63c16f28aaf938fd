package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows as left-aligned columns separated by two spaces.
// When styled is false the output is plain text suitable for pipes.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// Styles optionally colors a column; missing entries render unstyled.
	Styles []lipgloss.Style
}

// Render lays out the table. Column widths are measured on the raw cell text
// so ANSI sequences never skew alignment.
func (t Table) Render(styled bool) string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		if styled {
			b.WriteString(TitleStyle.Render(t.Title))
		} else {
			b.WriteString(t.Title)
		}
		b.WriteString("\n")
	}

	b.WriteString(t.line(t.Headers, widths, styled, func(int) lipgloss.Style { return HeaderStyle }))
	for _, row := range t.Rows {
		b.WriteString(t.line(row, widths, styled, t.columnStyle))
	}
	return b.String()
}

func (t Table) columnStyle(col int) lipgloss.Style {
	if col < len(t.Styles) {
		return t.Styles[col]
	}
	return lipgloss.NewStyle()
}

func (t Table) line(cells []string, widths []int, styled bool, style func(int) lipgloss.Style) string {
	parts := make([]string, len(widths))
	for i := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		pad := ""
		if i < len(widths)-1 {
			pad = strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		}
		if styled {
			cell = style(i).Render(cell)
		}
		parts[i] = cell + pad
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ") + "\n"
}

package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTable_RenderPlain(t *testing.T) {
	table := Table{
		Title:   "sitemap.xml (2 URLs)",
		Headers: []string{"LOCATION", "PRIORITY"},
		Rows: [][]string{
			{"https://example.com/", "1.0"},
			{"https://example.com/about/", "0.5"},
		},
	}

	want := "sitemap.xml (2 URLs)\n" +
		"LOCATION                    PRIORITY\n" +
		"https://example.com/        1.0\n" +
		"https://example.com/about/  0.5\n"
	assert.Equal(t, want, table.Render(false))
}

func TestTable_RenderEmptyRows(t *testing.T) {
	table := Table{Headers: []string{"LOCATION", "LASTMOD"}}
	assert.Equal(t, "LOCATION  LASTMOD\n", table.Render(false))
}

func TestTable_RenderShortRow(t *testing.T) {
	table := Table{
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"x"}},
	}
	assert.Equal(t, "A  B\nx\n", table.Render(false))
}

func TestTable_RenderStyledKeepsText(t *testing.T) {
	table := Table{
		Headers: []string{"LOCATION"},
		Rows:    [][]string{{"https://example.com/"}},
		Styles:  []lipgloss.Style{LocationStyle},
	}
	assert.Contains(t, table.Render(true), "https://example.com/")
}

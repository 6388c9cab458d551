// Package render prints a table view for terminals.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/fulldump/tableview/datatable"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

const (
	checked       = "[x]"
	unchecked     = "[ ]"
	indeterminate = "[-]"
)

// Table renders the window of a view: a search line when enabled, the rows
// with sort arrows and selection marks, the empty message and a page footer.
func Table(view datatable.View) string {
	if view.Loading {
		return dimStyle.Render("Loading...")
	}

	b := &strings.Builder{}

	if view.ShowSearch {
		query := view.Query
		if query == "" {
			query = dimStyle.Render(view.SearchPlaceholder)
		}
		fmt.Fprintf(b, "Search: %s\n", query)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers(view)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, row := range view.Rows {
		cells := []string{}
		if view.Selectable {
			cells = append(cells, mark(view.Selected[i]))
		}
		for _, column := range view.Columns {
			cells = append(cells, column.Cell(row, view.Positions[i]))
		}
		t.Row(cells...)
	}

	b.WriteString(t.Render())
	b.WriteString("\n")

	if view.Empty {
		b.WriteString(view.EmptyMessage)
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(Footer(view)))
	b.WriteString("\n")

	return b.String()
}

// Headers returns the header titles, with the "select all" mark first when
// the view is selectable and an arrow on the sorted column.
func Headers(view datatable.View) []string {
	headers := []string{}
	if view.Selectable {
		switch {
		case view.AllSelected:
			headers = append(headers, checked)
		case view.Indeterminate:
			headers = append(headers, indeterminate)
		default:
			headers = append(headers, unchecked)
		}
	}

	for _, column := range view.Columns {
		title := column.Header()
		if view.Sort.IsSorted() && view.Sort.ColumnKey == column.Key {
			title += " " + arrow(view.Sort.Direction)
		}
		headers = append(headers, title)
	}
	return headers
}

// Footer summarizes the page position and row counts.
func Footer(view datatable.View) string {
	footer := fmt.Sprintf("page %d/%d · %d rows", view.Page, view.TotalPages, view.Filtered)
	if view.Filtered != view.Total {
		footer += fmt.Sprintf(" (of %d)", view.Total)
	}
	return footer
}

func mark(selected bool) string {
	if selected {
		return checked
	}
	return unchecked
}

func arrow(direction datatable.SortDirection) string {
	if direction == datatable.SortDescending {
		return "▼"
	}
	return "▲"
}

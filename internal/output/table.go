package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table is a styled table backed by lipgloss/table.
type Table struct {
	headers []string
	rows    [][]string
	// statusCol is the column rendered with statusStyle, or -1.
	statusCol int
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, statusCol: -1}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// StatusColumn marks col as holding file status values.
func (t *Table) StatusColumn(col int) *Table {
	t.statusCol = col
	return t
}

// String renders the table.
func (t *Table) String() string {
	header := lipgloss.NewStyle().Bold(true).Foreground(ColorCyan).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimGray)).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == t.statusCol && row >= 0 && row < len(t.rows) && col < len(t.rows[row]) {
				return statusStyle(t.rows[row][col]).Padding(0, 1)
			}
			return cell
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}
	return tbl.String()
}

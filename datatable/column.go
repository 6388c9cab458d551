package datatable

import (
	"fmt"
	"strconv"
	"time"
)

// RenderFunc turns a cell into its presentation text.
type RenderFunc func(row Row, value any, position int) string

// Column describes how one column is displayed, searched and sorted.
type Column struct {
	Key       string
	DataIndex string // field selector, defaults to Key
	Title     string
	Sortable  bool
	Render    RenderFunc
}

func (c Column) selector() string {
	if c.DataIndex == "" {
		return c.Key
	}
	return c.DataIndex
}

// Value resolves the raw value of the column for a row.
func (c Column) Value(row Row) any {
	return Resolve(row, c.selector())
}

// Cell returns the presentation text of the column for a row.
func (c Column) Cell(row Row, position int) string {
	value := c.Value(row)
	if c.Render != nil {
		return c.Render(row, value, position)
	}
	return Text(value)
}

// Header returns the column title, or its key when the title is empty.
func (c Column) Header() string {
	if c.Title == "" {
		return c.Key
	}
	return c.Title
}

// Text converts a value into the text used for searching and default
// rendering. nil is the empty text, so a search for "null" does not match
// missing values.
func Text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}

func findColumn(columns []Column, key string) (Column, bool) {
	for _, column := range columns {
		if column.Key == key {
			return column, true
		}
	}
	return Column{}, false
}

func columnKeys(columns []Column) []string {
	keys := make([]string, 0, len(columns))
	for _, column := range columns {
		keys = append(keys, column.Key)
	}
	return keys
}

package datatable

import "strings"

// Search keeps the rows where at least one column, converted to lowercase
// text, contains the lowercased query. An empty query returns rows as they
// are. Input order is preserved.
func Search(rows []Row, columns []Column, query string) []Row {
	if query == "" {
		if rows == nil {
			return []Row{}
		}
		return rows
	}
	return pick(rows, searchPositions(rows, allPositions(len(rows)), columns, query))
}

func searchPositions(rows []Row, positions []int, columns []Column, query string) []int {
	if query == "" {
		return positions
	}

	needle := strings.ToLower(query)
	result := make([]int, 0, len(positions))
	for _, p := range positions {
		if rowContains(rows[p], columns, needle) {
			result = append(result, p)
		}
	}
	return result
}

func rowContains(row Row, columns []Column, needle string) bool {
	for _, column := range columns {
		if strings.Contains(strings.ToLower(Text(column.Value(row))), needle) {
			return true
		}
	}
	return false
}

func allPositions(n int) []int {
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	return positions
}

func pick(rows []Row, positions []int) []Row {
	result := make([]Row, 0, len(positions))
	for _, p := range positions {
		result = append(result, rows[p])
	}
	return result
}

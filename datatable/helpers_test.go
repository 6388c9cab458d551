package datatable

import "fmt"

func people() []Row {
	return []Row{
		{"id": float64(1), "name": "Bob", "age": float64(40)},
		{"id": float64(2), "name": "Amy", "age": float64(25)},
		{"id": float64(3), "name": "Cal", "age": float64(33)},
	}
}

func peopleColumns() []Column {
	return []Column{
		{Key: "id"},
		{Key: "name", Sortable: true},
		{Key: "age", Sortable: true},
	}
}

func numbered(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{"id": float64(i + 1), "name": fmt.Sprintf("row %d", i+1)}
	}
	return rows
}

func names(rows []Row) []string {
	result := []string{}
	for _, row := range rows {
		result = append(result, fmt.Sprint(row["name"]))
	}
	return result
}

func ids(rows []Row) []float64 {
	result := []float64{}
	for _, row := range rows {
		result = append(result, row["id"].(float64))
	}
	return result
}

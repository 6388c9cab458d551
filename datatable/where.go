package datatable

import (
	"fmt"

	"github.com/SierraSoftworks/connor"
)

// Where keeps the rows matching a structured filter, for example
// {"age": {"$gt": 30}, "country": "ES"}. An empty filter returns rows as they
// are.
func Where(rows []Row, filter map[string]any) ([]Row, error) {
	if len(filter) == 0 {
		if rows == nil {
			return []Row{}, nil
		}
		return rows, nil
	}

	positions, err := wherePositions(rows, allPositions(len(rows)), filter)
	if err != nil {
		return nil, err
	}
	return pick(rows, positions), nil
}

func wherePositions(rows []Row, positions []int, filter map[string]any) ([]int, error) {
	if len(filter) == 0 {
		return positions, nil
	}

	result := make([]int, 0, len(positions))
	for _, p := range positions {
		match, err := connor.Match(filter, rows[p])
		if err != nil {
			return nil, fmt.Errorf("%w: match row %d: %s", ErrInvalidFilter, p, err.Error())
		}
		if match {
			result = append(result, p)
		}
	}
	return result, nil
}

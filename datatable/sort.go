package datatable

import (
	"fmt"
	"strings"

	"github.com/google/btree"
)

// SortDirection specifies the direction of sorting.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

func (d SortDirection) String() string {
	switch d {
	case SortNone:
		return "none"
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return fmt.Sprintf("unknown(%d)", d)
	}
}

// SortState is the active sort: at most one column in one direction.
type SortState struct {
	ColumnKey string
	Direction SortDirection
}

// IsSorted returns true if the state represents an active sort.
func (s SortState) IsSorted() bool {
	return s.ColumnKey != "" && s.Direction != SortNone
}

// NextSort returns the state after clicking the header of columnKey:
// none -> ascending -> descending -> none on the same column, ascending when
// switching to another column.
func NextSort(state SortState, columnKey string) SortState {
	if !state.IsSorted() || state.ColumnKey != columnKey {
		return SortState{ColumnKey: columnKey, Direction: SortAscending}
	}
	if state.Direction == SortAscending {
		return SortState{ColumnKey: columnKey, Direction: SortDescending}
	}
	return SortState{}
}

// Sort orders rows by the column of state. Rows that compare equal keep their
// input order in both directions. A nil comparer uses the root collation.
func Sort(rows []Row, columns []Column, state SortState, comparer *Comparer) ([]Row, error) {
	if rows == nil {
		rows = []Row{}
	}
	if !state.IsSorted() {
		return rows, nil
	}

	column, ok := findColumn(columns, state.ColumnKey)
	if !ok {
		return nil, fmt.Errorf("%w: '%s', must be [%s]", ErrColumnNotFound, state.ColumnKey, strings.Join(columnKeys(columns), "|"))
	}
	if comparer == nil {
		comparer = defaultComparer()
	}

	return pick(rows, sortPositions(rows, allPositions(len(rows)), column, state.Direction, comparer)), nil
}

type sortItem struct {
	value any
	order int // index in the input, breaks ties
}

func sortPositions(rows []Row, positions []int, column Column, direction SortDirection, comparer *Comparer) []int {
	if direction == SortNone || len(positions) < 2 {
		return positions
	}

	tree := btree.NewG(32, func(a, b sortItem) bool {
		c := comparer.Compare(a.value, b.value)
		if direction == SortDescending {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return a.order < b.order
	})

	for i, p := range positions {
		tree.ReplaceOrInsert(sortItem{
			value: column.Value(rows[p]),
			order: i,
		})
	}

	result := make([]int, 0, len(positions))
	tree.Ascend(func(item sortItem) bool {
		result = append(result, positions[item.order])
		return true
	})
	return result
}

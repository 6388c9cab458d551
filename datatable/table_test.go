package datatable

import (
	"errors"
	"testing"

	"github.com/fulldump/biff"
)

func TestTable_ClickHeader(t *testing.T) {

	biff.Alternative("Bob, Amy, Cal", func(a *biff.A) {

		table := New(peopleColumns(), Options{})
		table.SetRows(people())

		biff.AssertEqual(names(table.View().Rows), []string{"Bob", "Amy", "Cal"})

		a.Alternative("Click once sorts ascending", func(a *biff.A) {
			state, err := table.ClickHeader("name")
			biff.AssertNil(err)
			biff.AssertEqual(state.Direction, SortAscending)
			biff.AssertEqual(names(table.View().Rows), []string{"Amy", "Bob", "Cal"})

			a.Alternative("Click twice sorts descending", func(a *biff.A) {
				table.ClickHeader("name")
				biff.AssertEqual(names(table.View().Rows), []string{"Cal", "Bob", "Amy"})

				a.Alternative("Click three times restores insertion order", func(a *biff.A) {
					state, _ := table.ClickHeader("name")
					biff.AssertFalse(state.IsSorted())
					biff.AssertEqual(names(table.View().Rows), []string{"Bob", "Amy", "Cal"})
				})
			})
		})

		a.Alternative("Not sortable", func(a *biff.A) {
			_, err := table.ClickHeader("id")
			biff.AssertTrue(errors.Is(err, ErrColumnNotSortable))
			biff.AssertFalse(table.SortState().IsSorted())
		})

		a.Alternative("Unknown column", func(a *biff.A) {
			_, err := table.ClickHeader("nope")
			biff.AssertTrue(errors.Is(err, ErrColumnNotFound))
		})

		a.Alternative("Sorted column removed", func(a *biff.A) {
			table.ClickHeader("name")
			table.SetColumns([]Column{{Key: "id"}})
			biff.AssertEqual(table.SortState(), SortState{})
			biff.AssertEqual(names(table.View().Rows), []string{"Bob", "Amy", "Cal"})
		})
	})
}

func TestTable_Pagination(t *testing.T) {

	biff.Alternative("Seven rows, three per page", func(a *biff.A) {

		table := New(peopleColumns(), Options{PageSize: 3})
		table.SetRows(numbered(7))

		view := table.View()
		biff.AssertEqual(view.TotalPages, 3)
		biff.AssertEqual(view.Page, 1)
		biff.AssertEqual(ids(view.Rows), []float64{1, 2, 3})
		biff.AssertEqual(view.Positions, []int{0, 1, 2})

		a.Alternative("Jump beyond the end clamps", func(a *biff.A) {
			page := table.GoToPage(5)
			biff.AssertEqual(page, 3)
			biff.AssertEqual(ids(table.View().Rows), []float64{7})
		})

		a.Alternative("Next and previous clamp", func(a *biff.A) {
			biff.AssertEqual(table.PrevPage(), 1)
			biff.AssertEqual(table.NextPage(), 2)
			biff.AssertEqual(table.NextPage(), 3)
			biff.AssertEqual(table.NextPage(), 3)
		})

		a.Alternative("Query resets the page", func(a *biff.A) {
			table.GoToPage(3)
			table.SetQuery("row")
			biff.AssertEqual(table.View().Page, 1)
		})

		a.Alternative("Query shrinking the result clamps the page", func(a *biff.A) {
			table.GoToPage(3)
			table.SetSort(SortState{})
			table.SetQuery("7")
			view := table.View()
			biff.AssertEqual(view.Page, 1)
			biff.AssertEqual(view.TotalPages, 1)
			biff.AssertEqual(ids(view.Rows), []float64{7})
		})

		a.Alternative("Empty result", func(a *biff.A) {
			table.SetQuery("nothing like this")
			view := table.View()
			biff.AssertTrue(view.Empty)
			biff.AssertEqual(view.EmptyMessage, DefaultEmptyMessage)
			biff.AssertEqual(view.TotalPages, 1)
			biff.AssertNotNil(view.Rows)
		})
	})
}

func TestTable_Where(t *testing.T) {

	biff.Alternative("Where", func(a *biff.A) {

		table := New(peopleColumns(), Options{})
		table.SetRows(people())

		a.Alternative("Implicit equality", func(a *biff.A) {
			err := table.SetWhere(map[string]any{"name": "Cal"})
			biff.AssertNil(err)
			biff.AssertEqual(names(table.View().Rows), []string{"Cal"})
		})

		a.Alternative("Operator", func(a *biff.A) {
			err := table.SetWhere(map[string]any{"age": map[string]any{"$gt": float64(30)}})
			biff.AssertNil(err)
			biff.AssertEqual(names(table.View().Rows), []string{"Bob", "Cal"})

			a.Alternative("Combined with search", func(a *biff.A) {
				table.SetQuery("b")
				biff.AssertEqual(names(table.View().Rows), []string{"Bob"})
				biff.AssertEqual(table.View().Filtered, 1)
				biff.AssertEqual(table.View().Total, 3)
			})
		})

		a.Alternative("Reset clears it", func(a *biff.A) {
			table.SetWhere(map[string]any{"name": "Cal"})
			table.Reset()
			biff.AssertEqual(len(table.View().Rows), 3)
		})
	})
}

func TestTable_Memo(t *testing.T) {

	table := New(peopleColumns(), Options{})
	table.SetRows(people())

	first := table.View()
	second := table.View()
	biff.AssertEqual(first, second)

	table.SetRows(numbered(2))
	biff.AssertEqual(len(table.View().Rows), 2)
}

func TestTable_Inputs(t *testing.T) {

	table := New(peopleColumns(), Options{
		Loading:           true,
		ShowSearch:        true,
		SearchPlaceholder: "Search people",
		EmptyMessage:      "Nobody here",
		Selectable:        true,
	})

	view := table.View()
	biff.AssertTrue(view.Loading)
	biff.AssertTrue(view.ShowSearch)
	biff.AssertTrue(view.Selectable)
	biff.AssertTrue(view.Empty)
	biff.AssertEqual(view.SearchPlaceholder, "Search people")
	biff.AssertEqual(view.EmptyMessage, "Nobody here")

	table.SetRows(people())
	table.SetLoading(false)
	view = table.View()
	biff.AssertFalse(view.Loading)
	biff.AssertEqual(len(view.Rows), 3)
}

func TestTable_InvalidLocaleFallsBack(t *testing.T) {

	table := New(peopleColumns(), Options{Locale: "not a locale!"})
	table.SetRows(people())
	table.ClickHeader("name")

	biff.AssertEqual(names(table.View().Rows), []string{"Amy", "Bob", "Cal"})
}

func TestColumn_Cell(t *testing.T) {

	column := Column{
		Key: "age",
		Render: func(row Row, value any, position int) string {
			return row["name"].(string) + " is " + Text(value)
		},
	}
	biff.AssertEqual(column.Cell(people()[0], 0), "Bob is 40")
	biff.AssertEqual(Column{Key: "missing"}.Cell(people()[0], 0), "")
	biff.AssertEqual(Column{Key: "age", Title: "Age"}.Header(), "Age")
	biff.AssertEqual(Column{Key: "age"}.Header(), "age")
}

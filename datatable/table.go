// Package datatable is the view engine of a data table: rows go through a
// where filter, a text search, a sort and a page window, and a selection of
// row keys is kept across all of it.
package datatable

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

const DefaultEmptyMessage = "No data"

// DeselectPolicy decides what unchecking "select all" removes.
type DeselectPolicy int

const (
	// DeselectPage removes only the keys of the displayed page.
	DeselectPage DeselectPolicy = iota
	// DeselectEverything clears the whole selection, other pages included.
	DeselectEverything
)

// Options are the inputs supplied by the host besides rows and columns.
type Options struct {
	Loading           bool
	Selectable        bool
	ShowSearch        bool
	SearchPlaceholder string
	PageSize          int     // 0 disables pagination
	RowKey            KeyFunc // nil identifies rows by position
	EmptyMessage      string
	Locale            string
	DeselectAll       DeselectPolicy
	Logger            *log.Logger // nil is silent
}

// View is the rendered window plus everything a host needs to draw it. Every
// call to Table.View returns its own copy of the slices.
type View struct {
	Rows      []Row
	Positions []int // position of each row in the full dataset
	Keys      []Key
	Selected  []bool
	Columns   []Column

	Sort       SortState
	Query      string
	Page       int
	PageSize   int
	TotalPages int
	Total      int // rows in the dataset
	Filtered   int // rows after where and search

	Selectable    bool
	AllSelected   bool
	Indeterminate bool

	Loading           bool
	ShowSearch        bool
	SearchPlaceholder string
	Empty             bool
	EmptyMessage      string
}

// Table is the tabular view engine: rows flow through where, search, sort and
// pagination into the rendered window, and a Selection tracks selected keys
// across all of it.
//
// The window is recomputed from the inputs on demand and memoized until the
// next input change. A Table is not safe for concurrent use.
type Table struct {
	options   Options
	columns   []Column
	rows      []Row
	keys      []Key
	where     map[string]any
	query     string
	sort      SortState
	page      int
	comparer  *Comparer
	selection *Selection

	revision uint64
	memo     *memo
}

type memo struct {
	revision uint64
	view     View
}

func New(columns []Column, options Options) *Table {
	if options.EmptyMessage == "" {
		options.EmptyMessage = DefaultEmptyMessage
	}
	if options.PageSize < 0 {
		options.PageSize = 0
	}

	comparer, err := NewComparer(options.Locale)
	if err != nil {
		logWarn(options.Logger, "using root collation", "err", err)
		comparer = defaultComparer()
	}

	t := &Table{
		options:  options,
		columns:  columns,
		rows:     []Row{},
		keys:     []Key{},
		page:     1,
		comparer: comparer,
	}
	t.selection = NewSelection(func() ([]Row, []Key) {
		return t.rows, t.keys
	})

	return t
}

func logWarn(logger *log.Logger, msg string, keyvals ...any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, keyvals...)
}

func (t *Table) changed() {
	t.revision++
}

// SetRows replaces the dataset. The selection is kept; the page goes back to
// the first one.
func (t *Table) SetRows(rows []Row) {
	if rows == nil {
		rows = []Row{}
	}

	keys, fallbacks := resolveKeys(rows, t.options.RowKey)
	if fallbacks > 0 {
		logWarn(t.options.Logger, "rows without a unique key are identified by position", "rows", fallbacks)
	}

	t.rows = rows
	t.keys = keys
	t.page = 1
	t.changed()
}

func (t *Table) Rows() []Row {
	return t.rows
}

// SetColumns replaces the column descriptors. A sort on a column that is gone
// is dropped.
func (t *Table) SetColumns(columns []Column) {
	t.columns = columns
	if t.sort.IsSorted() {
		if _, ok := findColumn(columns, t.sort.ColumnKey); !ok {
			t.sort = SortState{}
		}
	}
	t.changed()
}

func (t *Table) Columns() []Column {
	return t.columns
}

func (t *Table) SetLoading(loading bool) {
	t.options.Loading = loading
	t.changed()
}

// SetQuery changes the search text and goes back to the first page.
func (t *Table) SetQuery(query string) {
	if query == t.query {
		return
	}
	t.query = query
	t.page = 1
	t.changed()
}

func (t *Table) Query() string {
	return t.query
}

// SetWhere installs a structured filter applied before the search. The filter
// is checked against the current rows and rejected if it cannot be evaluated.
func (t *Table) SetWhere(filter map[string]any) error {
	if _, err := wherePositions(t.rows, allPositions(len(t.rows)), filter); err != nil {
		return err
	}
	t.where = filter
	t.page = 1
	t.changed()
	return nil
}

// SetSort installs a sort state directly.
func (t *Table) SetSort(state SortState) error {
	if state.IsSorted() {
		if err := t.checkSortable(state.ColumnKey); err != nil {
			return err
		}
	} else {
		state = SortState{}
	}
	t.sort = state
	t.changed()
	return nil
}

// ClickHeader advances the sort state machine for a sortable column.
func (t *Table) ClickHeader(columnKey string) (SortState, error) {
	if err := t.checkSortable(columnKey); err != nil {
		return t.sort, err
	}
	t.sort = NextSort(t.sort, columnKey)
	t.changed()
	return t.sort, nil
}

func (t *Table) SortState() SortState {
	return t.sort
}

func (t *Table) checkSortable(columnKey string) error {
	column, ok := findColumn(t.columns, columnKey)
	if !ok {
		return fmt.Errorf("%w: '%s', must be [%s]", ErrColumnNotFound, columnKey, strings.Join(columnKeys(t.columns), "|"))
	}
	if !column.Sortable {
		return fmt.Errorf("%w: '%s'", ErrColumnNotSortable, columnKey)
	}
	return nil
}

func (t *Table) SetPageSize(pageSize int) {
	t.options.PageSize = max(pageSize, 0)
	t.page = 1
	t.changed()
}

// GoToPage moves to page, clamped to the existing pages. It returns the page
// actually displayed.
func (t *Table) GoToPage(page int) int {
	total := TotalPages(len(t.filtered()), t.options.PageSize)
	t.page = ClampPage(page, total)
	t.changed()
	return t.page
}

func (t *Table) NextPage() int {
	return t.GoToPage(t.page + 1)
}

func (t *Table) PrevPage() int {
	return t.GoToPage(t.page - 1)
}

// Key returns the identity key of the row at position in the full dataset.
func (t *Table) Key(position int) Key {
	if position >= 0 && position < len(t.keys) {
		return t.keys[position]
	}
	return positionKey(position)
}

// ToggleRow selects or deselects a row. With Options.RowKey the key comes
// from the row itself, so position may be its index on the page. Without it,
// or when the row has no usable key, position is read as the index in the
// full dataset, as reported by View.Positions.
func (t *Table) ToggleRow(row Row, position int, checked bool) {
	key := t.Key(position)
	if t.options.RowKey != nil && row != nil {
		if k, ok := normalizeKey(t.options.RowKey(row, position)); ok {
			key = k
		}
	}
	t.changed()
	t.selection.Toggle(key, checked)
}

func (t *Table) ToggleKey(key Key, checked bool) {
	t.changed()
	t.selection.Toggle(key, checked)
}

// ToggleAllOnPage selects every row of the displayed page, or deselects
// according to Options.DeselectAll.
func (t *Table) ToggleAllOnPage(checked bool) {
	pageKeys := t.View().Keys
	t.changed()

	if checked {
		t.selection.SelectAll(pageKeys)
		return
	}
	if t.options.DeselectAll == DeselectEverything {
		t.selection.Clear()
		return
	}
	t.selection.DeselectAll(pageKeys)
}

func (t *Table) ClearSelection() {
	t.changed()
	t.selection.Clear()
}

// OnSelectionChange registers the single selection observer.
func (t *Table) OnSelectionChange(observer func(selected []Row)) {
	t.selection.OnChange(observer)
}

func (t *Table) SelectedRows() []Row {
	return t.selection.Rows()
}

func (t *Table) SelectedKeys() []Key {
	return t.selection.Keys()
}

func (t *Table) IsSelected(key Key) bool {
	return t.selection.Has(key)
}

// Reset drops query, filter, sort and selection and goes back to the first
// page. Rows and columns stay.
func (t *Table) Reset() {
	t.query = ""
	t.where = nil
	t.sort = SortState{}
	t.page = 1
	t.changed()
	t.selection.Clear()
}

// filtered returns the dataset positions surviving where and search.
func (t *Table) filtered() []int {
	positions := allPositions(len(t.rows))
	positions, err := wherePositions(t.rows, positions, t.where)
	if err != nil {
		// rows replaced after SetWhere no longer evaluate; show nothing rather
		// than unfiltered data
		logWarn(t.options.Logger, "where filter failed", "err", err)
		positions = []int{}
	}
	return searchPositions(t.rows, positions, t.columns, t.query)
}

// View computes the rendered window.
func (t *Table) View() View {
	if t.memo != nil && t.memo.revision == t.revision {
		return t.memo.view.clone()
	}

	positions := t.filtered()
	filtered := len(positions)

	if column, ok := findColumn(t.columns, t.sort.ColumnKey); ok && t.sort.IsSorted() {
		positions = sortPositions(t.rows, positions, column, t.sort.Direction, t.comparer)
	}

	totalPages := TotalPages(filtered, t.options.PageSize)
	t.page = ClampPage(t.page, totalPages)
	positions = Paginate(positions, Pagination{
		PageSize:    t.options.PageSize,
		CurrentPage: t.page,
	})

	view := View{
		Rows:              pick(t.rows, positions),
		Positions:         positions,
		Keys:              make([]Key, len(positions)),
		Selected:          make([]bool, len(positions)),
		Columns:           t.columns,
		Sort:              t.sort,
		Query:             t.query,
		Page:              t.page,
		PageSize:          t.options.PageSize,
		TotalPages:        totalPages,
		Total:             len(t.rows),
		Filtered:          filtered,
		Selectable:        t.options.Selectable,
		Loading:           t.options.Loading,
		ShowSearch:        t.options.ShowSearch,
		SearchPlaceholder: t.options.SearchPlaceholder,
		Empty:             len(positions) == 0,
		EmptyMessage:      t.options.EmptyMessage,
	}
	for i, p := range positions {
		view.Keys[i] = t.keys[p]
		view.Selected[i] = t.selection.Has(t.keys[p])
	}
	view.AllSelected = t.selection.AllSelected(view.Keys)
	view.Indeterminate = t.selection.Indeterminate(view.Keys)

	t.memo = &memo{
		revision: t.revision,
		view:     view,
	}
	return view.clone()
}

func (v View) clone() View {
	v.Rows = slices.Clone(v.Rows)
	v.Positions = slices.Clone(v.Positions)
	v.Keys = slices.Clone(v.Keys)
	v.Selected = slices.Clone(v.Selected)
	v.Columns = slices.Clone(v.Columns)
	return v
}

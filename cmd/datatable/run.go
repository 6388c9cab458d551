package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-json-experiment/json"

	"github.com/fulldump/tableview/configuration"
	"github.com/fulldump/tableview/datatable"
	"github.com/fulldump/tableview/dataset"
	"github.com/fulldump/tableview/render"
	"github.com/fulldump/tableview/utils"
)

var (
	ErrMissingFile     = errors.New("missing -file")
	ErrInvalidPosition = errors.New("invalid row position")
)

func run(c *configuration.Configuration, w io.Writer, logger *log.Logger) error {

	if c.File == "" {
		return ErrMissingFile
	}

	logger.Debug("loading rows", "file", c.File)
	rows, err := dataset.Load(c.File)
	if err != nil {
		return err
	}
	logger.Info("rows loaded", "file", c.File, "rows", len(rows))

	if c.Defaults != "" {
		defaults := map[string]any{}
		err := json.Unmarshal([]byte(c.Defaults), &defaults)
		if err != nil {
			return fmt.Errorf("parse defaults: %w", err)
		}
		dataset.ApplyDefaults(rows, defaults)
	}

	options := datatable.Options{
		Selectable:   c.Select != "" || c.SelectPage,
		ShowSearch:   c.Query != "",
		PageSize:     c.PageSize,
		EmptyMessage: c.EmptyMessage,
		Locale:       c.Locale,
		Logger:       logger,
	}
	if c.RowKey != "" {
		options.RowKey = datatable.KeyField(c.RowKey)
	}

	table := datatable.New(buildColumns(c.Columns, c.Sortable, rows), options)
	table.OnSelectionChange(func(selected []datatable.Row) {
		logger.Debug("selection changed", "selected", len(selected))
	})
	table.SetRows(rows)

	if c.Where != "" {
		filter := map[string]any{}
		err := json.Unmarshal([]byte(c.Where), &filter)
		if err != nil {
			return fmt.Errorf("parse where: %w", err)
		}
		err = table.SetWhere(filter)
		if err != nil {
			return err
		}
	}

	table.SetQuery(c.Query)

	if c.Sort != "" {
		state := datatable.SortState{
			ColumnKey: strings.TrimPrefix(c.Sort, "-"),
			Direction: datatable.SortAscending,
		}
		if strings.HasPrefix(c.Sort, "-") {
			state.Direction = datatable.SortDescending
		}
		err := table.SetSort(state)
		if err != nil {
			return err
		}
	}

	page := table.GoToPage(c.Page)
	if page != c.Page {
		logger.Warn("page out of range", "requested", c.Page, "showing", page)
	}

	err = selectKeys(table, c.Select, c.RowKey != "", logger)
	if err != nil {
		return err
	}
	if c.SelectPage {
		table.ToggleAllOnPage(true)
	}

	_, err = io.WriteString(w, render.Table(table.View()))
	if err != nil {
		return err
	}

	if options.Selectable {
		keys := []string{}
		for _, key := range table.SelectedKeys() {
			keys = append(keys, fmt.Sprint(key))
		}
		_, err = fmt.Fprintf(w, "selected: %s\n", strings.Join(keys, ","))
	}

	return err
}

// selectKeys selects the rows listed in -select. They are row keys when a
// -rowkey is given and positions in the file otherwise, the same values the
// "selected:" line prints.
func selectKeys(table *datatable.Table, list string, byKey bool, logger *log.Logger) error {
	for _, item := range splitList(list) {
		if byKey {
			table.ToggleKey(datatable.ParseKey(item), true)
			continue
		}

		position, err := strconv.Atoi(item)
		if err != nil {
			return fmt.Errorf("%w: '%s'", ErrInvalidPosition, item)
		}
		if position < 0 || position >= len(table.Rows()) {
			logger.Warn("row position out of range", "position", position, "rows", len(table.Rows()))
			continue
		}
		table.ToggleRow(nil, position, true)
	}
	return nil
}

// buildColumns parses "id,name:Full name". Without a list every field found
// in the rows becomes a column.
func buildColumns(list, sortable string, rows []datatable.Row) []datatable.Column {
	specs := splitList(list)
	if len(specs) == 0 {
		specs = utils.FieldNames(rows)
	}

	sortableKeys := map[string]bool{}
	for _, key := range splitList(sortable) {
		sortableKeys[key] = true
	}

	columns := []datatable.Column{}
	for _, spec := range specs {
		key, title, _ := strings.Cut(spec, ":")
		columns = append(columns, datatable.Column{
			Key:      key,
			Title:    title,
			Sortable: sortableKeys["*"] || sortableKeys[key],
		})
	}
	return columns
}

func splitList(s string) []string {
	result := []string{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

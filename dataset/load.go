// Package dataset loads row collections for the table engine.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/tableview/datatable"
	"github.com/fulldump/tableview/utils"
)

// Load reads rows from a file holding a JSON array of objects, or one JSON
// object per line.
func Load(filename string) ([]datatable.Row, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open file for read: %w", err)
	}
	defer f.Close()

	rows, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode '%s': %w", filename, err)
	}
	return rows, nil
}

// Decode reads a stream of JSON values. Objects are rows; arrays are batches
// of rows. Several arrays or a mix of both are accepted.
func Decode(r io.Reader) ([]datatable.Row, error) {
	rows := []datatable.Row{}

	decoder := jsontext.NewDecoder(r)
	for {
		value, err := decoder.ReadValue()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read value at offset %d: %w", decoder.InputOffset(), err)
		}

		switch value.Kind() {
		case '{':
			row := datatable.Row{}
			err = json.Unmarshal(value, &row)
			if err != nil {
				return nil, fmt.Errorf("unmarshal row %d: %w", len(rows), err)
			}
			rows = append(rows, row)
		case '[':
			batch := []datatable.Row{}
			err = json.Unmarshal(value, &batch)
			if err != nil {
				return nil, fmt.Errorf("unmarshal rows from %d: %w", len(rows), err)
			}
			rows = append(rows, batch...)
		default:
			return nil, fmt.Errorf("row %d: expected object or array, got %v", len(rows), value.Kind())
		}
	}

	return rows, nil
}

// FromValues converts a slice of structs (or anything that marshals to a JSON
// array of objects) into rows.
func FromValues(values any) ([]datatable.Row, error) {
	rows := []datatable.Row{}
	err := utils.Remarshal(values, &rows)
	if err != nil {
		return nil, fmt.Errorf("remarshal values: %w", err)
	}
	return rows, nil
}

package dataset

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/fulldump/biff"
	"github.com/google/uuid"

	"github.com/fulldump/tableview/datatable"
)

func TestDecode(t *testing.T) {

	biff.Alternative("Decode", func(a *biff.A) {

		a.Alternative("JSON array", func(a *biff.A) {
			rows, err := Decode(strings.NewReader(`[{"id":1,"name":"Bob"},{"id":2,"name":"Amy"}]`))
			biff.AssertNil(err)
			biff.AssertEqual(rows, []datatable.Row{
				{"id": float64(1), "name": "Bob"},
				{"id": float64(2), "name": "Amy"},
			})
		})

		a.Alternative("JSON lines", func(a *biff.A) {
			rows, err := Decode(strings.NewReader("{\"id\":1}\n{\"id\":2}\n\n{\"id\":3}\n"))
			biff.AssertNil(err)
			biff.AssertEqual(len(rows), 3)
			biff.AssertEqual(rows[2]["id"], float64(3))
		})

		a.Alternative("Empty input", func(a *biff.A) {
			rows, err := Decode(strings.NewReader("  \n"))
			biff.AssertNil(err)
			biff.AssertNotNil(rows)
			biff.AssertEqual(len(rows), 0)
		})

		a.Alternative("Scalar is rejected", func(a *biff.A) {
			_, err := Decode(strings.NewReader(`{"id":1} 42`))
			biff.AssertNotNil(err)
		})

		a.Alternative("Broken JSON", func(a *biff.A) {
			_, err := Decode(strings.NewReader(`{"id":`))
			biff.AssertNotNil(err)
		})
	})
}

func TestLoad(t *testing.T) {

	filename := path.Join(t.TempDir(), "rows.json")
	err := os.WriteFile(filename, []byte(`[{"name":"Cal"}]`), 0666)
	biff.AssertNil(err)

	rows, err := Load(filename)
	biff.AssertNil(err)
	biff.AssertEqual(rows, []datatable.Row{{"name": "Cal"}})

	_, err = Load(path.Join(t.TempDir(), "missing.json"))
	biff.AssertNotNil(err)
}

func TestFromValues(t *testing.T) {

	type person struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	rows, err := FromValues([]person{{ID: 1, Name: "Bob"}})
	biff.AssertNil(err)
	biff.AssertEqual(rows, []datatable.Row{{"id": float64(1), "name": "Bob"}})
}

func TestApplyDefaults(t *testing.T) {

	rows := []datatable.Row{
		{"name": "Bob"},
		{"name": "Amy", "id": "keep", "country": nil},
	}

	ApplyDefaults(rows, map[string]any{
		"id":      "uuid()",
		"n":       "auto()",
		"country": "ES",
	})

	_, err := uuid.Parse(rows[0]["id"].(string))
	biff.AssertNil(err)
	biff.AssertEqual(rows[1]["id"], "keep")
	biff.AssertEqual(rows[0]["n"], int64(1))
	biff.AssertEqual(rows[1]["n"], int64(2))
	biff.AssertEqual(rows[0]["country"], "ES")
	biff.AssertEqual(rows[1]["country"], "ES")
}

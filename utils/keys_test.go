package utils

import (
	"testing"

	"github.com/fulldump/biff"
)

func TestSortedKeys(t *testing.T) {

	keys := SortedKeys(map[string]int{"b": 1, "c": 2, "a": 3})
	biff.AssertEqual(keys, []string{"a", "b", "c"})

	biff.AssertEqual(len(SortedKeys(map[string]int{})), 0)
}

func TestFieldNames(t *testing.T) {

	docs := []map[string]any{
		{"id": 1, "name": "Bob"},
		{"id": 2, "age": 30},
	}
	biff.AssertEqual(FieldNames(docs), []string{"age", "id", "name"})
}

func TestRemarshal(t *testing.T) {

	input := struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}{Name: "Bob", Age: 40}

	output := map[string]any{}
	err := Remarshal(input, &output)
	biff.AssertNil(err)
	biff.AssertEqual(output, map[string]any{"name": "Bob", "age": float64(40)})
}

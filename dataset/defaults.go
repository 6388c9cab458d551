package dataset

import (
	"time"

	"github.com/google/uuid"

	"github.com/fulldump/tableview/datatable"
)

// ApplyDefaults fills the fields of each row that are missing or null.
// Besides literal values, these generators are understood:
//
//	uuid()      a random UUID, handy as a row key
//	unixnano()  current time in nanoseconds
//	auto()      the 1-based position of the row
func ApplyDefaults(rows []datatable.Row, defaults map[string]any) {
	if len(defaults) == 0 {
		return
	}

	for i, row := range rows {
		for k, v := range defaults {
			if row[k] != nil {
				continue
			}
			var value any
			switch v {
			case "uuid()":
				value = uuid.NewString()
			case "unixnano()":
				value = time.Now().UnixNano()
			case "auto()":
				value = int64(i + 1)
			default:
				value = v
			}
			row[k] = value
		}
	}
}

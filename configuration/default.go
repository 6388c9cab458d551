package configuration

import "github.com/fulldump/tableview/datatable"

func Default() *Configuration {
	return &Configuration{
		Sortable:     "*",
		PageSize:     20,
		Page:         1,
		EmptyMessage: datatable.DefaultEmptyMessage,
		LogLevel:     "info",
	}
}

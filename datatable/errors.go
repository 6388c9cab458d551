package datatable

import "errors"

var (
	ErrColumnNotFound    = errors.New("column not found")
	ErrColumnNotSortable = errors.New("column is not sortable")
	ErrInvalidFilter     = errors.New("invalid filter")
	ErrInvalidLocale     = errors.New("invalid locale")
)

package datatable

// Pagination is the page window over the sorted rows. PageSize 0 disables
// pagination. Pages are numbered from 1.
type Pagination struct {
	PageSize    int
	CurrentPage int
}

// Paginate returns the window [(page-1)*size, page*size) clipped to items. An
// out of range page yields an empty slice.
func Paginate[T any](items []T, p Pagination) []T {
	if p.PageSize <= 0 {
		if items == nil {
			return []T{}
		}
		return items
	}

	from := (p.CurrentPage - 1) * p.PageSize
	to := from + p.PageSize
	from = max(from, 0)
	to = min(to, len(items))
	if from >= to {
		return []T{}
	}
	return items[from:to]
}

// TotalPages is ceil(total/pageSize), never less than 1.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage keeps page inside [1, totalPages].
func ClampPage(page, totalPages int) int {
	return max(1, min(page, totalPages))
}

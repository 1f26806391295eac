package stats

// Pagination carries page metadata alongside a slice of results.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// Paginate slices items into the 1-based page of the given size. Page <= 0
// clamps to 1 and size < 1 clamps to 1; a page beyond the last yields an
// empty slice rather than an error.
func Paginate[T any](items []T, page, size int) ([]T, Pagination) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	meta := Pagination{
		Page:       page,
		Limit:      size,
		Total:      int64(total),
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}

	start := (page - 1) * size
	if start >= total {
		return []T{}, meta
	}

	end := start + size
	if end > total {
		end = total
	}
	return items[start:end], meta
}

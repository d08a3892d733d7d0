package shared

const (
	DefaultPage  = 1
	DefaultLimit = 25
	MaxLimit     = 100
)

// PaginationParams is a normalized (page, limit) pair.
type PaginationParams struct {
	Page  int
	Limit int
}

func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NormalizePagination clamps raw query values into valid bounds instead of
// rejecting them. Zero or negative values mean "absent".
func NormalizePagination(page, limit int) PaginationParams {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PaginationParams{Page: page, Limit: limit}
}

// PaginationMeta is the pagination block attached to every list response.
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"total_pages"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	var pages int64
	if total > 0 && limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return PaginationMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: pages,
	}
}

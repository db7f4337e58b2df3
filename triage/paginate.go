package triage

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page describes one window of a result list.
type Page struct {
	Page       int `json:"currentPage"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate clamps page and limit: page below 1 becomes 1, a limit outside
// 1..MaxLimit becomes DefaultLimit, and a page past the end becomes
// TotalPages+1, the first empty page.
func Paginate(total, page, limit int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	totalPages := (total + limit - 1) / limit
	if page > totalPages+1 {
		page = totalPages + 1
	}
	return Page{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// Window returns the slice of list covered by p. Pages past the end are empty.
func Window[T any](list []T, p Page) []T {
	if p.Page < 1 || p.Limit < 1 || p.Page-1 >= (len(list)+p.Limit-1)/p.Limit {
		return []T{}
	}
	start := (p.Page - 1) * p.Limit
	end := start + p.Limit
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

package entry

import "github.com/heartmarshall/scanplate-backend/internal/domain"

// ListResult is one page of entries.
type ListResult struct {
	Entries []domain.NutritionEntry
	Total   int
	Page    int
	PerPage int
}

// LastPage returns the number of the last page, at least 1.
func (r ListResult) LastPage() int {
	if r.PerPage <= 0 || r.Total == 0 {
		return 1
	}
	return (r.Total + r.PerPage - 1) / r.PerPage
}

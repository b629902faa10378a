package paginator

import "math"

// Adjust clamps the query to usable values: page floors at DefaultPage and
// limit lands in [1, MaxLimit], defaulting when absent.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	switch {
	case p.Limit < 1:
		p.Limit = DefaultLimit
	case p.Limit > MaxLimit:
		p.Limit = MaxLimit
	}
}

// Offset is the row offset of the current page.
func (p *PaginateQuery) Offset() int64 {
	return int64(p.Page-1) * p.Limit
}

// TotalPages derives the page count from Total and PerPage.
func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}

// ToResponse flattens the paginator with the derived fields clients render.
func (p Paginator) ToResponse() PaginatorResponse {
	totalPages := p.TotalPages()

	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  totalPages,
		HasNext:     p.CurrentPage < totalPages,
		HasPrev:     p.CurrentPage > 1,
	}
}

package dto

// PageQuery carries the page/limit window parsed from the query string.
type PageQuery struct {
	Page  int64
	Limit int64
}

// Skip is the number of documents before the requested window.
func (q PageQuery) Skip() int64 {
	return (q.Page - 1) * q.Limit
}

// Paginate computes the envelope pagination block for a total count.
func (q PageQuery) Paginate(total int64) Pagination {
	pages := total / q.Limit
	if total%q.Limit != 0 {
		pages++
	}
	return Pagination{Total: total, Pages: pages, Page: q.Page, Limit: q.Limit}
}

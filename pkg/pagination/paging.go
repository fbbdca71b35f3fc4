package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Pager struct {
	Page  int
	Limit int
	total int64
}

type PageInfo struct {
	TotalItems  int64 `json:"total_items" xml:"total_items"`
	TotalPages  int   `json:"total_pages" xml:"total_pages"`
	CurrentPage int   `json:"current_page" xml:"current_page"`
	Limit       int   `json:"limit" xml:"limit"`
} // @name pagination.PageInfo

func NewPager(page, limit int) *Pager {
	if page <= 0 {
		page = DefaultPage
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return &Pager{Page: page, Limit: limit}
}

func (p *Pager) SetTotal(total int64) {
	p.total = total
}

// Do returns offset and limit for the current page.
func (p *Pager) Do() (int, int) {
	return (p.Page - 1) * p.Limit, p.Limit
}

func (p *Pager) PageInfo() PageInfo {
	pages := int(p.total) / p.Limit
	if int(p.total)%p.Limit != 0 {
		pages++
	}

	return PageInfo{
		TotalItems:  p.total,
		TotalPages:  pages,
		CurrentPage: p.Page,
		Limit:       p.Limit,
	}
}

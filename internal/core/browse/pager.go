package browse

import "homenest/internal/core/domain"

const DefaultPageSize = 8

// Pager slices a full result array into fixed-size pages on the client.
type Pager struct {
	size int
}

func NewPager(size int) Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Pager{size: size}
}

func (p Pager) Size() int { return p.size }

// PageCount is ceil(n/size); zero results mean zero pages.
func (p Pager) PageCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + p.size - 1) / p.size
}

// Clamp maps a requested page into [1, PageCount]. With no results it is always 1.
func (p Pager) Clamp(page, n int) int {
	last := p.PageCount(n)
	if page < 1 || last == 0 {
		return 1
	}
	if page > last {
		return last
	}
	return page
}

// Slice returns the items of a page. Pages past the end are empty.
func (p Pager) Slice(items []domain.Property, page int) Page {
	if page < 1 {
		page = 1
	}
	n := len(items)

	// The multiplication only runs for pages that hold items, so huge page numbers cannot overflow.
	pageItems := []domain.Property{}
	if n > 0 && page-1 <= (n-1)/p.size {
		start := (page - 1) * p.size
		end := start + p.size
		if end > n {
			end = n
		}
		pageItems = items[start:end]
	}

	return Page{
		Items:  pageItems,
		Number: page,
		Count:  p.PageCount(n),
		Total:  n,
		Size:   p.size,
	}
}

// Page is one page of results plus what the page controls need.
type Page struct {
	Items  []domain.Property
	Number int
	Count  int
	Total  int
	Size   int
}

// ShowControls is false when there is nothing to page through.
func (pg Page) ShowControls() bool { return pg.Total > 0 }

func (pg Page) HasPrev() bool { return pg.Number > 1 }

func (pg Page) HasNext() bool { return pg.Number < pg.Count }

// Pages lists 1..Count for numbered page buttons.
func (pg Page) Pages() []int {
	out := make([]int, pg.Count)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

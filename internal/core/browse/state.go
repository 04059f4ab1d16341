package browse

import (
	"net/url"
	"strconv"

	"homenest/internal/core/domain"
)

// State is the filter tuple plus the current page of a listing view.
// Every filter setter sends the view back to the first page.
type State struct {
	filter domain.PropertyFilter
	page   int
}

func NewState(filter domain.PropertyFilter) State {
	return State{filter: filter, page: 1}
}

func (s State) Filter() domain.PropertyFilter { return s.filter }

// Page is 1-indexed.
func (s State) Page() int {
	if s.page < 1 {
		return 1
	}
	return s.page
}

func (s *State) SetSearch(search string) {
	s.filter.Search = search
	s.page = 1
}

func (s *State) SetCategory(category string) {
	s.filter.Category = category
	s.page = 1
}

func (s *State) SetSort(order domain.SortOrder) {
	s.filter.Sort = order
	s.page = 1
}

func (s *State) SetPriceRange(min, max *float64) {
	s.filter.PriceMin = min
	s.filter.PriceMax = max
	s.page = 1
}

// SetFilter replaces the whole tuple.
func (s *State) SetFilter(f domain.PropertyFilter) {
	s.filter = f
	s.page = 1
}

func (s *State) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.page = page
}

// Query encodes the state; page is only written past the first page.
func (s State) Query() url.Values {
	q := s.filter.QueryParams()
	if s.Page() > 1 {
		q.Set("page", strconv.Itoa(s.Page()))
	}
	return q
}

// StateFromQuery is the inverse of Query.
func StateFromQuery(q url.Values) State {
	st := NewState(domain.ParsePropertyFilter(q))
	if p, err := strconv.Atoi(q.Get("page")); err == nil {
		st.SetPage(p)
	}
	return st
}

// NextCategory cycles "" -> Rent -> Sale -> Commercial -> Land -> "".
func NextCategory(current string) string {
	options := append([]string{""}, domain.Categories...)
	for i, c := range options {
		if c == current {
			return options[(i+1)%len(options)]
		}
	}
	return ""
}

// NextSort cycles through domain.SortOrders.
func NextSort(current domain.SortOrder) domain.SortOrder {
	for i, o := range domain.SortOrders {
		if o == current {
			return domain.SortOrders[(i+1)%len(domain.SortOrders)]
		}
	}
	return domain.SortDefault
}

package domain

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// SortOrder is the price ordering requested from the listing service.
type SortOrder string

const (
	SortDefault   SortOrder = ""
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

// SortOrders lists the orders in the order the UI cycles through them.
var SortOrders = []SortOrder{SortDefault, SortPriceAsc, SortPriceDesc}

func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortPriceAsc, SortPriceDesc:
		return SortOrder(s)
	default:
		return SortDefault
	}
}

func (s SortOrder) Label() string {
	switch s {
	case SortPriceAsc:
		return "Price: Low to High"
	case SortPriceDesc:
		return "Price: High to Low"
	default:
		return "Default"
	}
}

// Query parameter names understood by GET /properties.
const (
	ParamSearch   = "search"
	ParamCategory = "category"
	ParamSort     = "sort"
	ParamMinPrice = "minPrice"
	ParamMaxPrice = "maxPrice"
)

// PropertyFilter is the tuple that drives one listing fetch.
type PropertyFilter struct {
	Search   string
	Category string
	Sort     SortOrder
	PriceMin *float64
	PriceMax *float64
}

// QueryParams returns exactly the non-empty fields of the filter.
func (f PropertyFilter) QueryParams() url.Values {
	q := url.Values{}
	if s := strings.TrimSpace(f.Search); s != "" {
		q.Set(ParamSearch, s)
	}
	if f.Category != "" {
		q.Set(ParamCategory, f.Category)
	}
	if f.Sort != SortDefault {
		q.Set(ParamSort, string(f.Sort))
	}
	if f.PriceMin != nil {
		q.Set(ParamMinPrice, FormatPrice(*f.PriceMin))
	}
	if f.PriceMax != nil {
		q.Set(ParamMaxPrice, FormatPrice(*f.PriceMax))
	}
	return q
}

// ParsePropertyFilter reads a filter back from query values.
// Unknown sort values and unparsable or negative prices are treated as unset.
func ParsePropertyFilter(q url.Values) PropertyFilter {
	return PropertyFilter{
		Search:   strings.TrimSpace(q.Get(ParamSearch)),
		Category: q.Get(ParamCategory),
		Sort:     ParseSortOrder(q.Get(ParamSort)),
		PriceMin: ParsePrice(q.Get(ParamMinPrice)),
		PriceMax: ParsePrice(q.Get(ParamMaxPrice)),
	}
}

// Equal compares filters by value, including the price bounds.
func (f PropertyFilter) Equal(other PropertyFilter) bool {
	return f.Search == other.Search &&
		f.Category == other.Category &&
		f.Sort == other.Sort &&
		equalBound(f.PriceMin, other.PriceMin) &&
		equalBound(f.PriceMax, other.PriceMax)
}

func (f PropertyFilter) IsZero() bool {
	return f.Equal(PropertyFilter{})
}

// FormatPrice renders a price without exponent or trailing zeros: 100000 -> "100000".
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParsePrice returns nil for empty, malformed, non-finite or negative input.
func ParsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	return &v
}

// Price is a helper for building filters in code.
func Price(v float64) *float64 {
	return &v
}

func equalBound(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

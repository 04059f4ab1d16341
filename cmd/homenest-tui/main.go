package main

import (
	"flag"
	"log"

	"homenest/internal"
	"homenest/internal/core/browse"
	"homenest/internal/core/domain"
)

func main() {
	var (
		plain    = flag.Bool("plain", false, "print one page of results instead of the interactive browser")
		search   = flag.String("search", "", "filter by property name")
		category = flag.String("category", "", "filter by category (Rent, Sale, Commercial, Land)")
		sortBy   = flag.String("sort", "", "price-asc or price-desc")
		minPrice = flag.String("min-price", "", "lowest price")
		maxPrice = flag.String("max-price", "", "highest price")
		page     = flag.Int("page", 1, "page to show in plain mode")
	)
	flag.Parse()

	state := browse.NewState(domain.PropertyFilter{
		Search:   *search,
		Category: *category,
		Sort:     domain.ParseSortOrder(*sortBy),
		PriceMin: domain.ParsePrice(*minPrice),
		PriceMax: domain.ParsePrice(*maxPrice),
	})
	state.SetPage(*page)

	app, err := internal.NewBrowserApp(internal.BrowserOptions{Plain: *plain, Initial: state})
	if err != nil {
		log.Fatalf("Failed to initialize terminal browser: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("Terminal browser failed: %v", err)
	}
}

package tui

import (
	"fmt"
	"strings"

	"homenest/internal/core/browse"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var sections []string

	if m.mode == detailMode {
		sections = append(sections, m.viewport.View())
	} else {
		sections = append(sections, m.renderHeader(), m.renderListing())
		if pager := m.renderPager(); pager != "" {
			sections = append(sections, pager)
		}
	}

	switch m.mode {
	case searchMode:
		sections = append(sections, "Search: "+m.input.View())
	case priceMode:
		sections = append(sections, "Price: "+m.input.View())
	default:
		status := m.statusMsg
		if m.detailLoading {
			status = m.spinner.View() + " " + status
		}
		sections = append(sections, StatusBarStyle.Render(status))
	}

	sections = append(sections, m.help.View(m.keys))
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	return TitleStyle.Render("HomeNest") + "  " + FilterStyle.Render(describeFilter(m.state.Filter()))
}

func describeFilter(f domain.PropertyFilter) string {
	category := f.Category
	if category == "" {
		category = "All Categories"
	}
	parts := []string{category, "Sort: " + f.Sort.Label()}
	if f.Search != "" {
		parts = append([]string{fmt.Sprintf("%q", f.Search)}, parts...)
	}
	if r := formatPriceRange(f); r != "" {
		parts = append(parts, "Price: "+r)
	}
	return strings.Join(parts, " · ")
}

func (m Model) renderListing() string {
	listing := m.listing()

	switch listing.Kind {
	case browse.ListingLoading:
		return m.spinner.View() + " Loading properties..."
	case browse.ListingEmpty:
		return MutedStyle.Render(listing.Message)
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	cards := make([]string, len(listing.Cards))
	for i, c := range listing.Cards {
		cards[i] = renderCard(c, i == m.selected, width)
	}
	return strings.Join(cards, "\n")
}

// renderCard draws a card as three lines: name, badges and price, excerpt.
func renderCard(c browse.Card, selected bool, width int) string {
	p := c.Property
	lines := []string{
		TitleStyle.Render(p.PropertyName),
		BadgeStyle.Render(p.Category) + " " + PriceStyle.Render(c.PriceLabel) + " " + MutedStyle.Render(p.Location),
		lipgloss.NewStyle().Width(width).Render(c.Excerpt),
	}
	body := strings.Join(lines, "\n")
	if selected {
		return SelectedCardStyle.Render(body)
	}
	return CardStyle.Render(body)
}

func (m Model) renderPager() string {
	if m.snapshot.Loading() {
		return ""
	}
	pg := m.currentPage()
	if !pg.ShowControls() {
		return ""
	}
	return PagerStyle.Render(fmt.Sprintf("Page %d of %d · %d properties", pg.Number, pg.Count, pg.Total))
}

// detailMarkdown is the detail view before glamour styles it.
func detailMarkdown(d *domain.PropertyDetails) string {
	p := d.Property
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.PropertyName)
	fmt.Fprintf(&b, "**%s** · **%s** · %s\n\n", p.Category, browse.FormatPriceLabel(p.Price), p.Location)
	if p.Description != "" {
		b.WriteString(p.Description)
		b.WriteString("\n\n")
	}
	if p.UserName != "" {
		fmt.Fprintf(&b, "_Listed by %s_\n\n", p.UserName)
	}

	fmt.Fprintf(&b, "## Reviews (%d)\n\n", d.Summary.Count)
	if d.Summary.Count > 0 {
		fmt.Fprintf(&b, "Average rating: %.1f / %d\n\n", d.Summary.AverageRating, domain.MaxRating)
	}
	if len(d.Reviews) == 0 {
		b.WriteString("No reviews yet.\n")
	}
	for _, r := range d.Reviews {
		fmt.Fprintf(&b, "- **%s** %s: %s\n", r.ReviewerName, strings.Repeat("★", r.Rating), r.ReviewText)
	}
	return b.String()
}

func (m Model) renderDetail() string {
	md := detailMarkdown(m.detail)
	wrap := m.width - 2
	if wrap < 20 {
		wrap = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.markdownStyle),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.logger.Warn("Markdown renderer unavailable", port.Fields{"error": err.Error()})
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		m.logger.Warn("Markdown render failed", port.Fields{"error": err.Error()})
		return md
	}
	return out
}

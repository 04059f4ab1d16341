package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"homenest/internal/core/browse"
	"homenest/internal/core/port/usecases_port"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const defaultWidth = 80

// IsInteractive reports whether fd is a terminal the full-screen browser can drive.
func IsInteractive(fd int) bool {
	return term.IsTerminal(fd)
}

// TerminalWidth falls back to 80 columns when fd is not a terminal.
func TerminalWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// PrintPage writes one page of results as uncoloured text cards.
func PrintPage(ctx context.Context, w io.Writer, uc usecases_port.BrowsePropertiesUseCasePort, state browse.State, width int) error {
	if width < 20 {
		width = 20
	}

	res, err := uc.Execute(ctx, state)
	if err != nil {
		return fmt.Errorf("failed to browse properties: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "HomeNest · %s\n\n", describeFilter(res.State.Filter()))

	switch res.Listing.Kind {
	case browse.ListingEmpty, browse.ListingLoading:
		b.WriteString(res.Listing.Message)
		b.WriteString("\n")
	default:
		wrap := lipgloss.NewStyle().Width(width - 2)
		for _, c := range res.Listing.Cards {
			p := c.Property
			fmt.Fprintf(&b, "%s [%s] %s · %s\n", p.PropertyName, p.Category, c.PriceLabel, p.Location)
			for _, line := range strings.Split(wrap.Render(c.Excerpt), "\n") {
				b.WriteString("  " + strings.TrimRight(line, " ") + "\n")
			}
			fmt.Fprintf(&b, "  id: %s\n\n", c.Key)
		}
	}

	if res.Page.ShowControls() {
		fmt.Fprintf(&b, "Page %d of %d · %d properties\n", res.Page.Number, res.Page.Count, res.Page.Total)
	}

	_, err = io.WriteString(w, b.String())
	return err
}

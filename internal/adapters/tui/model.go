package tui

import (
	"context"
	"fmt"
	"strings"

	"homenest/internal/contextkeys"
	"homenest/internal/core/browse"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
	"homenest/internal/core/port/usecases_port"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour/styles"
)

type viewMode int

const (
	listMode viewMode = iota
	searchMode
	priceMode
	detailMode
)

// Options configures a Model.
type Options struct {
	Searcher browse.Searcher
	Details  usecases_port.GetPropertyDetailsUseCasePort
	PageSize int
	Initial  browse.State
	// MarkdownStyle is a glamour standard style name.
	MarkdownStyle string
}

// Model is the interactive listing browser.
type Model struct {
	ctx      context.Context
	logger   port.LoggerPort
	searcher browse.Searcher
	details  usecases_port.GetPropertyDetailsUseCasePort

	state    browse.State
	pager    browse.Pager
	fetcher  *browse.Fetcher
	pending  browse.Ticket
	snapshot browse.Snapshot
	selected int

	mode     viewMode
	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	detail        *domain.PropertyDetails
	detailReq     int
	detailLoading bool
	markdownStyle string

	width     int
	height    int
	statusMsg string
}

// NewModel issues the first fetch cycle immediately; Init runs it.
func NewModel(ctx context.Context, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = PriceStyle

	ti := textinput.New()
	ti.CharLimit = 64

	h := help.New()
	h.Styles.ShortKey = TitleStyle
	h.Styles.ShortDesc = MutedStyle
	h.Styles.FullKey = TitleStyle
	h.Styles.FullDesc = MutedStyle

	mdStyle := opts.MarkdownStyle
	if mdStyle == "" {
		mdStyle = styles.DarkStyle
	}

	m := Model{
		ctx:           ctx,
		logger:        contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "tui"}),
		searcher:      opts.Searcher,
		details:       opts.Details,
		state:         opts.Initial,
		pager:         browse.NewPager(opts.PageSize),
		fetcher:       browse.NewFetcher(),
		input:         ti,
		spinner:       s,
		viewport:      viewport.New(80, 20),
		help:          h,
		keys:          keys,
		markdownStyle: mdStyle,
		width:         80,
		height:        24,
	}
	m.begin()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchListings(m.ctx, m.searcher, m.pending))
}

// begin starts a fetch cycle for the current filter. Any outstanding cycle becomes stale.
func (m *Model) begin() tea.Cmd {
	m.pending = m.fetcher.Begin(m.state.Filter())
	m.snapshot = m.fetcher.Snapshot()
	m.selected = 0
	m.statusMsg = "Loading..."
	m.logger.Debug("Fetch cycle started", port.Fields{
		"seq":    m.pending.Seq,
		"filter": m.pending.Filter.QueryParams().Encode(),
	})
	return tea.Batch(m.spinner.Tick, fetchListings(m.ctx, m.searcher, m.pending))
}

// currentPage is the visible slice of the last settled result.
func (m Model) currentPage() browse.Page {
	return m.pager.Slice(m.snapshot.Properties, m.state.Page())
}

func (m Model) listing() browse.Listing {
	return browse.BuildListing(m.snapshot.Loading(), m.currentPage().Items)
}

func (m Model) selectedProperty() (domain.Property, bool) {
	items := m.currentPage().Items
	if m.selected < 0 || m.selected >= len(items) {
		return domain.Property{}, false
	}
	return items[m.selected], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listingsMsg:
		if !m.fetcher.Settle(msg.ticket, msg.properties, msg.err) {
			m.logger.Debug("Discarding stale listing response", port.Fields{"seq": msg.ticket.Seq, "current_seq": m.pending.Seq})
			return m, nil
		}
		m.snapshot = m.fetcher.Snapshot()
		if msg.err != nil {
			m.logger.Error("Listing fetch failed", msg.err, port.Fields{"seq": msg.ticket.Seq})
		}
		m.state.SetPage(m.pager.Clamp(m.state.Page(), len(m.snapshot.Properties)))
		m.selected = 0
		m.statusMsg = fmt.Sprintf("%d properties", len(m.snapshot.Properties))
		return m, nil

	case detailsMsg:
		if msg.requestID != m.detailReq {
			return m, nil
		}
		m.detailLoading = false
		if msg.err != nil {
			m.logger.Error("Property details fetch failed", msg.err, nil)
			m.statusMsg = "Could not load details"
			return m, nil
		}
		m.detail = msg.details
		m.viewport.SetContent(m.renderDetail())
		m.viewport.GotoTop()
		m.mode = detailMode
		m.statusMsg = msg.details.Property.PropertyName
		return m, nil

	case spinner.TickMsg:
		if m.snapshot.Loading() || m.detailLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		if m.mode == detailMode && m.detail != nil {
			m.viewport.SetContent(m.renderDetail())
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case searchMode, priceMode:
			return m.updateInput(msg)
		case detailMode:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pg := m.currentPage()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(pg.Items)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if pg.HasPrev() {
			m.state.SetPage(pg.Number - 1)
			m.selected = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if pg.HasNext() {
			m.state.SetPage(pg.Number + 1)
			m.selected = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = searchMode
		m.input.Placeholder = "Search by name"
		m.input.SetValue(m.state.Filter().Search)
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Price):
		m.mode = priceMode
		m.input.Placeholder = "min-max, e.g. 100000-500000"
		m.input.SetValue(formatPriceRange(m.state.Filter()))
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Category):
		m.state.SetCategory(browse.NextCategory(m.state.Filter().Category))
		cmd := m.begin()
		return m, cmd

	case key.Matches(msg, m.keys.Sort):
		m.state.SetSort(browse.NextSort(m.state.Filter().Sort))
		cmd := m.begin()
		return m, cmd

	case key.Matches(msg, m.keys.Reset):
		if m.state.Filter().IsZero() {
			return m, nil
		}
		m.state.SetFilter(domain.PropertyFilter{})
		cmd := m.begin()
		return m, cmd

	case key.Matches(msg, m.keys.Refresh):
		cmd := m.begin()
		return m, cmd

	case key.Matches(msg, m.keys.Enter):
		p, ok := m.selectedProperty()
		if !ok || m.details == nil {
			return m, nil
		}
		m.detailReq++
		m.detailLoading = true
		m.statusMsg = "Loading details..."
		return m, tea.Batch(m.spinner.Tick, fetchDetails(m.ctx, m.details, p.ID, m.detailReq))
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.mode = listMode
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = listMode
		m.input.Blur()

		if mode == searchMode {
			if value == m.state.Filter().Search {
				return m, nil
			}
			m.state.SetSearch(value)
			cmd := m.begin()
			return m, cmd
		}

		minPrice, maxPrice, ok := parsePriceRange(value)
		if !ok {
			m.statusMsg = "Price range must look like 100000-500000"
			return m, nil
		}
		m.state.SetPriceRange(minPrice, maxPrice)
		cmd := m.begin()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.mode = listMode
		m.detail = nil
		m.statusMsg = fmt.Sprintf("%d properties", len(m.snapshot.Properties))
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// resize gives the viewport everything but the header, status and help lines.
func (m *Model) resize() {
	chrome := 3
	if m.help.ShowAll {
		chrome += 3
	}
	h := m.height - chrome
	if h < 1 {
		h = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

// parsePriceRange accepts "min-max", "min-", "-max", a single number as the upper bound,
// or "" to clear both bounds.
func parsePriceRange(s string) (minPrice, maxPrice *float64, ok bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return nil, nil, true
	}

	lo, hi, found := strings.Cut(s, "-")
	if !found {
		lo, hi = "", lo
	}
	if lo != "" {
		if minPrice = domain.ParsePrice(lo); minPrice == nil {
			return nil, nil, false
		}
	}
	if hi != "" {
		if maxPrice = domain.ParsePrice(hi); maxPrice == nil {
			return nil, nil, false
		}
	}
	return minPrice, maxPrice, true
}

func formatPriceRange(f domain.PropertyFilter) string {
	if f.PriceMin == nil && f.PriceMax == nil {
		return ""
	}
	var lo, hi string
	if f.PriceMin != nil {
		lo = domain.FormatPrice(*f.PriceMin)
	}
	if f.PriceMax != nil {
		hi = domain.FormatPrice(*f.PriceMax)
	}
	return lo + "-" + hi
}

package browse

import (
	"context"
	"sync"

	"homenest/internal/core/domain"
)

// Searcher performs one outbound listing query.
type Searcher interface {
	SearchProperties(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
}

type Phase int

const (
	Idle Phase = iota
	Loading
)

func (p Phase) String() string {
	if p == Loading {
		return "loading"
	}
	return "idle"
}

// Ticket identifies one fetch cycle.
type Ticket struct {
	Seq    uint64
	Filter domain.PropertyFilter
}

// Snapshot is a consistent copy of the fetcher state.
type Snapshot struct {
	Phase      Phase
	Properties []domain.Property
	Filter     domain.PropertyFilter
	Err        error
	Seq        uint64
}

func (s Snapshot) Loading() bool { return s.Phase == Loading }

// Fetcher owns the result array of a listing view. Only the newest
// issued cycle may write it, so a slow response to an older filter
// can never overwrite a newer one.
type Fetcher struct {
	mu         sync.Mutex
	issued     uint64
	phase      Phase
	properties []domain.Property
	filter     domain.PropertyFilter
	err        error
}

func NewFetcher() *Fetcher {
	return &Fetcher{properties: []domain.Property{}}
}

// Begin starts a cycle and supersedes any outstanding one.
func (f *Fetcher) Begin(filter domain.PropertyFilter) Ticket {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.issued++
	f.phase = Loading
	f.filter = filter
	return Ticket{Seq: f.issued, Filter: filter}
}

// Settle applies the outcome of a cycle. It reports false and changes
// nothing when a newer cycle has been issued since t.
// A failed cycle leaves the array empty and keeps err for the log.
func (f *Fetcher) Settle(t Ticket, properties []domain.Property, err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t.Seq != f.issued {
		return false
	}

	f.phase = Idle
	f.err = err
	if err != nil || properties == nil {
		f.properties = []domain.Property{}
		return true
	}
	f.properties = properties
	return true
}

// Fetch runs one full cycle against s and returns the state after it.
// The returned bool is false when the response was stale.
func (f *Fetcher) Fetch(ctx context.Context, s Searcher, filter domain.PropertyFilter) (Snapshot, bool) {
	t := f.Begin(filter)
	properties, err := s.SearchProperties(ctx, filter)
	applied := f.Settle(t, properties, err)
	return f.Snapshot(), applied
}

func (f *Fetcher) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	props := make([]domain.Property, len(f.properties))
	copy(props, f.properties)
	return Snapshot{
		Phase:      f.phase,
		Properties: props,
		Filter:     f.filter,
		Err:        f.err,
		Seq:        f.issued,
	}
}

// Package showcase implements the project showcase of the portfolio page: the
// category filter, the auto-advancing carousel and the quick-browse grid.
//
// Data flows one way. The filter narrows the store to a filtered sequence.
// The carousel and the grid both index into that sequence, and a grid card
// click feeds its index back into the carousel.
package showcase

import (
	"sync"
	"time"

	"github.com/HamzaLatif02/portfolio/internal/clock"
	"github.com/HamzaLatif02/portfolio/internal/project"
)

// Options configure a Showcase. Zero values mean the real clock and the
// default interval.
type Options struct {
	Clock    clock.Clock
	Interval time.Duration
	// OnChange runs after the auto-advance timer moves the carousel.
	OnChange func()
}

// Showcase is the per-page state of the project section.
type Showcase struct {
	mu       sync.Mutex
	store    *project.Store
	filter   *FilterSelector
	filtered []project.Project
	carousel *Carousel
}

// New mounts a showcase over store with no filter applied.
func New(store *project.Store, opts Options) *Showcase {
	s := &Showcase{
		store:  store,
		filter: NewFilterSelector(),
	}
	s.filtered = store.Filter(s.filter.Current())
	s.carousel = NewCarousel(len(s.filtered), opts.Clock, opts.Interval, opts.OnChange)
	return s
}

// SetFilter applies f. When f differs from the active filter the visible
// subset is recomputed and the carousel rewinds to its first item, even if
// the old position would still be in range. It reports whether anything
// changed.
func (s *Showcase) SetFilter(f project.Filter) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.filter.Set(f) {
		return false
	}
	s.filtered = s.store.Filter(f)
	s.carousel.Reset(len(s.filtered))
	return true
}

func (s *Showcase) Filter() project.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.Current()
}

func (s *Showcase) Next()     { s.carousel.Next() }
func (s *Showcase) Previous() { s.carousel.Previous() }

// JumpTo highlights the i-th project of the filtered sequence.
func (s *Showcase) JumpTo(i int) { s.carousel.JumpTo(i) }

func (s *Showcase) HandleKey(key string) bool { return s.carousel.HandleKey(key) }

func (s *Showcase) ToggleAutoPlay() bool { return s.carousel.ToggleAutoPlay() }

func (s *Showcase) SetPaused(paused bool) { s.carousel.SetPaused(paused) }

// Len is the size of the filtered sequence.
func (s *Showcase) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.filtered)
}

// Carousel exposes the controller, mainly for inspection in tests.
func (s *Showcase) Carousel() *Carousel { return s.carousel }

// Close unmounts the showcase and stops its timer.
func (s *Showcase) Close() { s.carousel.Close() }

// FilterOption is one filter button.
type FilterOption struct {
	Filter project.Filter
	Active bool
}

// View is an immutable snapshot of the showcase used for rendering.
type View struct {
	Filters     []FilterOption
	Active      project.Filter
	Projects    []project.Project
	Position    int
	Current     *project.Project
	AutoPlaying bool
	Paused      bool
	Cards       []Card
}

// Empty reports whether the filter left nothing to show.
func (v View) Empty() bool { return len(v.Projects) == 0 }

// ShowControls reports whether arrows, dots and the play toggle are shown.
func (v View) ShowControls() bool { return len(v.Projects) > 1 }

func (s *Showcase) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.filter.Current()
	options := make([]FilterOption, 0, len(project.Filters()))
	for _, f := range project.Filters() {
		options = append(options, FilterOption{Filter: f, Active: f == active})
	}

	state := s.carousel.State()
	v := View{
		Filters:     options,
		Active:      active,
		Projects:    s.filtered,
		Position:    state.Position,
		AutoPlaying: state.AutoPlaying,
		Paused:      state.Paused,
		Cards:       Cards(s.filtered),
	}
	if len(s.filtered) > 0 {
		current := s.filtered[state.Position]
		v.Current = &current
	}
	return v
}

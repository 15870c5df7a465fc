package page

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/HamzaLatif02/portfolio/internal/clock"
	"github.com/HamzaLatif02/portfolio/internal/contact"
	"github.com/HamzaLatif02/portfolio/internal/project"
	"github.com/HamzaLatif02/portfolio/internal/showcase"
)

// ErrPageNotFound is returned for an id that was never mounted, was
// unmounted, or expired.
var ErrPageNotFound = errors.New("page not found")

// DefaultIdleTTL is how long a page survives without any event.
const DefaultIdleTTL = 30 * time.Minute

// DefaultMaxPages bounds how many pages are mounted at once.
const DefaultMaxPages = 1000

// Options configure a Registry.
type Options struct {
	Clock            clock.Clock
	CarouselInterval time.Duration
	ConfirmationTTL  time.Duration
	IdleTTL          time.Duration
	MaxPages         int
}

// Registry tracks the mounted pages.
type Registry struct {
	store *project.Store
	opts  Options

	mu    sync.Mutex
	pages map[string]*Page
}

// NewRegistry returns an empty registry whose pages show store.
func NewRegistry(store *project.Store, opts Options) *Registry {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = DefaultIdleTTL
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}
	return &Registry{
		store: store,
		opts:  opts,
		pages: make(map[string]*Page),
	}
}

// Mount creates the state for a fresh page load. When the registry is full
// the least recently seen page is unmounted first.
func (r *Registry) Mount(prefs Prefs) *Page {
	theme := prefs.Theme
	if theme == "" {
		theme = Light
	}
	p := &Page{
		ID:            uuid.NewString(),
		theme:         theme,
		reducedMotion: prefs.ReducedMotion,
		lastSeen:      r.opts.Clock.Now(),
		changes:       make(chan Change, 4),
		done:          make(chan struct{}),
	}
	p.Showcase = showcase.New(r.store, showcase.Options{
		Clock:    r.opts.Clock,
		Interval: r.opts.CarouselInterval,
		OnChange: func() { p.notify(CarouselChanged) },
	})
	p.Contact = contact.NewState(r.opts.Clock, r.opts.ConfirmationTTL, func() { p.notify(ContactChanged) })

	r.mu.Lock()
	var evicted *Page
	if len(r.pages) >= r.opts.MaxPages {
		evicted = r.leastRecentlySeen()
		delete(r.pages, evicted.ID)
	}
	r.pages[p.ID] = p
	r.mu.Unlock()

	if evicted != nil {
		evicted.close()
		log.Printf("Page limit of %d reached, unmounted page %s", r.opts.MaxPages, evicted.ID)
	}
	return p
}

// leastRecentlySeen returns the page idle for longest. Callers hold r.mu and
// the registry is not empty.
func (r *Registry) leastRecentlySeen() *Page {
	var oldest *Page
	var oldestSeen time.Time
	for _, p := range r.pages {
		if seen := p.idleSince(); oldest == nil || seen.Before(oldestSeen) {
			oldest, oldestSeen = p, seen
		}
	}
	return oldest
}

// Lookup returns the mounted page with id and marks it as seen.
func (r *Registry) Lookup(id string) (*Page, error) {
	r.mu.Lock()
	p, ok := r.pages[id]
	r.mu.Unlock()
	if !ok {
		return nil, ErrPageNotFound
	}
	p.touch(r.opts.Clock.Now())
	return p, nil
}

// Unmount tears the page down. It reports whether the page was mounted.
func (r *Registry) Unmount(id string) bool {
	r.mu.Lock()
	p, ok := r.pages[id]
	delete(r.pages, id)
	r.mu.Unlock()
	if ok {
		p.close()
	}
	return ok
}

// Sweep unmounts every page idle for longer than the TTL and returns how
// many were removed.
func (r *Registry) Sweep() int {
	cutoff := r.opts.Clock.Now().Add(-r.opts.IdleTTL)

	var expired []*Page
	r.mu.Lock()
	for id, p := range r.pages {
		if p.idleSince().Before(cutoff) {
			expired = append(expired, p)
			delete(r.pages, id)
		}
	}
	r.mu.Unlock()

	for _, p := range expired {
		p.close()
	}
	return len(expired)
}

// Run sweeps idle pages every interval until ctx is done, then unmounts
// everything left.
func (r *Registry) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	defer r.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.Printf("Unmounted %d idle pages", n)
			}
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

// Close unmounts every page.
func (r *Registry) Close() {
	r.mu.Lock()
	pages := r.pages
	r.pages = make(map[string]*Page)
	r.mu.Unlock()

	for _, p := range pages {
		p.close()
	}
}

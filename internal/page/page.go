// Package page owns the per-visit UI state of the portfolio. A browser page
// load mounts a Page; every later event from that tab is routed to it until
// it is unmounted or goes idle.
package page

import (
	"sync"
	"time"

	"github.com/HamzaLatif02/portfolio/internal/contact"
	"github.com/HamzaLatif02/portfolio/internal/showcase"
)

// Theme is the colour scheme of the page.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme accepts "light" and "dark"; anything else is reported as unknown.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), true
	}
	return "", false
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }

// ScrollThreshold is the scroll offset, in pixels, past which the header
// switches to its condensed style.
const ScrollThreshold = 50

// Prefs are the host preferences read when the page mounts.
type Prefs struct {
	Theme         Theme
	ReducedMotion bool
}

// Page is the explicitly owned context of one mounted page.
type Page struct {
	ID string

	mu            sync.Mutex
	theme         Theme
	reducedMotion bool
	scrolled      bool
	lastSeen      time.Time
	closed        bool

	Showcase *showcase.Showcase
	Contact  *contact.State

	changes chan Change
	done    chan struct{}
}

// Change says which part of the page a timer updated.
type Change int

const (
	CarouselChanged Change = iota + 1
	ContactChanged
)

// Do runs fn with the page lock held so events for one page run to
// completion one at a time.
func (p *Page) Do(fn func(p *Page)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p)
}

// The accessors below are meant to be called inside Do.

func (p *Page) Theme() Theme { return p.theme }
func (p *Page) ReducedMotion() bool { return p.reducedMotion }
func (p *Page) Scrolled() bool { return p.scrolled }

func (p *Page) ToggleTheme() Theme {
	p.theme = p.theme.Toggle()
	return p.theme
}

// Changes delivers a signal whenever a timer moved the page's state without
// a request from the browser.
func (p *Page) Changes() <-chan Change { return p.changes }

// Done is closed when the page is unmounted.
func (p *Page) Done() <-chan struct{} { return p.done }

// ScrollTo records the window scroll offset. It reports whether the header
// style flipped.
func (p *Page) ScrollTo(y int) bool {
	scrolled := y > ScrollThreshold
	if scrolled == p.scrolled {
		return false
	}
	p.scrolled = scrolled
	return true
}

// notify signals a timer-driven change. Signals are dropped rather than
// queued when the reader is behind; it re-renders from current state anyway.
func (p *Page) notify(c Change) {
	select {
	case p.changes <- c:
	default:
	}
}

func (p *Page) touch(now time.Time) {
	p.mu.Lock()
	p.lastSeen = now
	p.mu.Unlock()
}

func (p *Page) idleSince() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSeen
}

// close tears down every timer the page owns.
func (p *Page) close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.done)
	p.Showcase.Close()
	p.Contact.Close()
}

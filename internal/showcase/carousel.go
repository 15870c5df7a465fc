package showcase

import (
	"sync"
	"time"

	"github.com/HamzaLatif02/portfolio/internal/clock"
)

// DefaultInterval is the auto-advance period of the carousel.
const DefaultInterval = 6 * time.Second

// Carousel tracks which project of the filtered sequence is highlighted.
//
// Auto-advance runs while auto-play is on, the pointer is not over the
// carousel and more than one project is visible. The timer is torn down and
// recreated whenever one of those three inputs changes, and every armed timer
// carries a generation number so a tick from a cancelled timer is dropped.
// At most one timer is live per carousel.
type Carousel struct {
	mu sync.Mutex

	count       int
	position    int
	autoPlaying bool
	paused      bool
	closed      bool

	clock    clock.Clock
	interval time.Duration
	timer    clock.Timer
	gen      uint64
	onChange func()
}

// NewCarousel returns a carousel over count items with auto-play enabled.
// onChange, if set, runs after every timer-driven advance, outside the lock.
func NewCarousel(count int, clk clock.Clock, interval time.Duration, onChange func()) *Carousel {
	if clk == nil {
		clk = clock.Real{}
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	c := &Carousel{
		count:       count,
		autoPlaying: true,
		clock:       clk,
		interval:    interval,
		onChange:    onChange,
	}
	c.mu.Lock()
	c.reconcile()
	c.mu.Unlock()
	return c
}

// State is a consistent read of the carousel.
type State struct {
	Position    int
	Count       int
	AutoPlaying bool
	Paused      bool
}

func (c *Carousel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Position:    c.position,
		Count:       c.count,
		AutoPlaying: c.autoPlaying,
		Paused:      c.paused,
	}
}

func (c *Carousel) Position() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

// Next moves to the following item, wrapping at the end.
func (c *Carousel) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next()
}

// Previous moves to the preceding item, wrapping at the start.
func (c *Carousel) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count == 0 {
		return
	}
	c.position = (c.position - 1 + c.count) % c.count
}

// JumpTo highlights item i. The caller derives i from the same filtered
// sequence, so it is not range-checked here.
func (c *Carousel) JumpTo(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = i
}

// Reset points the carousel at a new filtered sequence of count items and
// rewinds to the first one.
func (c *Carousel) Reset(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = 0
	if c.count != count {
		c.count = count
		c.reconcile()
	}
}

// ToggleAutoPlay flips auto-play and returns the new setting.
func (c *Carousel) ToggleAutoPlay() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoPlaying = !c.autoPlaying
	c.reconcile()
	return c.autoPlaying
}

// SetPaused records whether the pointer is over the carousel.
func (c *Carousel) SetPaused(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused == paused {
		return
	}
	c.paused = paused
	c.reconcile()
}

// Key names understood by HandleKey.
const (
	KeyLeft  = "ArrowLeft"
	KeyRight = "ArrowRight"
)

// HandleKey maps the arrow keys onto Previous and Next. It reports whether
// the key was consumed.
func (c *Carousel) HandleKey(key string) bool {
	switch key {
	case KeyLeft:
		c.Previous()
	case KeyRight:
		c.Next()
	default:
		return false
	}
	return true
}

// ActiveTimers reports how many auto-advance timers are live (0 or 1).
func (c *Carousel) ActiveTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		return 1
	}
	return 0
}

// Close stops auto-advance for good. Calls after Close are harmless.
func (c *Carousel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stop()
}

func (c *Carousel) next() {
	if c.count == 0 {
		return
	}
	c.position = (c.position + 1) % c.count
}

func (c *Carousel) running() bool {
	return !c.closed && c.autoPlaying && !c.paused && c.count > 1
}

// reconcile drops the current timer and arms a fresh one if auto-advance
// should run. Callers hold c.mu.
func (c *Carousel) reconcile() {
	c.stop()
	if c.running() {
		c.arm()
	}
}

func (c *Carousel) stop() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

func (c *Carousel) arm() {
	gen := c.gen
	c.timer = c.clock.AfterFunc(c.interval, func() { c.tick(gen) })
}

func (c *Carousel) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.running() {
		c.mu.Unlock()
		return
	}
	c.next()
	c.arm()
	onChange := c.onChange
	c.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

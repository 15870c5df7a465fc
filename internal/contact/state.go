package contact

import (
	"maps"
	"sync"
	"time"

	"github.com/HamzaLatif02/portfolio/internal/clock"
)

// DefaultConfirmationTTL is how long the "message sent" banner stays up.
const DefaultConfirmationTTL = 5 * time.Second

// State is the contact form of one mounted page.
type State struct {
	mu        sync.Mutex
	form      Form
	errors    Errors
	submitted bool

	clock   clock.Clock
	ttl     time.Duration
	timer   clock.Timer
	gen     uint64
	closed  bool
	onClear func()
}

// NewState returns an empty form. onClear, if set, runs when the
// confirmation banner expires.
func NewState(clk clock.Clock, ttl time.Duration, onClear func()) *State {
	if clk == nil {
		clk = clock.Real{}
	}
	if ttl <= 0 {
		ttl = DefaultConfirmationTTL
	}
	return &State{errors: Errors{}, clock: clk, ttl: ttl, onClear: onClear}
}

// Snapshot is a consistent copy of the form state for rendering.
type Snapshot struct {
	Form      Form
	Errors    Errors
	Submitted bool
}

// Error returns the message for field, if any.
func (s Snapshot) Error(field string) string {
	return s.Errors[Field(field)]
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Form: s.form, Errors: maps.Clone(s.errors), Submitted: s.submitted}
}

// Edit stores a new value for field and clears that field's error only.
func (s *State) Edit(field Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.set(field, value)
	delete(s.errors, field)
}

// Submit validates form. On success the fields and errors are cleared and the
// confirmation flag is raised until the TTL elapses. On failure the values
// are kept and the field errors are recorded.
func (s *State) Submit(form Form) Result {
	res := Validate(form)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !res.OK {
		s.form = form
		s.errors = maps.Clone(res.Errors)
		return res
	}

	s.form = Form{}
	s.errors = Errors{}
	s.submitted = true
	s.stopTimer()
	if !s.closed {
		gen := s.gen
		s.timer = s.clock.AfterFunc(s.ttl, func() { s.expire(gen) })
	}
	return res
}

// Close cancels a pending confirmation timer.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopTimer()
}

func (s *State) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

func (s *State) expire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.submitted = false
	s.timer = nil
	onClear := s.onClear
	s.mu.Unlock()

	if onClear != nil {
		onClear()
	}
}

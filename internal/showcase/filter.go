package showcase

import "github.com/HamzaLatif02/portfolio/internal/project"

// FilterSelector holds the active category filter.
type FilterSelector struct {
	current project.Filter
}

// NewFilterSelector starts on the All sentinel.
func NewFilterSelector() *FilterSelector {
	return &FilterSelector{current: project.All}
}

func (s *FilterSelector) Current() project.Filter { return s.current }

// Set switches the filter. It reports false, and does nothing, when f is
// already active.
func (s *FilterSelector) Set(f project.Filter) bool {
	if s.current == f {
		return false
	}
	s.current = f
	return true
}

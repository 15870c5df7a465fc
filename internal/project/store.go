package project

import "fmt"

// Store is the immutable, ordered project catalog. It is built once at
// startup and never changes; every accessor hands out copies.
type Store struct {
	projects []Project
}

// NewStore validates projects and freezes them into a Store. Order is kept.
func NewStore(projects []Project) (*Store, error) {
	seen := make(map[string]struct{}, len(projects))
	frozen := make([]Project, 0, len(projects))
	for i, p := range projects {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("project #%d: %w", i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("project %q: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}
		frozen = append(frozen, p.clone())
	}
	return &Store{projects: frozen}, nil
}

func (s *Store) Len() int { return len(s.projects) }

// Filter returns, in catalog order, the projects whose tags contain f, or
// every project for All.
func (s *Store) Filter(f Filter) []Project {
	out := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		if f.Matches(p) {
			out = append(out, p.clone())
		}
	}
	return out
}

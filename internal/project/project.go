// Package project holds the portfolio's project catalog: the record type, the
// closed set of category filters and the read-only store loaded at startup.
package project

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrMissingID    = errors.New("project id is required")
	ErrMissingTitle = errors.New("project title is required")
	ErrDuplicateID  = errors.New("duplicate project id")
)

// Links are the optional external links of a project. An empty string means
// the link is absent.
type Links struct {
	Live      string `json:"live,omitempty" yaml:"live,omitempty"`
	Code      string `json:"code,omitempty" yaml:"code,omitempty"`
	CaseStudy string `json:"caseStudy,omitempty" yaml:"caseStudy,omitempty"`
}

// Project is a single portfolio entry.
type Project struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Summary      string   `json:"summary" yaml:"summary"`
	Year         int      `json:"year" yaml:"year"`
	Tags         []string `json:"tags" yaml:"tags"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Image        string   `json:"image" yaml:"image"`
	Links        Links    `json:"links" yaml:"links"`
}

// HasTag reports whether tag is one of the project's categories.
func (p Project) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// HasLinks reports whether any external link is present.
func (p Project) HasLinks() bool {
	return p.Links.Live != "" || p.Links.Code != "" || p.Links.CaseStudy != ""
}

func (p Project) validate() error {
	if p.ID == "" {
		return ErrMissingID
	}
	if p.Title == "" {
		return fmt.Errorf("project %q: %w", p.ID, ErrMissingTitle)
	}
	return nil
}

// clone copies the slices so callers never share backing arrays with the store.
func (p Project) clone() Project {
	p.Tags = slices.Clone(p.Tags)
	p.Technologies = slices.Clone(p.Technologies)
	return p
}

package main

import (
	"bytes"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HamzaLatif02/portfolio/internal/config"
	"github.com/HamzaLatif02/portfolio/internal/contact"
	"github.com/HamzaLatif02/portfolio/internal/page"
	"github.com/HamzaLatif02/portfolio/internal/showcase"
)

type siteContent struct {
	Nav            []navItem
	HeroHeadline   string
	HeroIntro      string
	ProjectsIntro  string
	AboutMe        []string
	Achievements   []achievement
	SkillGroups    []skillGroup
	ContactIntro   string
	ContactBlurb   string
	ResponseTime   string
	ContactSuccess string
	NoProjects     string
}

var content = siteContent{
	Nav:            NavItems,
	HeroHeadline:   HeroHeadline,
	HeroIntro:      HeroIntro,
	ProjectsIntro:  ProjectsIntro,
	AboutMe:        AboutMe,
	Achievements:   Achievements,
	SkillGroups:    SkillGroups,
	ContactIntro:   ContactIntro,
	ContactBlurb:   ContactBlurb,
	ResponseTime:   ResponseTime,
	ContactSuccess: ContactSuccess,
	NoProjects:     NoProjects,
}

// viewData is what every template renders from.
type viewData struct {
	PageID        string
	Owner         config.Owner
	Content       siteContent
	Theme         page.Theme
	ReducedMotion bool
	Scrolled      bool
	Showcase      showcase.View
	Contact       contact.Snapshot
	Year          int
}

type site struct {
	cfg      config.Config
	registry *page.Registry
	tmpl     *template.Template
}

// view snapshots p for rendering. The caller holds the page lock.
func (s *site) view(p *page.Page) viewData {
	return viewData{
		PageID:        p.ID,
		Owner:         s.cfg.Owner,
		Content:       content,
		Theme:         p.Theme(),
		ReducedMotion: p.ReducedMotion(),
		Scrolled:      p.Scrolled(),
		Showcase:      p.Showcase.View(),
		Contact:       p.Contact.Snapshot(),
		Year:          time.Now().Year(),
	}
}

// render writes the named template for p. The caller holds the page lock.
func (s *site) render(c *gin.Context, status int, name string, p *page.Page) {
	c.HTML(status, name, s.view(p))
}

// renderString executes a fragment outside of a gin response, for SSE.
func (s *site) renderString(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

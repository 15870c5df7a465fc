package main

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HamzaLatif02/portfolio/internal/page"
	"github.com/HamzaLatif02/portfolio/internal/project"
)

// setupShowcaseRoutes wires the filter buttons, carousel controls and grid
// cards. Each handler answers with the fragment htmx swaps in.
func setupShowcaseRoutes(g *gin.RouterGroup, s *site) {
	// Filter buttons re-render filters, carousel and grid together
	g.POST("/filter", func(c *gin.Context) {
		f, ok := project.ParseFilter(c.PostForm("filter"))
		if !ok {
			c.String(http.StatusBadRequest, "unknown filter")
			return
		}
		p := currentPage(c)
		p.Showcase.SetFilter(f)
		s.render(c, http.StatusOK, "showcase", p)
	})

	g.POST("/carousel/next", func(c *gin.Context) {
		p := currentPage(c)
		p.Showcase.Next()
		s.render(c, http.StatusOK, "carousel", p)
	})

	g.POST("/carousel/previous", func(c *gin.Context) {
		p := currentPage(c)
		p.Showcase.Previous()
		s.render(c, http.StatusOK, "carousel", p)
	})

	// Dots and grid cards jump straight to an index of the filtered list
	g.POST("/carousel/jump/:index", func(c *gin.Context) {
		p := currentPage(c)
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil || index < 0 || index >= p.Showcase.Len() {
			c.String(http.StatusBadRequest, "invalid project index")
			return
		}
		p.Showcase.JumpTo(index)
		if c.Query("from") == "grid" {
			c.Header("HX-Trigger", "carousel-focus")
		}
		s.render(c, http.StatusOK, "carousel", p)
	})

	// Arrow keys anywhere on the page
	g.POST("/carousel/key", func(c *gin.Context) {
		p := currentPage(c)
		if !p.Showcase.HandleKey(c.PostForm("key")) {
			c.Status(http.StatusNoContent)
			return
		}
		s.render(c, http.StatusOK, "carousel", p)
	})

	g.POST("/carousel/autoplay", func(c *gin.Context) {
		p := currentPage(c)
		p.Showcase.ToggleAutoPlay()
		s.render(c, http.StatusOK, "carousel", p)
	})

	// Pointer entering or leaving the carousel pauses auto-advance
	g.POST("/carousel/hover", func(c *gin.Context) {
		paused, err := strconv.ParseBool(c.PostForm("paused"))
		if err != nil {
			c.String(http.StatusBadRequest, "paused must be a boolean")
			return
		}
		currentPage(c).Showcase.SetPaused(paused)
		c.Status(http.StatusNoContent)
	})
}

// streamEvents pushes fragments changed by timers (carousel auto-advance,
// contact confirmation expiry) to the browser over SSE.
func (s *site) streamEvents(c *gin.Context) {
	p := currentPage(c)
	ctx := c.Request.Context()

	c.Header("Cache-Control", "no-store")
	c.Header("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-p.Done():
			return false
		case change := <-p.Changes():
			// Keep a page with an open stream from being swept as idle.
			if _, err := s.registry.Lookup(p.ID); err != nil {
				return false
			}

			// The contact event carries only the status banner so an
			// expiring confirmation never replaces inputs being typed in.
			event, fragment := "carousel", "carousel"
			if change == page.ContactChanged {
				event, fragment = "contact", "contact-status"
			}
			var data viewData
			p.Do(func(p *page.Page) {
				data = s.view(p)
			})
			html, err := s.renderString(fragment, data)
			if err != nil {
				log.Printf("Error rendering %s event: %v", event, err)
				return false
			}
			c.SSEvent(event, html)
			return true
		}
	})
}

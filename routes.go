package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HamzaLatif02/portfolio/internal/config"
	"github.com/HamzaLatif02/portfolio/internal/page"
)

const pageKey = "page"

func newRouter(cfg config.Config, registry *page.Registry) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	s := &site{cfg: cfg, registry: registry, tmpl: tmpl}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(staticFiles()))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Home page route: every load mounts a fresh page session
	r.GET("/", func(c *gin.Context) {
		p := registry.Mount(page.PrefsFromRequest(c.Request))
		c.Header("Accept-CH", page.HintColorScheme+", "+page.HintReducedMotion)
		// A first visit lacks the hints; ask the browser to retry with them.
		c.Header("Critical-CH", page.HintColorScheme)
		c.Header("Cache-Control", "no-store")
		p.Do(func(p *page.Page) {
			s.render(c, http.StatusOK, "index.html", p)
		})
	})

	pages := r.Group("/pages/:id")
	pages.Use(pageMiddleware(registry))

	// These two must not run under the page lock: the stream is long-lived
	// and unmount takes the lock itself.
	pages.GET("/events", s.streamEvents)
	pages.POST("/unmount", func(c *gin.Context) {
		registry.Unmount(currentPage(c).ID)
		c.Status(http.StatusNoContent)
	})

	// Every other page route is one UI event, run to completion under the
	// page lock.
	events := pages.Group("")
	events.Use(serializeEvents())
	setupShowcaseRoutes(events, s)
	setupContactRoutes(events, s)
	setupPageRoutes(events, s)

	return r, nil
}

// pageMiddleware resolves :id to a mounted page. A page that expired answers
// 410 and asks htmx to reload, which mounts a new one.
func pageMiddleware(registry *page.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := registry.Lookup(c.Param("id"))
		if err != nil {
			if errors.Is(err, page.ErrPageNotFound) {
				c.Header("HX-Refresh", "true")
				c.AbortWithStatus(http.StatusGone)
				return
			}
			log.Printf("Error looking up page: %v", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Set(pageKey, p)
		c.Next()
	}
}

func serializeEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		currentPage(c).Do(func(*page.Page) {
			c.Next()
		})
	}
}

func currentPage(c *gin.Context) *page.Page {
	return c.MustGet(pageKey).(*page.Page)
}

func setupPageRoutes(g *gin.RouterGroup, s *site) {
	// Theme toggle: remembered in a cookie for the next mount
	g.POST("/theme", func(c *gin.Context) {
		p := currentPage(c)
		theme := p.ToggleTheme()
		c.SetCookie(page.ThemeCookie, theme.String(), 3600*24*365, "/", "", false, true)
		c.Header("HX-Trigger", `{"theme-changed":{"theme":"`+theme.String()+`"}}`)
		s.render(c, http.StatusOK, "theme-toggle", p)
	})

	// Scroll reports drive the condensed header
	g.POST("/scroll", func(c *gin.Context) {
		var form struct {
			Y int `form:"y"`
		}
		if err := c.ShouldBind(&form); err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		p := currentPage(c)
		if !p.ScrollTo(form.Y) {
			c.Status(http.StatusNoContent)
			return
		}
		s.render(c, http.StatusOK, "header", p)
	})
}

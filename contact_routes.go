package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HamzaLatif02/portfolio/internal/contact"
)

type fieldErrorData struct {
	Field string
	Error string
}

// setupContactRoutes wires the contact form. Messages are validated and
// acknowledged but never sent anywhere.
func setupContactRoutes(g *gin.RouterGroup, s *site) {
	// Contact fragment with the form's current values and errors
	g.GET("/contact", func(c *gin.Context) {
		s.render(c, http.StatusOK, "contact", currentPage(c))
	})

	// Handle contact form submission with HTMX
	g.POST("/contact", func(c *gin.Context) {
		var form contact.Form
		if err := c.ShouldBind(&form); err != nil {
			c.String(http.StatusBadRequest, "invalid form")
			return
		}

		p := currentPage(c)
		res := p.Contact.Submit(form)
		if res.OK {
			log.Printf("Contact form accepted for page %s", p.ID)
		}
		s.render(c, http.StatusOK, "contact", p)
	})

	// Typing in a field clears that field's error only
	g.POST("/contact/field", func(c *gin.Context) {
		field, ok := contact.ParseField(c.PostForm("field"))
		if !ok {
			c.String(http.StatusBadRequest, "unknown field")
			return
		}
		p := currentPage(c)
		p.Contact.Edit(field, c.PostForm(string(field)))
		c.HTML(http.StatusOK, "field-error", fieldErrorData{
			Field: string(field),
			Error: p.Contact.Snapshot().Errors[field],
		})
	})
}

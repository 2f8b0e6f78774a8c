package site

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/view"
)

const (
	contactSuccess = "Thank you for your message! I'll get back to you soon."
	contactFailure = "Sorry, there was an error sending your message. Please try again later."
)

// handleContactSubmit validates the form, stores it and hands it to the
// relay. HTMX posts get the form or result fragment; plain posts get the
// whole page.
func (s *Server) handleContactSubmit(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBind(&sub); err != nil {
		c.String(http.StatusBadRequest, "Malformed form")
		return
	}

	_, fieldErrs, err := s.contact.Submit(c.Request.Context(), sub)
	switch {
	case errors.Is(err, contact.ErrInvalid):
		s.respondContact(c, http.StatusUnprocessableEntity, view.ContactForm(sub.Normalized(), fieldErrs))
	case errors.Is(err, contact.ErrRelay):
		s.respondContact(c, http.StatusOK, view.ContactResult(false, contactFailure))
	case err != nil:
		s.log.Error("contact submit", zap.Error(err))
		s.respondContact(c, http.StatusOK, view.ContactResult(false, contactFailure))
	default:
		s.respondContact(c, http.StatusOK, view.ContactResult(true, contactSuccess))
	}
}

func (s *Server) respondContact(c *gin.Context, status int, body *view.Node) {
	if isHTMX(c) {
		s.writeNodes(c, status, body)
		return
	}
	s.writeDocument(c, status, s.contactDocument(body))
}

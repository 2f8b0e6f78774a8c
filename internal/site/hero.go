package site

import (
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/hero"
)

// handleHeroStream pushes typewriter frames as "frame" events until the
// client goes away.
func (s *Server) handleHeroStream(c *gin.Context) {
	tw, err := hero.New(s.site.Roles)
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	err = tw.Run(c.Request.Context(), func(f hero.Frame) error {
		c.SSEvent("frame", html.EscapeString(f.Text))
		c.Writer.Flush()
		return c.Request.Context().Err()
	})
	if err != nil {
		s.log.Debug("hero stream closed", zap.Error(err))
	}
}

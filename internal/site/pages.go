package site

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/gallery"
	"github.com/Zachkp/portfolio/internal/view"
)

func (s *Server) homeDocument() *dom.Document {
	return dom.New(view.HomePage(s.site, s.catalog.ListFeatured()))
}

// projectsDocument renders the projects page with the grid for filter and,
// when id names a project, its detail modal already open.
func (s *Server) projectsDocument(filter, id string) (*dom.Document, error) {
	doc := dom.New(view.ProjectsPage(s.site))
	g := gallery.New(s.catalog, doc)
	if err := g.Load(filter); err != nil {
		return nil, err
	}
	if _, err := g.OpenDeepLink(id); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Server) aboutDocument() *dom.Document {
	return dom.New(view.AboutPage(s.site))
}

func (s *Server) contactDocument(body *view.Node) *dom.Document {
	return dom.New(view.ContactPage(s.site, body))
}

func (s *Server) handleHome(c *gin.Context) {
	s.writeDocument(c, http.StatusOK, s.homeDocument())
}

func (s *Server) handleProjects(c *gin.Context) {
	doc, err := s.projectsDocument(c.Query("filter"), c.Query("id"))
	if err != nil {
		s.log.Error("render projects", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	s.writeDocument(c, http.StatusOK, doc)
}

// handleGrid answers a filter button with the new gallery content.
func (s *Server) handleGrid(c *gin.Context) {
	holder := dom.New(view.El("div", []view.Attr{view.A("id", gallery.GalleryID)}))
	if err := gallery.New(s.catalog, holder).SetFilter(c.Query("filter")); err != nil {
		s.log.Error("render grid", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := holder.RenderChildren(c.Writer, gallery.GalleryID); err != nil {
		s.log.Error("write grid", zap.Error(err))
	}
}

// handleDetail answers a card click with the open modal. It replaces the
// existing modal element, so at most one is ever present.
func (s *Server) handleDetail(c *gin.Context) {
	id, ok := gallery.ParseID(c.Param("id"))
	if !ok {
		c.String(http.StatusNotFound, "Project not found")
		return
	}
	if _, ok := s.catalog.FindByID(id); !ok {
		c.String(http.StatusNotFound, "Project not found")
		return
	}
	modal := dom.New(view.Modal())
	g := gallery.New(s.catalog, modal)
	if err := g.Restore(c.Query("filter"), id); err != nil {
		s.log.Error("render detail", zap.Int("id", id), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Header("HX-Push-Url", view.FilteredDetailPath(g.Filter(), id))
	s.writeDocument(c, http.StatusOK, modal)
}

// handleModalClose replays a close event against the modal state the
// request carries. Keys other than Escape and clicks outside the overlay or
// close control leave the modal open.
func (s *Server) handleModalClose(c *gin.Context) {
	modal := dom.New(view.Modal())
	g := gallery.New(s.catalog, modal)
	id, _ := gallery.ParseID(c.Query("id"))

	err := g.Restore(c.Query("filter"), id)
	if err == nil {
		_, wasOpen := g.Open()
		switch {
		case !wasOpen:
			err = g.CloseDetail()
		case c.Query("key") != "":
			err = g.HandleKey(c.Query("key"))
		default:
			err = g.HandleClick(c.DefaultQuery("target", gallery.TargetClose))
		}
	}
	if err != nil {
		s.log.Error("render modal", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if _, open := g.Open(); !open {
		c.Header("HX-Push-Url", view.FilteredPath(g.Filter()))
	}
	s.writeDocument(c, http.StatusOK, modal)
}

func (s *Server) handleAbout(c *gin.Context) {
	s.writeDocument(c, http.StatusOK, s.aboutDocument())
}

func (s *Server) handleContactForm(c *gin.Context) {
	s.writeDocument(c, http.StatusOK, s.contactDocument(view.ContactForm(contact.Submission{}, nil)))
}

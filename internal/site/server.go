// Package site is the HTTP surface: pages, HTMX fragments, the contact
// endpoint, the hero stream and the admin area.
package site

import (
	"bytes"
	"context"
	"crypto/rand"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/storage"
	"github.com/Zachkp/portfolio/internal/view"
)

// Store is the persistence the server needs.
type Store interface {
	contact.Store
	RecordVisit(ctx context.Context, v storage.Visit) error
	CleanupVisitors(ctx context.Context, now time.Time, retention time.Duration) (int64, error)
	Stats(ctx context.Context, now time.Time) (*storage.Stats, error)
	ListMessages(ctx context.Context, limit int) ([]storage.StoredMessage, error)
	GetMessage(ctx context.Context, id string) (storage.StoredMessage, error)
	RecentVisitors(ctx context.Context, limit int) ([]storage.Visit, error)
	Ping(ctx context.Context) error
}

// Options configures a Server.
type Options struct {
	Catalog *catalog.Catalog
	Store   Store
	Relay   contact.Relay
	Log     *zap.Logger

	StaticDir        string
	AdminUsername    string
	AdminPassword    string
	VisitorRetention time.Duration
	// SecureCookies marks the admin cookie Secure; set in release mode.
	SecureCookies bool
}

// Server holds the gin engine and its collaborators.
type Server struct {
	catalog *catalog.Catalog
	site    view.Site
	store   Store
	contact *contact.Service
	log     *zap.Logger
	admin   *admin
	opts    Options
	now     func() time.Time

	engine *gin.Engine
}

// New builds the server and registers every route. It fails only when the
// admin secrets cannot be generated.
func New(opts Options) (*Server, error) {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Relay == nil {
		opts.Relay = contact.LogRelay{Log: opts.Log}
	}
	if opts.VisitorRetention <= 0 {
		opts.VisitorRetention = 365 * 24 * time.Hour
	}

	s := &Server{
		catalog: opts.Catalog,
		site:    Profile(opts.Catalog),
		store:   opts.Store,
		log:     opts.Log,
		opts:    opts,
		now:     time.Now,
	}
	var cs contact.Store
	if opts.Store != nil {
		cs = opts.Store
	}
	s.contact = contact.NewService(cs, opts.Relay, opts.Log)
	adm, err := newAdmin(opts.AdminUsername, opts.AdminPassword, opts.SecureCookies, rand.Reader, opts.Log)
	if err != nil {
		return nil, err
	}
	s.admin = adm

	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(opts.Log))
	if opts.Store != nil {
		r.Use(s.visitorTracking())
	}

	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
		r.Static("/asserts", filepath.Join(opts.StaticDir, "asserts"))
		r.Static("/videos", filepath.Join(opts.StaticDir, "videos"))
	}

	r.GET(view.HomePath, s.handleHome)
	r.GET(view.ProjectsPath, s.handleProjects)
	r.GET(view.GridPath, s.handleGrid)
	r.GET("/projects/:id/detail", s.handleDetail)
	r.GET(view.ModalClosePath, s.handleModalClose)
	r.GET(view.AboutPath, s.handleAbout)
	r.GET(view.ContactPath, s.handleContactForm)
	r.POST(view.ContactPath, s.handleContactSubmit)
	r.GET(view.HeroStreamPath, s.handleHeroStream)
	r.GET("/healthz", s.handleHealth)
	s.setupAdminRoutes(r)

	s.engine = r
	return s, nil
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Site returns the profile copy the pages render.
func (s *Server) Site() view.Site {
	return s.site
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.store != nil {
		if err := s.store.Ping(c.Request.Context()); err != nil {
			s.log.Error("health check", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RunRetention deletes visitor rows older than the retention window now and
// then every interval until ctx is done.
func (s *Server) RunRetention(ctx context.Context, interval time.Duration) {
	if s.store == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		s.cleanupVisitors(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) cleanupVisitors(ctx context.Context) {
	n, err := s.store.CleanupVisitors(ctx, s.now(), s.opts.VisitorRetention)
	if err != nil {
		s.log.Error("visitor cleanup", zap.Error(err))
		return
	}
	if n > 0 {
		s.log.Info("visitor cleanup", zap.Int64("deleted", n), zap.Duration("retention", s.opts.VisitorRetention))
	}
}

func (s *Server) writeDocument(c *gin.Context, status int, doc *dom.Document) {
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		s.log.Error("render page", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) writeNodes(c *gin.Context, status int, nodes ...*view.Node) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := dom.New(n).Render(&buf); err != nil {
			s.log.Error("render fragment", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

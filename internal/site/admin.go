package site

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/storage"
	"github.com/Zachkp/portfolio/internal/view"
)

const adminCookie = "admin_token"

type admin struct {
	token    string
	salt     string
	username string
	password string
	secure   bool
}

func newAdmin(username, password string, secure bool, entropy io.Reader, log *zap.Logger) (*admin, error) {
	if username == "" {
		username = "admin"
		log.Warn("using default admin username, set ADMIN_USERNAME")
	}
	if password == "" {
		password = "admin123"
		log.Warn("using default admin password, set ADMIN_PASSWORD")
	}
	token, err := randomToken(entropy)
	if err != nil {
		return nil, fmt.Errorf("generate admin token: %w", err)
	}
	salt, err := randomToken(entropy)
	if err != nil {
		return nil, fmt.Errorf("generate hashing salt: %w", err)
	}
	return &admin{
		token:    token,
		salt:     salt,
		username: username,
		password: password,
		secure:   secure,
	}, nil
}

func randomToken(r io.Reader) (string, error) {
	b := make([]byte, 32)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// hashIP is stable per IP for the life of the process.
func (a *admin) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + a.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (a *admin) checkCredentials(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(a.username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	return u&p == 1
}

func (a *admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			if strings.HasPrefix(c.Request.URL.Path, "/admin/api/") || strings.HasPrefix(c.Request.URL.Path, "/admin/export/") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.Redirect(http.StatusFound, view.AdminLoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// untracked lists path prefixes the visitor log skips.
var untracked = []string{"/static/", "/asserts/", "/videos/", "/images/", "/admin", "/favicon", "/healthz", "/hero/"}

// visitorTracking records page views with a hashed client IP. Fragment
// requests, Do Not Track clients and assets are skipped.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || isHTMX(c) || c.GetHeader("DNT") == "1" {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		for _, prefix := range untracked {
			if strings.HasPrefix(path, prefix) {
				return
			}
		}

		v := storage.Visit{
			HashedIP:  s.admin.hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			VisitedAt: s.now(),
		}
		if err := s.store.RecordVisit(c.Request.Context(), v); err != nil {
			s.log.Warn("record visit", zap.String("path", path), zap.Error(err))
		}
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET(view.AdminLoginPath, func(c *gin.Context) {
		s.writeDocument(c, http.StatusOK, dom.New(view.AdminLoginPage(s.site, "")))
	})

	r.POST(view.AdminLoginPath, func(c *gin.Context) {
		if !s.admin.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			s.log.Warn("failed admin login", zap.String("client", s.admin.hashIP(c.ClientIP())))
			s.writeDocument(c, http.StatusUnauthorized, dom.New(view.AdminLoginPage(s.site, "Invalid credentials")))
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.admin.token, 3600*24, "/admin", "", s.admin.secure, true)
		s.log.Info("admin login", zap.String("client", s.admin.hashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, view.AdminDashboardPath)
	})

	r.GET(view.AdminLogoutPath, func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", s.admin.secure, true)
		c.Redirect(http.StatusFound, view.AdminLoginPath)
	})

	group := r.Group("/admin")
	group.Use(s.admin.authMiddleware())

	group.GET("/dashboard", func(c *gin.Context) {
		stats, ok := s.adminStats(c)
		if !ok {
			c.String(http.StatusInternalServerError, "Failed to load statistics")
			return
		}
		s.writeDocument(c, http.StatusOK, dom.New(view.AdminDashboard(s.site, stats)))
	})

	group.GET("/api/stats", func(c *gin.Context) {
		stats, ok := s.adminStats(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	group.GET("/api/messages", func(c *gin.Context) {
		if s.store == nil {
			c.JSON(http.StatusOK, []storage.StoredMessage{})
			return
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		msgs, err := s.store.ListMessages(c.Request.Context(), limit)
		if err != nil {
			s.log.Error("list messages", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
			return
		}
		c.JSON(http.StatusOK, msgs)
	})

	group.GET("/api/messages/:id", func(c *gin.Context) {
		if s.store == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
			return
		}
		m, err := s.store.GetMessage(c.Request.Context(), c.Param("id"))
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
			return
		}
		if err != nil {
			s.log.Error("get message", zap.String("id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load message"})
			return
		}
		c.JSON(http.StatusOK, m)
	})

	group.GET("/visitors", func(c *gin.Context) {
		visits := []storage.Visit{}
		if s.store != nil {
			var err error
			if visits, err = s.store.RecentVisitors(c.Request.Context(), 200); err != nil {
				s.log.Error("list visitors", zap.Error(err))
				c.String(http.StatusInternalServerError, "Failed to load visitors")
				return
			}
		}
		s.writeDocument(c, http.StatusOK, dom.New(view.AdminVisitors(s.site, visits)))
	})

	group.POST("/privacy/delete-visitor-data", func(c *gin.Context) {
		if s.store != nil {
			s.cleanupVisitors(c.Request.Context())
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete"})
	})

	group.GET("/export/stats", func(c *gin.Context) {
		stats, ok := s.adminStats(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.log.Info("admin stats exported", zap.String("client", s.admin.hashIP(c.ClientIP())))
		c.JSON(http.StatusOK, stats)
	})
}

func (s *Server) adminStats(c *gin.Context) (*storage.Stats, bool) {
	if s.store == nil {
		return &storage.Stats{TopPaths: []storage.PathStat{}, RecentVisitors: []storage.Visit{}, RecentMessages: []storage.StoredMessage{}}, true
	}
	stats, err := s.store.Stats(c.Request.Context(), s.now())
	if err != nil {
		s.log.Error("load admin stats", zap.Error(err))
		return nil, false
	}
	return stats, true
}

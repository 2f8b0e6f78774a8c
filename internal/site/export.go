package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/view"
)

// Export writes a static snapshot of the public pages under dir, one
// index.html per page. Fragment endpoints are not part of the snapshot.
func (s *Server) Export(dir string) ([]string, error) {
	projects, err := s.projectsDocument("", "")
	if err != nil {
		return nil, fmt.Errorf("render projects: %w", err)
	}
	pages := []struct {
		path string
		doc  *dom.Document
	}{
		{view.HomePath, s.homeDocument()},
		{view.ProjectsPath, projects},
		{view.AboutPath, s.aboutDocument()},
		{view.ContactPath, s.contactDocument(view.ContactForm(contact.Submission{}, nil))},
	}

	written := make([]string, 0, len(pages))
	for _, p := range pages {
		target := filepath.Join(dir, filepath.FromSlash(strings.Trim(p.path, "/")), "index.html")
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, fmt.Errorf("create %s: %w", filepath.Dir(target), err)
		}
		f, err := os.Create(target)
		if err != nil {
			return written, fmt.Errorf("create %s: %w", target, err)
		}
		renderErr := p.doc.Render(f)
		closeErr := f.Close()
		if renderErr != nil {
			return written, fmt.Errorf("render %s: %w", p.path, renderErr)
		}
		if closeErr != nil {
			return written, fmt.Errorf("close %s: %w", target, closeErr)
		}
		written = append(written, target)
		s.log.Debug("exported page", zap.String("path", p.path), zap.String("file", target))
	}
	return written, nil
}

// Package gallery is the stateful projects component: it projects the
// catalog onto a rendering surface, tracks the selected filter and owns the
// single detail modal.
package gallery

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/view"
)

// Element ids the gallery writes to.
const (
	GalleryID = "projectsGallery"
	ModalID   = "projectModal"
	BodyID    = "modalBody"
)

// Event keys the gallery reacts to.
const (
	KeyEscape = "Escape"

	TargetOverlay = "modalOverlay"
	TargetClose   = "modalClose"
)

const (
	lockScript   = "document.body.style.overflow='hidden'"
	unlockScript = "document.body.style.overflow=''"
)

// Surface is the rendering collaborator, typically a dom.Document.
type Surface interface {
	ReplaceChildren(id string, nodes ...*view.Node) error
	SetAttr(id, key, val string) error
	RemoveAttr(id, key string) error
	SetClass(id, class string, on bool) error
	SetScrollLocked(locked bool)
}

// Gallery couples a catalog with a surface. It is driven from one event
// flow at a time; the ready channel is the only part safe to share.
type Gallery struct {
	catalog *catalog.Catalog
	surface Surface

	filter string
	open   *catalog.Project

	readyOnce sync.Once
	ready     chan struct{}
}

// New builds a gallery with the default "all" filter and a closed modal.
func New(c *catalog.Catalog, s Surface) *Gallery {
	return &Gallery{
		catalog: c,
		surface: s,
		filter:  catalog.FilterAll,
		ready:   make(chan struct{}),
	}
}

// Ready is closed once the first grid render has completed.
func (g *Gallery) Ready() <-chan struct{} {
	return g.ready
}

// Filter returns the selected category key.
func (g *Gallery) Filter() string {
	return g.filter
}

// Open returns the project shown in the modal, if any.
func (g *Gallery) Open() (catalog.Project, bool) {
	if g.open == nil {
		return catalog.Project{}, false
	}
	return *g.open, true
}

// Load renders the initial grid for key and signals readiness.
func (g *Gallery) Load(key string) error {
	if err := g.SetFilter(key); err != nil {
		return err
	}
	g.readyOnce.Do(func() { close(g.ready) })
	return nil
}

// SetFilter selects a category and re-renders the filter bar and grid. A
// key matching nothing draws the empty state.
func (g *Gallery) SetFilter(key string) error {
	key = normalizeFilter(key)
	g.filter = key
	projects := g.catalog.FilterByCategory(key)
	content := view.GalleryContent(g.catalog.Categories(), key, projects)
	if err := g.surface.ReplaceChildren(GalleryID, content...); err != nil {
		return fmt.Errorf("render gallery: %w", err)
	}
	return nil
}

func normalizeFilter(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return catalog.FilterAll
	}
	return key
}

// Restore rebuilds the state a fragment request carries: the selected
// filter and the open project. The grid is not rendered, and an unknown id
// leaves the modal closed.
func (g *Gallery) Restore(filter string, id int) error {
	g.filter = normalizeFilter(filter)
	return g.Activate(id)
}

// OpenDetail replaces the modal content with p and marks it open. Opening
// while another project is shown replaces it.
func (g *Gallery) OpenDetail(p catalog.Project) error {
	if err := g.surface.ReplaceChildren(BodyID, view.Detail(p)); err != nil {
		return fmt.Errorf("render detail: %w", err)
	}
	if err := g.setModal(true, p.ID); err != nil {
		return err
	}
	g.open = &p
	g.surface.SetScrollLocked(true)
	return nil
}

// CloseDetail empties the modal and restores background scrolling.
func (g *Gallery) CloseDetail() error {
	if err := g.surface.ReplaceChildren(BodyID); err != nil {
		return fmt.Errorf("clear detail: %w", err)
	}
	if err := g.setModal(false, 0); err != nil {
		return err
	}
	g.open = nil
	g.surface.SetScrollLocked(false)
	return nil
}

func (g *Gallery) setModal(open bool, id int) error {
	if err := g.surface.SetClass(ModalID, "active", open); err != nil {
		return fmt.Errorf("toggle modal: %w", err)
	}
	set := []view.Attr{view.A("aria-hidden", "true"), view.A("hx-on::load", unlockScript)}
	if open {
		// Escape closes the modal only while it is open.
		set = []view.Attr{
			view.A("aria-hidden", "false"),
			view.A("hx-on::load", lockScript),
			view.A("data-project-id", strconv.Itoa(id)),
			view.A("hx-vals", view.ModalVals(g.filter, id)),
			view.A("hx-get", view.ModalClosePath+"?key="+KeyEscape),
			view.A("hx-trigger", "keyup[key=='Escape'] from:body"),
			view.A("hx-swap", "outerHTML"),
		}
	} else {
		for _, key := range []string{"data-project-id", "hx-vals", "hx-get", "hx-trigger", "hx-swap"} {
			if err := g.surface.RemoveAttr(ModalID, key); err != nil {
				return fmt.Errorf("toggle modal: %w", err)
			}
		}
	}
	for _, a := range set {
		if err := g.surface.SetAttr(ModalID, a.Key, a.Val); err != nil {
			return fmt.Errorf("toggle modal: %w", err)
		}
	}
	return nil
}

// Activate opens the project with id. Unknown ids are ignored.
func (g *Gallery) Activate(id int) error {
	p, ok := g.catalog.FindByID(id)
	if !ok {
		return nil
	}
	return g.OpenDetail(p)
}

// HandleKey closes the modal on Escape while it is open.
func (g *Gallery) HandleKey(key string) error {
	if key != KeyEscape || g.open == nil {
		return nil
	}
	return g.CloseDetail()
}

// HandleClick closes the modal when the overlay or close control is hit.
func (g *Gallery) HandleClick(target string) error {
	if g.open == nil {
		return nil
	}
	switch target {
	case TargetOverlay, TargetClose:
		return g.CloseDetail()
	}
	return nil
}

// OpenDeepLink waits for readiness and opens the project named by the raw
// id query value. Malformed and unknown ids open nothing.
func (g *Gallery) OpenDeepLink(raw string) (bool, error) {
	id, ok := ParseID(raw)
	if !ok {
		return false, nil
	}
	p, ok := g.catalog.FindByID(id)
	if !ok {
		return false, nil
	}
	<-g.ready
	if err := g.OpenDetail(p); err != nil {
		return false, err
	}
	return true, nil
}

// ParseID reads a positive integer project id.
func ParseID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

package gallery

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/view"
)

func newGallery(t *testing.T) (*Gallery, *dom.Document) {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	doc := dom.New(view.ProjectsPage(view.Site{Name: "Test"}))
	return New(c, doc), doc
}

func parse(t *testing.T, doc *dom.Document) *goquery.Document {
	t.Helper()
	q, err := goquery.NewDocumentFromReader(strings.NewReader(doc.String()))
	require.NoError(t, err)
	return q
}

func cardIDs(q *goquery.Document) []string {
	var out []string
	q.Find("#projectsGrid .project-card").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("data-project-id")
		out = append(out, id)
	})
	return out
}

func TestLoadRendersFullCatalog(t *testing.T) {
	t.Parallel()

	g, doc := newGallery(t)
	require.NoError(t, g.Load(""))
	require.Equal(t, catalog.FilterAll, g.Filter())

	q := parse(t, doc)
	require.Equal(t, []string{"1", "2", "3", "4"}, cardIDs(q))
	style, _ := q.Find("#emptyState").Attr("style")
	require.Equal(t, "display: none", style)

	active := q.Find(".filter-btn.active")
	require.Equal(t, 1, active.Length())
	require.Equal(t, "All", active.Text())

	select {
	case <-g.Ready():
	default:
		t.Fatal("gallery should be ready after Load")
	}
}

func TestSetFilterNarrowsGrid(t *testing.T) {
	t.Parallel()

	g, doc := newGallery(t)
	require.NoError(t, g.Load(catalog.FilterAll))
	require.NoError(t, g.SetFilter("Mobile"))

	q := parse(t, doc)
	require.Equal(t, []string{"1", "4"}, cardIDs(q))
	require.Equal(t, "mobile", q.Find(".filter-btn.active").AttrOr("data-filter", ""))
	require.Equal(t, "mobile", g.Filter())
}

func TestSetFilterUnknownShowsEmptyState(t *testing.T) {
	t.Parallel()

	g, doc := newGallery(t)
	require.NoError(t, g.Load("desktop"))

	q := parse(t, doc)
	require.Empty(t, cardIDs(q))
	require.Equal(t, "display: block", q.Find("#emptyState").AttrOr("style", ""))
}

func TestOpenDetailReplacesPreviousProject(t *testing.T) {
	t.Parallel()

	g, doc := newGallery(t)
	require.NoError(t, g.Load(""))

	a, _ := catalog.Default()
	pa, _ := a.FindByID(1)
	pb, _ := a.FindByID(4)
	require.NoError(t, g.OpenDetail(pa))
	require.NoError(t, g.OpenDetail(pb))

	q := parse(t, doc)
	require.Equal(t, 1, q.Find("#projectModal").Length())
	require.True(t, q.Find("#projectModal").HasClass("active"))
	require.Equal(t, "4", q.Find("#projectModal").AttrOr("data-project-id", ""))

	details := q.Find("#modalBody .project-detail")
	require.Equal(t, 1, details.Length())
	require.Equal(t, "4", details.AttrOr("data-project-id", ""))
	require.Equal(t, "First Pool", details.Find("h2").Text())
	require.NotContains(t, q.Find("#modalBody").Text(), "WACCI")
	require.True(t, doc.ScrollLocked())

	open, ok := g.Open()
	require.True(t, ok)
	require.Equal(t, 4, open.ID)
}

func TestCloseDetailRestoresState(t *testing.T) {
	t.Parallel()

	g, doc := newGallery(t)
	require.NoError(t, g.Load(""))
	require.NoError(t, g.Activate(2))
	require.NoError(t, g.CloseDetail())

	q := parse(t, doc)
	modal := q.Find("#projectModal")
	require.False(t, modal.HasClass("active"))
	require.Equal(t, "true", modal.AttrOr("aria-hidden", ""))
	_, hasTrigger := modal.Attr("hx-trigger")
	require.False(t, hasTrigger)
	_, hasVals := modal.Attr("hx-vals")
	require.False(t, hasVals)
	require.Equal(t, 0, q.Find("#modalBody").Children().Length())
	require.False(t, doc.ScrollLocked())

	_, ok := g.Open()
	require.False(t, ok)
}

func TestEscapeClosesOnlyWhenOpen(t *testing.T) {
	t.Parallel()

	g, doc := newGallery(t)
	require.NoError(t, g.Load(""))

	require.NoError(t, g.HandleKey(KeyEscape))
	require.False(t, doc.HasClass(ModalID, "active"))

	require.NoError(t, g.Activate(3))
	require.NoError(t, g.HandleKey("Enter"))
	require.True(t, doc.HasClass(ModalID, "active"))

	require.NoError(t, g.HandleKey(KeyEscape))
	require.False(t, doc.HasClass(ModalID, "active"))
}

func TestClickTargetsClose(t *testing.T) {
	t.Parallel()

	for _, target := range []string{TargetOverlay, TargetClose} {
		g, doc := newGallery(t)
		require.NoError(t, g.Load(""))
		require.NoError(t, g.Activate(1))

		require.NoError(t, g.HandleClick("modalBody"))
		require.True(t, doc.HasClass(ModalID, "active"), target)

		require.NoError(t, g.HandleClick(target))
		require.False(t, doc.HasClass(ModalID, "active"), target)
	}
}

func TestOpenModalCarriesFilter(t *testing.T) {
	t.Parallel()

	g, doc := newGallery(t)
	require.NoError(t, g.Load("web"))
	require.NoError(t, g.Activate(3))

	modal := parse(t, doc).Find("#projectModal")
	require.JSONEq(t, `{"filter":"web","id":"3"}`, modal.AttrOr("hx-vals", ""))
	require.Equal(t, view.ModalClosePath+"?key=Escape", modal.AttrOr("hx-get", ""))
}

func TestRestoreRebuildsFragmentState(t *testing.T) {
	t.Parallel()

	c, err := catalog.Default()
	require.NoError(t, err)

	doc := dom.New(view.Modal())
	g := New(c, doc)
	require.NoError(t, g.Restore(" Mobile ", 4))
	require.Equal(t, "mobile", g.Filter())
	open, ok := g.Open()
	require.True(t, ok)
	require.Equal(t, 4, open.ID)
	require.True(t, doc.HasClass(ModalID, "active"))

	g = New(c, dom.New(view.Modal()))
	require.NoError(t, g.Restore("", 99))
	require.Equal(t, catalog.FilterAll, g.Filter())
	_, ok = g.Open()
	require.False(t, ok)
}

func TestActivateUnknownIDIsIgnored(t *testing.T) {
	t.Parallel()

	g, doc := newGallery(t)
	require.NoError(t, g.Load(""))
	require.NoError(t, g.Activate(42))
	require.False(t, doc.HasClass(ModalID, "active"))
}

func TestOpenDeepLink(t *testing.T) {
	t.Parallel()

	g, doc := newGallery(t)
	require.NoError(t, g.Load(""))

	for _, raw := range []string{"", "abc", "0", "-2", "99", "1.5"} {
		opened, err := g.OpenDeepLink(raw)
		require.NoError(t, err)
		require.False(t, opened, raw)
		require.False(t, doc.HasClass(ModalID, "active"), raw)
	}

	opened, err := g.OpenDeepLink(" 3 ")
	require.NoError(t, err)
	require.True(t, opened)
	require.True(t, doc.HasClass(ModalID, "active"))
}

func TestOpenDeepLinkWaitsForReady(t *testing.T) {
	t.Parallel()

	g, doc := newGallery(t)
	done := make(chan bool, 1)
	go func() {
		opened, err := g.OpenDeepLink("2")
		done <- err == nil && opened
	}()

	select {
	case <-done:
		t.Fatal("deep link opened before the gallery was ready")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, g.Load(""))
	require.True(t, <-done)
	require.True(t, doc.HasClass(ModalID, "active"))
}

func TestSurfaceWithoutModalReportsError(t *testing.T) {
	t.Parallel()

	c, err := catalog.Default()
	require.NoError(t, err)
	doc := dom.New(view.El("div", nil))
	g := New(c, doc)

	require.ErrorIs(t, g.Load(""), dom.ErrNoElement)
	p, _ := c.FindByID(1)
	require.ErrorIs(t, g.OpenDetail(p), dom.ErrNoElement)
}

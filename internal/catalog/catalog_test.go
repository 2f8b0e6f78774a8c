package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func ids(projects []Project) []int {
	out := make([]int, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func sample(t *testing.T) *Catalog {
	t.Helper()
	c, err := New([]Project{
		{ID: 1, Title: "one", Category: []string{"mobile"}},
		{ID: 2, Title: "two", Category: []string{"web"}, Featured: true},
		{ID: 3, Title: "three", Category: []string{"mobile", "web"}, Featured: true},
	})
	require.NoError(t, err)
	return c
}

func TestFilterByCategoryPreservesOrder(t *testing.T) {
	t.Parallel()

	c := sample(t)
	require.Equal(t, []int{1, 3}, ids(c.FilterByCategory("mobile")))
	require.Equal(t, []int{2, 3}, ids(c.FilterByCategory("web")))
}

func TestFilterByCategoryIgnoresCase(t *testing.T) {
	t.Parallel()

	c := sample(t)
	require.Equal(t, []int{1, 3}, ids(c.FilterByCategory("MoBiLe")))
}

func TestFilterAllReturnsFullCatalog(t *testing.T) {
	t.Parallel()

	c := sample(t)
	require.Equal(t, []int{1, 2, 3}, ids(c.FilterByCategory(FilterAll)))
	require.Equal(t, []int{1, 2, 3}, ids(c.FilterByCategory("ALL")))
}

func TestFilterUnknownKeyIsEmpty(t *testing.T) {
	t.Parallel()

	c := sample(t)
	got := c.FilterByCategory("desktop")
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestFilterIsSoundAndComplete(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	for _, cat := range c.Categories() {
		got := c.FilterByCategory(cat)
		for _, p := range got {
			require.True(t, p.InCategory(cat), "project %d returned for %q", p.ID, cat)
		}
		var want []int
		for _, p := range c.All() {
			if p.InCategory(cat) {
				want = append(want, p.ID)
			}
		}
		require.Equal(t, want, ids(got), "category %q", cat)
	}
}

func TestFilterDoesNotMutateCatalog(t *testing.T) {
	t.Parallel()

	c := sample(t)
	got := c.FilterByCategory(FilterAll)
	got[0].Title = "changed"
	got = append(got[:0], got[1:]...)
	_ = got

	p, ok := c.FindByID(1)
	require.True(t, ok)
	require.Equal(t, "one", p.Title)
	require.Equal(t, 3, c.Len())
}

func TestQueriesReturnIndependentSlices(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)
	flutter := ids(c.FilterByCategory("flutter"))

	p, ok := c.FindByID(1)
	require.True(t, ok)
	p.Tags[0] = "changed"
	p.Category[0] = "changed"
	p.Features[0] = "changed"

	featured := c.ListFeatured()
	featured[0].Features[0] = "changed"
	all := c.All()
	all[0].Category[1] = "changed"
	filtered := c.FilterByCategory("web")
	filtered[0].Tags[0] = "changed"

	p, ok = c.FindByID(1)
	require.True(t, ok)
	require.Equal(t, []string{"Flutter", "Dart", "Mobile", "E-commerce"}, p.Tags)
	require.Equal(t, []string{"flutter", "mobile"}, p.Category)
	require.Equal(t, "Product listing and search functionality", p.Features[0])

	again, ok := c.FindByID(featured[0].ID)
	require.True(t, ok)
	require.NotEqual(t, "changed", again.Features[0])
	again, ok = c.FindByID(filtered[0].ID)
	require.True(t, ok)
	require.NotEqual(t, "changed", again.Tags[0])

	require.Equal(t, flutter, ids(c.FilterByCategory("flutter")))
}

func TestListFeatured(t *testing.T) {
	t.Parallel()

	c := sample(t)
	require.Equal(t, []int{2, 3}, ids(c.ListFeatured()))

	def, err := Default()
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, ids(def.ListFeatured()))
}

func TestFindByID(t *testing.T) {
	t.Parallel()

	c := sample(t)
	p, ok := c.FindByID(3)
	require.True(t, ok)
	require.Equal(t, "three", p.Title)

	for _, id := range []int{0, -1, 99} {
		_, ok := c.FindByID(id)
		require.False(t, ok, "id %d", id)
	}
}

func TestNewRejectsBrokenInvariants(t *testing.T) {
	t.Parallel()

	cases := map[string][]Project{
		"duplicate id":   {{ID: 1, Category: []string{"web"}}, {ID: 1, Category: []string{"web"}}},
		"zero id":        {{ID: 0, Category: []string{"web"}}},
		"negative id":    {{ID: -4, Category: []string{"web"}}},
		"empty category": {{ID: 1}},
		"blank category": {{ID: 1, Category: []string{"  "}}},
	}
	for name, projects := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(projects)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidProject))
		})
	}
}

func TestNewNormalizesCategories(t *testing.T) {
	t.Parallel()

	c, err := New([]Project{{ID: 7, Category: []string{"Web", "web", " API "}}})
	require.NoError(t, err)
	p, _ := c.FindByID(7)
	require.Equal(t, []string{"web", "api"}, p.Category)
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())
	require.Equal(t, []string{"flutter", "mobile", "typescript", "web"}, c.Categories())

	pool, ok := c.FindByID(4)
	require.True(t, ok)
	require.Equal(t, "/videos/firstpool_tut.mp4", pool.Video)
	require.Empty(t, pool.GitHub)
	require.Len(t, pool.Features, 6)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("- id: [oops"))
	require.Error(t, err)
}

func TestSummaryFallsBackToDescription(t *testing.T) {
	t.Parallel()

	require.Equal(t, "short", Project{Description: "short"}.Summary())
	require.Equal(t, "long", Project{Description: "short", LongDescription: "long"}.Summary())
}

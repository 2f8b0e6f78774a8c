package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/catalog"
)

func byTag(n *Node, tag string) []*Node {
	return n.FindAll(func(x *Node) bool { return x.Kind == ElementKind && x.Tag == tag })
}

func byClass(n *Node, class string) []*Node {
	return n.FindAll(func(x *Node) bool { return x.Kind == ElementKind && x.HasClass(class) })
}

func TestCardPlaceholderHasNoMediaTag(t *testing.T) {
	t.Parallel()

	p := catalog.Project{ID: 3, Title: "Nuts", Category: []string{"web"}}
	card := Card(p, OpenModal)

	require.Empty(t, byTag(card, "img"))
	require.Empty(t, byTag(card, "video"))
	require.Empty(t, byTag(card, "source"))

	media := byClass(card, "project-image")
	require.Len(t, media, 1)
	kind, _ := media[0].Attr("data-media")
	require.Equal(t, MediaPlaceholder, kind)
	style, _ := media[0].Attr("style")
	require.Equal(t, "background: "+Palette[3], style)
	require.Len(t, byTag(card, "svg"), 1)
}

func TestCardPrefersVideoOverImage(t *testing.T) {
	t.Parallel()

	p := catalog.Project{ID: 4, Title: "Pool", Image: "/a.png", Video: "/v.mp4", Category: []string{"mobile"}}
	card := Card(p, OpenModal)

	require.Empty(t, byTag(card, "img"))
	sources := byTag(card, "source")
	require.Len(t, sources, 1)
	src, _ := sources[0].Attr("src")
	require.Equal(t, "/v.mp4", src)
	_, autoplay := byTag(card, "video")[0].Attr("autoplay")
	require.True(t, autoplay)
}

func TestCardImage(t *testing.T) {
	t.Parallel()

	p := catalog.Project{ID: 2, Title: "CMS", Image: "/cms.png", Category: []string{"web"}}
	imgs := byTag(Card(p, OpenModal), "img")
	require.Len(t, imgs, 1)
	alt, _ := imgs[0].Attr("alt")
	require.Equal(t, "CMS", alt)
}

func TestPlaceholderBackgroundIsDeterministic(t *testing.T) {
	t.Parallel()

	for id := 1; id <= 12; id++ {
		require.Equal(t, Palette[id%len(Palette)], PlaceholderBackground(id))
	}
	require.Equal(t, PlaceholderBackground(-1), Palette[len(Palette)-1])

	p := catalog.Project{ID: 9, Title: "x", Tags: []string{"a", "b"}, Category: []string{"web"}}
	require.Equal(t, Card(p, OpenModal), Card(p, OpenModal))
}

func TestCardLinksAreConditional(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		p      catalog.Project
		labels []string
	}{
		{"none", catalog.Project{ID: 1}, nil},
		{"github only", catalog.Project{ID: 1, GitHub: "https://github.com/x"}, []string{"GitHub"}},
		{"demo only", catalog.Project{ID: 1, Demo: "https://x.dev"}, []string{"Live Demo"}},
		{"both", catalog.Project{ID: 1, GitHub: "https://github.com/x", Demo: "https://x.dev"}, []string{"GitHub", "Live Demo"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			links := byClass(Card(tc.p, OpenModal), "project-link")
			var labels []string
			for _, l := range links {
				href, _ := l.Attr("href")
				require.NotEmpty(t, href)
				labels = append(labels, l.TextContent())
			}
			require.Equal(t, tc.labels, labels)
		})
	}
}

func TestCardTagsKeepOrder(t *testing.T) {
	t.Parallel()

	p := catalog.Project{ID: 1, Tags: []string{"Flutter", "Dart", "Mobile"}}
	var got []string
	for _, tag := range byClass(Card(p, OpenModal), "tag") {
		got = append(got, tag.TextContent())
	}
	require.Equal(t, []string{"Flutter", "Dart", "Mobile"}, got)
}

func TestCardActions(t *testing.T) {
	t.Parallel()

	p := catalog.Project{ID: 7}
	modal, _ := Card(p, OpenModal).Attr("hx-get")
	require.Equal(t, "/projects/7/detail", modal)

	nav := Card(p, NavigateToDetail)
	_, swaps := nav.Attr("hx-get")
	require.False(t, swaps)
	href, _ := nav.Attr("data-href")
	require.Equal(t, DetailPath(7), href)
	onclick, _ := nav.Attr("onclick")
	require.Equal(t, "window.location.href=this.dataset.href", onclick)

	links := byTag(nav, "a")
	require.NotEmpty(t, links)
	title, _ := links[0].Attr("href")
	require.Equal(t, DetailPath(7), title)
}

func TestGridEmptyState(t *testing.T) {
	t.Parallel()

	nodes := Grid(nil, OpenModal)
	require.Len(t, nodes, 2)
	require.Empty(t, nodes[0].Children)
	style, _ := nodes[1].Attr("style")
	require.Equal(t, "display: block", style)
}

func TestDetailFeaturesAndSummary(t *testing.T) {
	t.Parallel()

	p := catalog.Project{
		ID:              1,
		Title:           "WACCI",
		Description:     "short",
		LongDescription: "Built with **Flutter** <script>alert(1)</script>",
		Features:        []string{"one", "two"},
	}
	d := Detail(p)
	require.Len(t, byTag(d, "li"), 2)

	summary := byClass(d, "project-summary")[0].TextContent()
	require.Contains(t, summary, "<strong>Flutter</strong>")
	require.NotContains(t, summary, "<script>")

	noFeatures := Detail(catalog.Project{ID: 2, Description: "only short"})
	require.Empty(t, byClass(noFeatures, "project-features"))
	require.Contains(t, byClass(noFeatures, "project-summary")[0].TextContent(), "only short")
}

func TestFilterBar(t *testing.T) {
	t.Parallel()

	bar := FilterBar([]string{"flutter", "web"}, "web")
	buttons := byTag(bar, "button")
	require.Len(t, buttons, 3)

	var labels []string
	for _, b := range buttons {
		labels = append(labels, b.TextContent())
	}
	require.Equal(t, []string{"All", "Flutter", "Web"}, labels)
	require.True(t, buttons[2].HasClass("active"))
	require.False(t, buttons[0].HasClass("active"))
	get, _ := buttons[1].Attr("hx-get")
	require.Equal(t, "/projects/grid?filter=flutter", get)
}

func TestDocumentMarksActiveNav(t *testing.T) {
	t.Parallel()

	doc := AboutPage(Site{Name: "Kpankpa", AboutMe: "First.\n\nSecond."})
	active := doc.FindAll(func(n *Node) bool { return n.HasClass("nav-link") && n.HasClass("active") })
	require.Len(t, active, 1)
	require.Equal(t, "About", active[0].TextContent())
	require.Len(t, byClass(doc, "fade-in-up"), 2)
}

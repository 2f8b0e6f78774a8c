package view

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Zachkp/portfolio/internal/catalog"
)

// Site carries the copy shared by every page.
type Site struct {
	Name    string
	Tagline string
	Roles   []string
	AboutMe string
	Stats   []Stat
}

// Stat is one animated counter on the home page.
type Stat struct {
	Label  string
	Target int
}

type navLink struct {
	href  string
	label string
}

var navLinks = []navLink{
	{HomePath, "Home"},
	{ProjectsPath, "Projects"},
	{AboutPath, "About"},
	{ContactPath, "Contact"},
}

// htmxConfig lets 422 responses swap so field errors reach the form.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"422","swap":true},{"code":"[45]..","swap":false,"error":true}]}`

// Document renders the full page around the given main content.
func Document(site Site, title, active string, main ...*Node) *Node {
	fullTitle := site.Name
	if title != "" {
		fullTitle = title + " | " + site.Name
	}
	return El("html", []Attr{A("lang", "en")},
		El("head", nil,
			El("meta", []Attr{A("charset", "utf-8")}),
			El("meta", []Attr{A("name", "viewport"), A("content", "width=device-width, initial-scale=1")}),
			El("meta", []Attr{A("name", "htmx-config"), A("content", htmxConfig)}),
			El("title", nil, Text(fullTitle)),
			El("link", []Attr{A("rel", "stylesheet"), A("href", "/static/css/style.css")}),
			El("script", []Attr{A("src", "https://unpkg.com/htmx.org@2.0.4"), A("defer", "")}),
			El("script", []Attr{A("src", "https://unpkg.com/htmx-ext-sse@2.2.2/sse.js"), A("defer", "")}),
		),
		El("body", nil,
			navbar(site, active),
			El("main", []Attr{A("id", "main")}, main...),
			El("footer", []Attr{A("class", "footer")},
				El("p", nil, Text("© "+site.Name)),
			),
		),
	)
}

func navbar(site Site, active string) *Node {
	items := make([]*Node, 0, len(navLinks))
	for _, l := range navLinks {
		class := "nav-link"
		if l.href == active {
			class += " active"
		}
		items = append(items, El("li", nil, El("a", []Attr{A("href", l.href), A("class", class)}, Text(l.label))))
	}
	return El("nav", []Attr{A("id", "navbar"), A("class", "navbar")},
		El("a", []Attr{A("href", HomePath), A("class", "logo")}, Text(site.Name)),
		El("button", []Attr{A("id", "mobileMenuToggle"), A("class", "mobile-menu-toggle"), A("type", "button"), A("aria-label", "Menu")},
			El("span", nil), El("span", nil), El("span", nil),
		),
		El("ul", []Attr{A("id", "navLinks"), A("class", "nav-links")}, items...),
	)
}

// Hero renders the introduction with the typewriter role line.
func Hero(site Site) *Node {
	first := ""
	if len(site.Roles) > 0 {
		first = site.Roles[0]
	}
	return El("section", []Attr{A("id", "hero"), A("class", "hero")},
		El("h1", []Attr{A("class", "hero-title fade-in-up")}, Text("Hi, I'm "+site.Name)),
		El("p", []Attr{A("class", "hero-subtitle fade-in-up")},
			El("span", []Attr{
				A("class", "typewriter"),
				A("data-words", strings.Join(site.Roles, "|")),
				A("hx-ext", "sse"),
				A("sse-connect", HeroStreamPath),
				A("sse-swap", "frame"),
			}, Text(first)),
		),
		El("p", []Attr{A("class", "hero-tagline fade-in-up")}, Text(site.Tagline)),
		El("div", []Attr{A("class", "hero-actions")},
			El("a", []Attr{A("href", ProjectsPath), A("class", "btn btn-primary")}, Text("View Projects")),
			El("a", []Attr{A("href", ContactPath), A("class", "btn btn-secondary")}, Text("Get in Touch")),
		),
	)
}

func stats(site Site) *Node {
	items := make([]*Node, 0, len(site.Stats))
	for _, s := range site.Stats {
		items = append(items, El("div", []Attr{A("class", "stat")},
			El("span", []Attr{A("class", "stat-number"), A("data-target", strconv.Itoa(s.Target))}, Text(strconv.Itoa(s.Target)+"+")),
			El("span", []Attr{A("class", "stat-label")}, Text(s.Label)),
		))
	}
	return El("section", []Attr{A("class", "stats")}, items...)
}

// HomePage renders the landing page with the featured projects.
func HomePage(site Site, featured []catalog.Project) *Node {
	return Document(site, "", HomePath,
		Hero(site),
		stats(site),
		El("section", []Attr{A("id", "featured"), A("class", "featured")},
			El("h2", []Attr{A("class", "section-title")}, Text("Featured Projects")),
			El("div", []Attr{A("id", "featuredProjects"), A("class", "projects-grid")}, Cards(featured, NavigateToDetail)...),
			El("a", []Attr{A("href", ProjectsPath), A("class", "btn btn-secondary")}, Text("All Projects")),
		),
		El("section", []Attr{A("id", "about"), A("class", "about-preview fade-in-up")},
			El("h2", []Attr{A("class", "section-title")}, Text("About Me")),
			El("p", nil, Text(aboutLead(site.AboutMe))),
		),
	)
}

// FilterLabel is the button caption for a category key.
func FilterLabel(key string) string {
	if key == catalog.FilterAll {
		return "All"
	}
	// a Caser is stateful, so each call gets its own
	return cases.Title(language.English).String(key)
}

// FilterBar renders one button per category key, "all" first.
func FilterBar(keys []string, active string) *Node {
	all := append([]string{catalog.FilterAll}, keys...)
	buttons := make([]*Node, 0, len(all))
	for _, k := range all {
		class := "filter-btn"
		pressed := "false"
		if k == active {
			class += " active"
			pressed = "true"
		}
		buttons = append(buttons, El("button", []Attr{
			A("type", "button"),
			A("class", class),
			A("data-filter", k),
			A("aria-pressed", pressed),
			A("hx-get", FilterPath(k)),
			A("hx-target", "#projectsGallery"),
			A("hx-swap", "innerHTML"),
			A("hx-push-url", FilteredPath(k)),
		}, Text(FilterLabel(k))))
	}
	return El("div", []Attr{A("class", "filter-bar"), A("role", "toolbar")}, buttons...)
}

// GalleryContent is what the gallery element holds for one filter state.
// Cards send the active filter with their detail request.
func GalleryContent(keys []string, active string, projects []catalog.Project) []*Node {
	grid := Grid(projects, OpenModal)
	grid[0].Attrs = append(grid[0].Attrs, A("hx-vals", ModalVals(active, 0)))
	return append([]*Node{FilterBar(keys, active)}, grid...)
}

// ProjectsPage renders the projects page skeleton: an empty gallery element
// and the closed modal. The gallery component fills both.
func ProjectsPage(site Site) *Node {
	return Document(site, "Projects", ProjectsPath,
		El("section", []Attr{A("class", "projects-page")},
			El("h1", []Attr{A("class", "section-title")}, Text("Projects")),
			El("div", []Attr{A("id", "projectsGallery"), A("class", "projects-gallery")}),
		),
		Modal(),
	)
}

// AboutPage renders the about page.
func AboutPage(site Site) *Node {
	paragraphs := []*Node{El("h1", []Attr{A("class", "section-title")}, Text("About Me"))}
	for _, para := range strings.Split(site.AboutMe, "\n\n") {
		if para = strings.TrimSpace(para); para != "" {
			paragraphs = append(paragraphs, El("p", []Attr{A("class", "fade-in-up")}, Text(para)))
		}
	}
	return Document(site, "About", AboutPath,
		El("section", []Attr{A("class", "about")}, paragraphs...),
	)
}

func aboutLead(about string) string {
	lead, _, _ := strings.Cut(about, "\n\n")
	return strings.TrimSpace(lead)
}

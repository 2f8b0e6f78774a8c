package view

import (
	"strconv"

	"github.com/Zachkp/portfolio/internal/catalog"
)

// Palette holds the placeholder backgrounds for projects without media.
var Palette = []string{
	"linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
	"linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
	"linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)",
	"linear-gradient(135deg, #43e97b 0%, #38f9d7 100%)",
	"linear-gradient(135deg, #fa709a 0%, #fee140 100%)",
}

// PlaceholderBackground picks the palette entry for a project id. The choice
// is a pure function of id so repeated renders are identical.
func PlaceholderBackground(id int) string {
	i := id % len(Palette)
	if i < 0 {
		i += len(Palette)
	}
	return Palette[i]
}

// CardAction selects what activating a card does.
type CardAction int

const (
	// NavigateToDetail loads the projects page deep link as a full page.
	NavigateToDetail CardAction = iota
	// OpenModal swaps the detail modal in place.
	OpenModal
)

// Media kinds reported in the data-media attribute.
const (
	MediaVideo       = "video"
	MediaImage       = "image"
	MediaPlaceholder = "placeholder"
)

// MediaKind reports which media block a project renders.
func MediaKind(p catalog.Project) string {
	switch {
	case p.Video != "":
		return MediaVideo
	case p.Image != "":
		return MediaImage
	default:
		return MediaPlaceholder
	}
}

// Card renders the compact summary of one project.
func Card(p catalog.Project, action CardAction) *Node {
	id := strconv.Itoa(p.ID)
	attrs := []Attr{
		A("class", "project-card fade-in-up"),
		A("data-project-id", id),
		A("data-href", DetailPath(p.ID)),
	}
	switch action {
	case OpenModal:
		attrs = append(attrs,
			A("hx-get", DetailFragmentPath(p.ID)),
			A("hx-target", "#projectModal"),
			A("hx-swap", "outerHTML"),
		)
	default:
		attrs = append(attrs, A("onclick", "window.location.href=this.dataset.href"))
	}

	return El("div", attrs,
		mediaBlock(p, false),
		El("div", []Attr{A("class", "project-content")},
			El("h3", []Attr{A("class", "project-title")},
				El("a", []Attr{A("href", DetailPath(p.ID))}, Text(p.Title)),
			),
			El("p", []Attr{A("class", "project-description")}, Text(p.Description)),
			tagList(p.Tags),
			El("div", []Attr{A("class", "project-links")}, cardLinks(p)...),
		),
	)
}

// Cards renders one card per project, in order.
func Cards(projects []catalog.Project, action CardAction) []*Node {
	out := make([]*Node, 0, len(projects))
	for _, p := range projects {
		out = append(out, Card(p, action))
	}
	return out
}

// EmptyState is shown instead of a silent empty grid.
func EmptyState(visible bool) *Node {
	display := "display: none"
	if visible {
		display = "display: block"
	}
	return El("div", []Attr{A("id", "emptyState"), A("class", "empty-state"), A("style", display)},
		El("p", nil, Text("No projects found in this category.")),
	)
}

// Grid renders the card grid with its empty-state companion.
func Grid(projects []catalog.Project, action CardAction) []*Node {
	return []*Node{
		El("div", []Attr{A("id", "projectsGrid"), A("class", "projects-grid")}, Cards(projects, action)...),
		EmptyState(len(projects) == 0),
	}
}

// Detail renders the expanded view placed in the modal body.
func Detail(p catalog.Project) *Node {
	var features *Node
	if len(p.Features) > 0 {
		items := make([]*Node, 0, len(p.Features))
		for _, f := range p.Features {
			items = append(items, El("li", nil, Text(f)))
		}
		features = El("div", []Attr{A("class", "project-features")},
			El("h3", nil, Text("Key Features")),
			El("ul", nil, items...),
		)
	}

	return El("div", []Attr{A("class", "project-detail"), A("data-project-id", strconv.Itoa(p.ID))},
		mediaBlock(p, true),
		El("h2", []Attr{A("class", "project-detail-title")}, Text(p.Title)),
		tagList(p.Tags),
		El("div", []Attr{A("class", "project-summary")}, Markdown(p.Summary())),
		features,
		El("div", []Attr{A("class", "project-detail-links")}, detailLinks(p)...),
	)
}

// Modal renders the detail overlay shell. Its open state is applied by the
// gallery component.
func Modal() *Node {
	closeAttrs := func(target string, extra ...Attr) []Attr {
		return append([]Attr{
			A("hx-get", ModalClosePath+"?target="+target),
			A("hx-target", "#projectModal"),
			A("hx-swap", "outerHTML"),
		}, extra...)
	}
	return El("div", []Attr{
		A("id", "projectModal"),
		A("class", "modal"),
		A("role", "dialog"),
		A("aria-modal", "true"),
		A("aria-hidden", "true"),
	},
		El("div", append([]Attr{A("id", "modalOverlay"), A("class", "modal-overlay")}, closeAttrs("modalOverlay")...)),
		El("div", []Attr{A("class", "modal-content")},
			El("button", closeAttrs("modalClose", A("id", "modalClose"), A("class", "modal-close"), A("type", "button"), A("aria-label", "Close")), Text("×")),
			El("div", []Attr{A("id", "modalBody"), A("class", "modal-body")}),
		),
	)
}

func mediaBlock(p catalog.Project, detail bool) *Node {
	background := "transparent"
	if detail {
		background = "#000"
	}
	var media *Node
	switch MediaKind(p) {
	case MediaVideo:
		attrs := []Attr{A("loop", ""), A("muted", ""), A("playsinline", ""), A("class", "project-video")}
		if detail {
			attrs = append(attrs, A("controls", ""), A("preload", "metadata"))
		} else {
			attrs = append([]Attr{A("autoplay", "")}, attrs...)
		}
		media = El("video", attrs,
			El("source", []Attr{A("src", p.Video), A("type", "video/mp4")}),
			Text("Your browser does not support the video tag."),
		)
	case MediaImage:
		media = El("img", []Attr{A("src", p.Image), A("alt", p.Title), A("class", "project-img")})
	default:
		background = PlaceholderBackground(p.ID)
		size := "80"
		if detail {
			size = "120"
		}
		media = placeholderGlyph(size)
	}

	class := "project-image"
	if detail {
		class += " project-image-detail"
	}
	return El("div", []Attr{
		A("class", class),
		A("data-media", MediaKind(p)),
		A("style", "background: "+background),
	}, media)
}

func tagList(tags []string) *Node {
	items := make([]*Node, 0, len(tags))
	for _, t := range tags {
		items = append(items, El("span", []Attr{A("class", "tag")}, Text(t)))
	}
	return El("div", []Attr{A("class", "project-tags")}, items...)
}

func cardLinks(p catalog.Project) []*Node {
	link := func(href, label string, icon *Node) *Node {
		return El("a", []Attr{
			A("href", href),
			A("class", "project-link"),
			A("target", "_blank"),
			A("rel", "noopener noreferrer"),
			A("onclick", "event.stopPropagation()"),
		}, icon, El("span", nil, Text(label)))
	}
	var out []*Node
	if p.GitHub != "" {
		out = append(out, link(p.GitHub, "GitHub", githubIcon("18")))
	}
	if p.Demo != "" {
		out = append(out, link(p.Demo, "Live Demo", externalIcon("18")))
	}
	return out
}

func detailLinks(p catalog.Project) []*Node {
	button := func(href, class, label string, icon *Node) *Node {
		return El("a", []Attr{
			A("href", href),
			A("class", class),
			A("target", "_blank"),
			A("rel", "noopener noreferrer"),
		}, icon, El("span", nil, Text(label)))
	}
	var out []*Node
	if p.GitHub != "" {
		out = append(out, button(p.GitHub, "btn btn-primary", "View on GitHub", githubIcon("20")))
	}
	if p.Demo != "" {
		out = append(out, button(p.Demo, "btn btn-secondary", "Live Demo", externalIcon("20")))
	}
	return out
}

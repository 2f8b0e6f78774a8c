package view

const githubPath = "M12 0c-6.626 0-12 5.373-12 12 0 5.302 3.438 9.8 8.207 11.387.599.111.793-.261.793-.577v-2.234c-3.338.726-4.033-1.416-4.033-1.416-.546-1.387-1.333-1.756-1.333-1.756-1.089-.745.083-.729.083-.729 1.205.084 1.839 1.237 1.839 1.237 1.07 1.834 2.807 1.304 3.492.997.107-.775.418-1.305.762-1.604-2.665-.305-5.467-1.334-5.467-5.931 0-1.311.469-2.381 1.236-3.221-.124-.303-.535-1.524.117-3.176 0 0 1.008-.322 3.301 1.23.957-.266 1.983-.399 3.003-.404 1.02.005 2.047.138 3.006.404 2.291-1.552 3.297-1.23 3.297-1.23.653 1.653.242 2.874.118 3.176.77.84 1.235 1.911 1.235 3.221 0 4.609-2.807 5.624-5.479 5.921.43.372.823 1.102.823 2.222v3.293c0 .319.192.694.801.576 4.765-1.589 8.199-6.086 8.199-11.386 0-6.627-5.373-12-12-12z"

func svg(size, fill string, children ...*Node) *Node {
	attrs := []Attr{
		A("width", size),
		A("height", size),
		A("viewBox", "0 0 24 24"),
		A("fill", fill),
		A("aria-hidden", "true"),
	}
	if fill == "none" {
		attrs = append(attrs, A("stroke", "currentColor"), A("stroke-width", "2"))
	}
	return El("svg", attrs, children...)
}

// placeholderGlyph is the monitor outline drawn for projects without media.
func placeholderGlyph(size string) *Node {
	return El("span", []Attr{A("class", "project-placeholder")},
		svg(size, "none",
			El("rect", []Attr{A("x", "2"), A("y", "3"), A("width", "20"), A("height", "14"), A("rx", "2"), A("ry", "2")}),
			El("line", []Attr{A("x1", "8"), A("y1", "21"), A("x2", "16"), A("y2", "21")}),
			El("line", []Attr{A("x1", "12"), A("y1", "17"), A("x2", "12"), A("y2", "21")}),
		),
	)
}

func githubIcon(size string) *Node {
	return svg(size, "currentColor", El("path", []Attr{A("d", githubPath)}))
}

func externalIcon(size string) *Node {
	return svg(size, "none",
		El("path", []Attr{A("d", "M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6")}),
		El("polyline", []Attr{A("points", "15 3 21 3 21 9")}),
		El("line", []Attr{A("x1", "10"), A("y1", "14"), A("x2", "21"), A("y2", "3")}),
	)
}

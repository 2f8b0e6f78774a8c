package view

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	policy   = newSummaryPolicy()
)

func newSummaryPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Markdown converts a project summary to sanitized HTML. On a conversion
// failure the source is emitted as escaped text inside a paragraph.
func Markdown(src string) *Node {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return Raw("<p>" + html.EscapeString(src) + "</p>")
	}
	return Raw(policy.Sanitize(buf.String()))
}

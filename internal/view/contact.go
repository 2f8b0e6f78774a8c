package view

import "github.com/Zachkp/portfolio/internal/contact"

type formField struct {
	name  string
	label string
	kind  string
	value func(contact.Submission) string
}

var contactFields = []formField{
	{contact.FieldName, "Name", "text", func(s contact.Submission) string { return s.Name }},
	{contact.FieldEmail, "Email", "email", func(s contact.Submission) string { return s.Email }},
	{contact.FieldSubject, "Subject", "text", func(s contact.Submission) string { return s.Subject }},
	{contact.FieldMessage, "Message", "textarea", func(s contact.Submission) string { return s.Message }},
}

// ContactForm renders the contact form, echoing values and field errors.
func ContactForm(values contact.Submission, errs contact.FieldErrors) *Node {
	groups := make([]*Node, 0, len(contactFields)+1)
	for _, f := range contactFields {
		msg := errs[f.name]
		class := "form-group"
		if msg != "" {
			class += " error"
		}
		attrs := []Attr{A("id", f.name), A("name", f.name), A("required", "")}
		if msg != "" {
			attrs = append(attrs, A("aria-invalid", "true"), A("aria-describedby", f.name+"-error"))
		}
		var input *Node
		if f.kind == "textarea" {
			input = El("textarea", append(attrs, A("rows", "6")), Text(f.value(values)))
		} else {
			input = El("input", append(attrs, A("type", f.kind), A("value", f.value(values))))
		}
		groups = append(groups, El("div", []Attr{A("class", class)},
			El("label", []Attr{A("for", f.name)}, Text(f.label)),
			input,
			El("span", []Attr{A("id", f.name+"-error"), A("class", "form-error"), A("role", "alert")}, Text(msg)),
		))
	}
	groups = append(groups, El("button", []Attr{A("type", "submit"), A("class", "btn btn-primary")},
		El("span", nil, Text("Send Message")),
	))

	return El("form", []Attr{
		A("id", "contactForm"),
		A("class", "contact-form"),
		A("method", "post"),
		A("action", ContactPath),
		A("hx-post", ContactPath),
		A("hx-target", "this"),
		A("hx-swap", "outerHTML"),
		A("hx-disabled-elt", "button[type=submit]"),
		A("novalidate", ""),
	}, groups...)
}

// ContactResult renders the message shown after a submission attempt.
func ContactResult(ok bool, message string) *Node {
	class := "contact-result contact-error"
	if ok {
		class = "contact-result contact-success"
	}
	return El("div", []Attr{A("id", "contactForm"), A("class", class), A("role", "status")},
		El("p", nil, Text(message)),
	)
}

// ContactPage renders the contact page around the form or a result.
func ContactPage(site Site, body *Node) *Node {
	return Document(site, "Contact", ContactPath,
		El("section", []Attr{A("class", "contact")},
			El("h1", []Attr{A("class", "section-title")}, Text("Contact Me")),
			body,
		),
	)
}

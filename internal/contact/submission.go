// Package contact validates contact form submissions and hands them to an
// email relay.
package contact

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// Form field names, shared with the rendered form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var fieldMessages = map[string]string{
	FieldName:    "Name must be at least 2 characters long",
	FieldEmail:   "Please enter a valid email address",
	FieldSubject: "Subject must be at least 3 characters long",
	FieldMessage: "Message must be at least 10 characters long",
}

var (
	validate = newValidator()
	strict   = bluemonday.StrictPolicy()
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		return name
	})
	if err := v.RegisterValidation("relayemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Submission is what a visitor typed into the contact form.
type Submission struct {
	Name    string `form:"name" json:"name" validate:"min=2"`
	Email   string `form:"email" json:"email" validate:"relayemail"`
	Subject string `form:"subject" json:"subject" validate:"min=3"`
	Message string `form:"message" json:"message" validate:"min=10"`
}

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

// Normalized returns the submission with surrounding whitespace removed.
func (s Submission) Normalized() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}

// Validate checks the normalized submission. A nil result means it is valid.
func (s Submission) Validate() FieldErrors {
	err := validate.Struct(s.Normalized())
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{FieldMessage: err.Error()}
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessages[fe.Field()]
	}
	return out
}

// Scrubbed returns the submission as plain text with any markup removed.
func (s Submission) Scrubbed() Submission {
	n := s.Normalized()
	clean := func(v string) string {
		return html.UnescapeString(strict.Sanitize(v))
	}
	return Submission{
		Name:    clean(n.Name),
		Email:   n.Email,
		Subject: clean(n.Subject),
		Message: clean(n.Message),
	}
}

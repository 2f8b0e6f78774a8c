// Package catalog holds the static list of portfolio projects and the
// read-only queries the pages run against it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// FilterAll selects every project regardless of category.
const FilterAll = "all"

// ErrInvalidProject is returned when a record set breaks a catalog invariant.
var ErrInvalidProject = errors.New("invalid project")

//go:embed projects.yaml
var defaultProjects []byte

// Project is one portfolio entry. Values are treated as immutable once they
// are part of a Catalog.
type Project struct {
	ID              int      `yaml:"id" json:"id"`
	Title           string   `yaml:"title" json:"title"`
	Description     string   `yaml:"description" json:"description"`
	LongDescription string   `yaml:"longDescription,omitempty" json:"longDescription,omitempty"`
	Image           string   `yaml:"image,omitempty" json:"image,omitempty"`
	Video           string   `yaml:"video,omitempty" json:"video,omitempty"`
	Tags            []string `yaml:"tags" json:"tags"`
	Category        []string `yaml:"category" json:"category"`
	GitHub          string   `yaml:"github,omitempty" json:"github,omitempty"`
	Demo            string   `yaml:"demo,omitempty" json:"demo,omitempty"`
	Featured        bool     `yaml:"featured" json:"featured"`
	Features        []string `yaml:"features,omitempty" json:"features,omitempty"`
}

// InCategory reports whether key is one of the project's categories,
// ignoring case.
func (p Project) InCategory(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	return slices.Contains(p.Category, key)
}

// Summary is the text shown in the detail view: the long description when
// present, the short one otherwise.
func (p Project) Summary() string {
	if strings.TrimSpace(p.LongDescription) != "" {
		return p.LongDescription
	}
	return p.Description
}

// clone copies the slice fields so callers never share backing arrays with
// the catalog.
func (p Project) clone() Project {
	p.Tags = slices.Clone(p.Tags)
	p.Category = slices.Clone(p.Category)
	p.Features = slices.Clone(p.Features)
	return p
}

// Catalog is an ordered, immutable collection of projects.
type Catalog struct {
	projects []Project
}

// New validates the records and builds a catalog preserving their order.
func New(projects []Project) (*Catalog, error) {
	seen := make(map[int]struct{}, len(projects))
	out := make([]Project, 0, len(projects))
	for i, p := range projects {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: record %d has non-positive id %d", ErrInvalidProject, i, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidProject, p.ID)
		}
		seen[p.ID] = struct{}{}

		cats := make([]string, 0, len(p.Category))
		for _, c := range p.Category {
			c = strings.ToLower(strings.TrimSpace(c))
			if c == "" || slices.Contains(cats, c) {
				continue
			}
			cats = append(cats, c)
		}
		if len(cats) == 0 {
			return nil, fmt.Errorf("%w: project %d has no category", ErrInvalidProject, p.ID)
		}
		p.Category = cats
		out = append(out, p.clone())
	}
	return &Catalog{projects: out}, nil
}

// Parse decodes a YAML list of projects into a catalog.
func Parse(data []byte) (*Catalog, error) {
	var projects []Project
	if err := yaml.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(projects)
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultProjects)
}

// All returns every project in catalog order.
func (c *Catalog) All() []Project {
	out := make([]Project, 0, len(c.projects))
	for _, p := range c.projects {
		out = append(out, p.clone())
	}
	return out
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// ListFeatured returns the featured projects in catalog order.
func (c *Catalog) ListFeatured() []Project {
	out := []Project{}
	for _, p := range c.projects {
		if p.Featured {
			out = append(out, p.clone())
		}
	}
	return out
}

// FilterByCategory returns every project for FilterAll, otherwise the
// projects whose category set contains key. An unknown key yields an empty
// slice.
func (c *Catalog) FilterByCategory(key string) []Project {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == FilterAll {
		return c.All()
	}
	out := []Project{}
	for _, p := range c.projects {
		if p.InCategory(key) {
			out = append(out, p.clone())
		}
	}
	return out
}

// FindByID looks up a project. The boolean is false when no project has id.
func (c *Catalog) FindByID(id int) (Project, bool) {
	for _, p := range c.projects {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Project{}, false
}

// Categories lists the distinct category keys in order of first appearance.
func (c *Catalog) Categories() []string {
	var out []string
	for _, p := range c.projects {
		for _, cat := range p.Category {
			if !slices.Contains(out, cat) {
				out = append(out, cat)
			}
		}
	}
	return out
}

package view

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/Zachkp/portfolio/internal/catalog"
)

// Route paths shared by the markup and the HTTP layer.
const (
	HomePath       = "/"
	ProjectsPath   = "/projects/"
	AboutPath      = "/about"
	ContactPath    = "/contact"
	GridPath       = "/projects/grid"
	ModalClosePath = "/projects/modal/close"
	HeroStreamPath = "/hero/stream"
)

// DetailPath is the deep link that opens a project's detail view on the
// projects page.
func DetailPath(id int) string {
	return ProjectsPath + "?id=" + strconv.Itoa(id)
}

// FilteredPath is the projects page URL for a category key. The "all" key
// keeps the bare path.
func FilteredPath(key string) string {
	if key == "" || key == catalog.FilterAll {
		return ProjectsPath
	}
	return ProjectsPath + "?filter=" + url.QueryEscape(key)
}

// FilteredDetailPath is DetailPath with the selected category kept.
func FilteredDetailPath(key string, id int) string {
	path := FilteredPath(key)
	if path == ProjectsPath {
		return DetailPath(id)
	}
	return path + "&id=" + strconv.Itoa(id)
}

// ModalVals is the hx-vals payload fragment requests carry back to the
// server: the selected filter and, when non-zero, the open project.
func ModalVals(key string, id int) string {
	vals := map[string]string{"filter": key}
	if id > 0 {
		vals["id"] = strconv.Itoa(id)
	}
	b, _ := json.Marshal(vals)
	return string(b)
}

// DetailFragmentPath serves the open modal for a project.
func DetailFragmentPath(id int) string {
	return "/projects/" + strconv.Itoa(id) + "/detail"
}

// FilterPath serves the gallery fragment for a category key.
func FilterPath(key string) string {
	return GridPath + "?filter=" + url.QueryEscape(key)
}

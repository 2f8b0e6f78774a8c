package view

import (
	"strconv"

	"github.com/Zachkp/portfolio/internal/storage"
)

// Admin paths.
const (
	AdminLoginPath     = "/admin/login"
	AdminLogoutPath    = "/admin/logout"
	AdminDashboardPath = "/admin/dashboard"
	AdminVisitorsPath  = "/admin/visitors"
)

// AdminLoginPage renders the login form, with an error line when set.
func AdminLoginPage(site Site, errMsg string) *Node {
	var errLine *Node
	if errMsg != "" {
		errLine = El("p", []Attr{A("class", "form-error"), A("role", "alert")}, Text(errMsg))
	}
	return Document(site, "Admin Login", "",
		El("section", []Attr{A("class", "admin-login")},
			El("h1", []Attr{A("class", "section-title")}, Text("Admin Login")),
			errLine,
			El("form", []Attr{A("method", "post"), A("action", AdminLoginPath)},
				El("div", []Attr{A("class", "form-group")},
					El("label", []Attr{A("for", "username")}, Text("Username")),
					El("input", []Attr{A("id", "username"), A("name", "username"), A("type", "text"), A("autocomplete", "username")}),
				),
				El("div", []Attr{A("class", "form-group")},
					El("label", []Attr{A("for", "password")}, Text("Password")),
					El("input", []Attr{A("id", "password"), A("name", "password"), A("type", "password"), A("autocomplete", "current-password")}),
				),
				El("button", []Attr{A("type", "submit"), A("class", "btn btn-primary")}, Text("Log in")),
			),
		),
	)
}

// AdminDashboard renders the traffic and message summary.
func AdminDashboard(site Site, s *storage.Stats) *Node {
	counter := func(label string, n int64) *Node {
		return El("div", []Attr{A("class", "stat")},
			El("span", []Attr{A("class", "stat-number")}, Text(strconv.FormatInt(n, 10))),
			El("span", []Attr{A("class", "stat-label")}, Text(label)),
		)
	}

	paths := make([]*Node, 0, len(s.TopPaths))
	for _, p := range s.TopPaths {
		paths = append(paths, El("tr", nil,
			El("td", nil, Text(p.Path)),
			El("td", nil, Text(strconv.FormatInt(p.Visits, 10))),
		))
	}

	messages := make([]*Node, 0, len(s.RecentMessages))
	for _, m := range s.RecentMessages {
		messages = append(messages, El("tr", []Attr{A("data-status", m.Status)},
			El("td", nil, Text(m.ReceivedAt.Format("2006-01-02 15:04"))),
			El("td", nil, Text(m.Name)),
			El("td", nil, Text(m.Subject)),
			El("td", nil, Text(m.Status)),
		))
	}

	return Document(site, "Dashboard", "",
		El("section", []Attr{A("class", "admin-dashboard")},
			El("h1", []Attr{A("class", "section-title")}, Text("Dashboard")),
			El("a", []Attr{A("href", AdminVisitorsPath), A("class", "btn btn-secondary")}, Text("Visitors")),
			El("a", []Attr{A("href", AdminLogoutPath), A("class", "btn btn-secondary")}, Text("Log out")),
			El("div", []Attr{A("class", "stats")},
				counter("Total visits", s.TotalVisitors),
				counter("Unique visitors", s.UniqueVisitors),
				counter("Today", s.VisitorsToday),
				counter("This week", s.VisitorsThisWeek),
				counter("Messages", s.TotalMessages),
				counter("Failed deliveries", s.FailedMessages),
			),
			El("h2", nil, Text("Top pages")),
			El("table", []Attr{A("id", "topPaths")}, El("tbody", nil, paths...)),
			El("h2", nil, Text("Recent messages")),
			El("table", []Attr{A("id", "recentMessages")}, El("tbody", nil, messages...)),
		),
	)
}

// AdminVisitors lists recent visits. Only the hashed address is ever shown.
func AdminVisitors(site Site, visits []storage.Visit) *Node {
	rows := make([]*Node, 0, len(visits))
	for _, v := range visits {
		rows = append(rows, El("tr", nil,
			El("td", nil, Text(v.VisitedAt.Format("2006-01-02 15:04"))),
			El("td", nil, Text(v.HashedIP)),
			El("td", nil, Text(v.Path)),
			El("td", nil, Text(v.UserAgent)),
		))
	}
	return Document(site, "Visitors", "",
		El("section", []Attr{A("class", "admin-visitors")},
			El("h1", []Attr{A("class", "section-title")}, Text("Visitors")),
			El("a", []Attr{A("href", AdminDashboardPath), A("class", "btn btn-secondary")}, Text("Dashboard")),
			El("table", []Attr{A("id", "visitors")}, El("tbody", nil, rows...)),
		),
	)
}

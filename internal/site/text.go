package site

import (
	"strings"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/hero"
	"github.com/Zachkp/portfolio/internal/view"
)

var AboutMe = `I love building software that's both useful and fun, and I'm always curious about how things work behind the scenes. Most of my projects start with a simple idea and turn into a chance to learn something new, whether it's exploring a different language, experimenting with tools, or solving tricky problems.

Lately that has meant cross-platform mobile apps in Flutter and web tooling in TypeScript, from offline-first field apps to content management and decentralized identity.

When I'm not coding, you'll usually find me training Muay Thai, shooting pool with friends, or chasing down a new challenge outside the screen.`

// Profile is the site-wide copy. The project counter follows the catalog.
func Profile(c *catalog.Catalog) view.Site {
	return view.Site{
		Name:    "Zach Kordas-Potter",
		Tagline: "I build mobile and web apps people enjoy using.",
		Roles:   hero.DefaultRoles,
		AboutMe: AboutMe,
		Stats: []view.Stat{
			{Label: "Projects", Target: c.Len()},
			{Label: "Technologies", Target: distinctTags(c)},
			{Label: "Years Coding", Target: 5},
		},
	}
}

func distinctTags(c *catalog.Catalog) int {
	seen := map[string]struct{}{}
	for _, p := range c.All() {
		for _, t := range p.Tags {
			seen[strings.ToLower(t)] = struct{}{}
		}
	}
	return len(seen)
}

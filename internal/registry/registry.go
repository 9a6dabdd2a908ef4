// Package registry provides the site map: a global registry of pages.
// Pages register themselves in init() functions, allowing the navbar, the
// router and the CLI to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// PageInfo contains metadata about a registered page.
type PageInfo struct {
	ID    string // Stable identifier, e.g. "showroom"
	Title string // Navbar label
	Route string // Path the page answers to, e.g. "Buy-Car.html"
	Order int    // Navbar position; lower comes first
	Nav   bool   // Whether the page is listed in the navbar
}

var (
	pages   = make(map[string]PageInfo)
	byRoute = make(map[string]string)
	mu      sync.RWMutex
)

// Register adds a page to the site map.
// Panics if a page with the same ID or route is already registered.
func Register(p PageInfo) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := pages[p.ID]; exists {
		panic(fmt.Sprintf("registry: page %q already registered", p.ID))
	}
	route := normalizeRoute(p.Route)
	if other, exists := byRoute[route]; exists {
		panic(fmt.Sprintf("registry: route %q already taken by %q", p.Route, other))
	}

	pages[p.ID] = p
	byRoute[route] = p.ID
}

// List returns all registered pages in navbar order.
func List() []PageInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PageInfo, 0, len(pages))
	for _, p := range pages {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Nav returns the pages shown in the navbar, in order.
func Nav() []PageInfo {
	var nav []PageInfo
	for _, p := range List() {
		if p.Nav {
			nav = append(nav, p)
		}
	}
	return nav
}

// Lookup returns the page with the given ID.
func Lookup(id string) (PageInfo, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := pages[id]
	if !ok {
		return PageInfo{}, fmt.Errorf("registry: unknown page %q", id)
	}
	return p, nil
}

// ByRoute resolves a route such as "/Buy-Car.html" to its page.
// Query strings are ignored.
func ByRoute(route string) (PageInfo, error) {
	mu.RLock()
	defer mu.RUnlock()

	id, ok := byRoute[normalizeRoute(route)]
	if !ok {
		return PageInfo{}, fmt.Errorf("registry: no page at %q", route)
	}
	return pages[id], nil
}

// Exists checks if a page with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := pages[id]
	return ok
}

func normalizeRoute(route string) string {
	if i := strings.IndexByte(route, '?'); i >= 0 {
		route = route[:i]
	}
	return strings.ToLower(strings.TrimPrefix(route, "/"))
}

package pkgrouter

import (
	"net/http"
	"strings"
)

// Group registers routes under a common path prefix with shared middleware.
// Nested groups inherit the parent's prefix and middleware, which is how a
// child resource is mounted beneath its parent's id segment.
type Group struct {
	router *Router
	prefix string
	mws    []Middleware
}

// Group returns a nested group mounted at g's prefix plus prefix.
func (g *Group) Group(prefix string, mws ...Middleware) *Group {
	return &Group{router: g.router, prefix: g.path(prefix), mws: g.stack(mws)}
}

// GET registers a GET endpoint relative to the group prefix.
func (g *Group) GET(path string, h Handler, mws ...Middleware) {
	g.router.endpoint(http.MethodGet, g.path(path), h, g.stack(mws)...)
}

// POST registers a POST endpoint relative to the group prefix.
func (g *Group) POST(path string, h Handler, mws ...Middleware) {
	g.router.endpoint(http.MethodPost, g.path(path), h, g.stack(mws)...)
}

// PUT registers a PUT endpoint relative to the group prefix.
func (g *Group) PUT(path string, h Handler, mws ...Middleware) {
	g.router.endpoint(http.MethodPut, g.path(path), h, g.stack(mws)...)
}

// DELETE registers a DELETE endpoint relative to the group prefix.
func (g *Group) DELETE(path string, h Handler, mws ...Middleware) {
	g.router.endpoint(http.MethodDelete, g.path(path), h, g.stack(mws)...)
}

// Prefix returns the absolute path the group is mounted at.
func (g *Group) Prefix() string {
	return g.prefix
}

func (g *Group) path(p string) string {
	if p == "" || p == "/" {
		if g.prefix == "" {
			return "/"
		}
		return g.prefix
	}
	return strings.TrimSuffix(g.prefix, "/") + "/" + strings.TrimPrefix(p, "/")
}

func (g *Group) stack(mws []Middleware) []Middleware {
	all := make([]Middleware, 0, len(g.mws)+len(mws))
	all = append(all, g.mws...)
	return append(all, mws...)
}

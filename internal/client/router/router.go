package router

import (
	"context"
	"io"
	"strings"
)

type route struct {
	pattern   string
	segments  []string
	handler   Handler
	protected bool
}

// Router matches paths against registered patterns in registration order.
// Patterns are literal segments plus ":name" parameters.
type Router struct {
	routes   []route
	notFound Handler
	guard    Middleware
}

func New() *Router {
	return &Router{}
}

// Handle registers h for pattern, wrapped in mws.
func (r *Router) Handle(pattern string, h Handler, mws ...Middleware) {
	r.routes = append(r.routes, route{
		pattern:  pattern,
		segments: split(pattern),
		handler:  Chain(h, mws...),
	})
}

// Protect sets the guard HandleProtected puts in front of its handlers.
func (r *Router) Protect(guard Middleware) {
	r.guard = guard
}

// HandleProtected registers h behind the guard. The guard runs before mws.
func (r *Router) HandleProtected(pattern string, h Handler, mws ...Middleware) {
	if r.guard != nil {
		mws = append([]Middleware{r.guard}, mws...)
	}
	r.Handle(pattern, h, mws...)
	r.routes[len(r.routes)-1].protected = true
}

// IsProtected reports whether path resolves to a guarded route.
func (r *Router) IsProtected(path string) bool {
	parts := split(Clean(path))
	for _, rt := range r.routes {
		if _, ok := matchSegments(rt.segments, parts); ok {
			return rt.protected
		}
	}
	return false
}

// NotFound sets the catch-all handler used when no pattern matches.
func (r *Router) NotFound(h Handler) {
	r.notFound = h
}

// Match resolves path to a handler and request. ok is false when only the
// catch-all matched.
func (r *Router) Match(path string) (h Handler, req *Request, ok bool) {
	path = Clean(path)
	parts := split(path)

	for _, rt := range r.routes {
		if params, matched := matchSegments(rt.segments, parts); matched {
			return rt.handler, &Request{Path: path, Params: params}, true
		}
	}

	h = r.notFound
	if h == nil {
		h = defaultNotFound
	}
	return h, &Request{Path: path}, false
}

// Clean normalises a user-typed path: leading slash, no trailing slash,
// no empty segments, query string dropped.
func Clean(path string) string {
	path, _, _ = strings.Cut(strings.TrimSpace(path), "?")
	parts := split(path)
	return "/" + strings.Join(parts, "/")
}

func split(path string) []string {
	fields := strings.Split(path, "/")
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func matchSegments(pattern, parts []string) (map[string]string, bool) {
	if len(pattern) != len(parts) {
		return nil, false
	}
	var params map[string]string
	for i, seg := range pattern {
		if name, isParam := strings.CutPrefix(seg, ":"); isParam {
			if params == nil {
				params = make(map[string]string)
			}
			params[name] = parts[i]
			continue
		}
		if seg != parts[i] {
			return nil, false
		}
	}
	return params, true
}

func defaultNotFound(_ context.Context, w io.Writer, _ *Request) (Result, error) {
	_, err := io.WriteString(w, "404 Not Found\n")
	return Rendered, err
}

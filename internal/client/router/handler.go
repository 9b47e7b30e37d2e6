package router

import (
	"context"
	"io"
)

// Request is a matched navigation request.
type Request struct {
	Path   string
	Params map[string]string
}

// Param returns the named path parameter, or "".
func (r *Request) Param(name string) string {
	if r == nil || r.Params == nil {
		return ""
	}
	return r.Params[name]
}

// Result tells the Navigator what to do after a handler ran.
type Result struct {
	RedirectTo string
	// Replace makes the redirect overwrite the current history entry
	// instead of pushing a new one.
	Replace bool
}

// Rendered is the Result of a handler that produced its page.
var Rendered = Result{}

// RedirectTo builds a redirect Result.
func RedirectTo(path string, replace bool) Result {
	return Result{RedirectTo: path, Replace: replace}
}

// IsRedirect reports whether r asks for another page.
func (r Result) IsRedirect() bool {
	return r.RedirectTo != ""
}

type Handler func(ctx context.Context, w io.Writer, req *Request) (Result, error)

type Middleware func(Handler) Handler

// Chain wraps h so that mws[0] runs first.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

package router

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/folio/internal/logging"
)

// MaxRedirects bounds how many redirects one navigation may follow.
const MaxRedirects = 8

var ErrTooManyRedirects = errors.New("too many redirects")

// Navigator drives a Router: it records history and follows redirects.
// It is not safe for concurrent use; the REPL calls it from one goroutine.
type Navigator struct {
	router  *Router
	history History
	logger  logging.Logger
}

func NewNavigator(r *Router, logger logging.Logger) *Navigator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Navigator{router: r, logger: logger}
}

// Navigate pushes path and renders it.
func (n *Navigator) Navigate(ctx context.Context, w io.Writer, path string) error {
	n.history.Push(Clean(path))
	return n.render(ctx, w)
}

// Replace renders path in place of the current entry.
func (n *Navigator) Replace(ctx context.Context, w io.Writer, path string) error {
	n.history.Replace(Clean(path))
	return n.render(ctx, w)
}

// Back renders the previous entry. It returns false when there is none.
func (n *Navigator) Back(ctx context.Context, w io.Writer) (bool, error) {
	if _, ok := n.history.Back(); !ok {
		return false, nil
	}
	return true, n.render(ctx, w)
}

// Reload renders the current entry again, e.g. after the session changed.
// It does nothing on an empty history.
func (n *Navigator) Reload(ctx context.Context, w io.Writer) error {
	if n.history.Len() == 0 {
		return nil
	}
	return n.render(ctx, w)
}

// Current returns the path of the page on screen.
func (n *Navigator) Current() string {
	return n.history.Current()
}

// History exposes the navigation stack read-only.
func (n *Navigator) History() []string {
	return n.history.Entries()
}

func (n *Navigator) render(ctx context.Context, w io.Writer) error {
	for hops := 0; ; hops++ {
		path := n.history.Current()
		h, req, matched := n.router.Match(path)
		if !matched {
			n.logger.Debug(ctx, "no route", "path", path)
		}

		res, err := h(ctx, w, req)
		if err != nil {
			return fmt.Errorf("render %s: %w", path, err)
		}
		if !res.IsRedirect() {
			return nil
		}
		if hops >= MaxRedirects {
			return fmt.Errorf("%w: stopped at %s", ErrTooManyRedirects, res.RedirectTo)
		}

		n.logger.Debug(ctx, "redirect", "from", path, "to", res.RedirectTo, "replace", res.Replace)
		if res.Replace {
			n.history.Replace(Clean(res.RedirectTo))
		} else {
			n.history.Push(Clean(res.RedirectTo))
		}
	}
}

package router

import (
	"context"
	"io"

	"github.com/dmitrijs2005/folio/internal/client/session"
)

// StateReader is the read side of the session the guard depends on.
type StateReader interface {
	State() session.State
}

// Decision is the outcome of one guarded navigation attempt.
type Decision int

const (
	Denied Decision = iota
	Allowed
)

func (d Decision) String() string {
	if d == Allowed {
		return "allowed"
	}
	return "denied"
}

// Decide is the guard's whole state machine.
func Decide(authenticated bool) Decision {
	if authenticated {
		return Allowed
	}
	return Denied
}

// RequireAuth returns the route guard. For a logged-out session the
// wrapped handler is not called and nothing is written; the result is a
// replacing redirect to loginPath, so going back never lands on the gated
// page. For a logged-in session the handler runs unchanged.
func RequireAuth(s StateReader, loginPath string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, w io.Writer, req *Request) (Result, error) {
			if Decide(s.State().IsAuthenticated) == Denied {
				return RedirectTo(loginPath, true), nil
			}
			return next(ctx, w, req)
		}
	}
}

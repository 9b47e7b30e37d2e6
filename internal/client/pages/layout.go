package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/folio/internal/client/router"
	"github.com/dmitrijs2005/folio/internal/client/session"
)

// Header writes the navigation bar for st.
func Header(w io.Writer, st session.State) {
	links := []string{"Home", "Projects", "Blog", "Contact"}
	if st.IsAuthenticated {
		links = append(links, "Admin", fmt.Sprintf("Logout (%s)", st.User.DisplayName()))
	} else {
		links = append(links, "Login", "Register")
	}
	fmt.Fprintf(w, "[ My Portfolio ]  %s\n", strings.Join(links, " | "))
}

// Layout writes the header above every page.
func (p *Pages) Layout() router.Middleware {
	return func(next router.Handler) router.Handler {
		return func(ctx context.Context, w io.Writer, req *router.Request) (router.Result, error) {
			Header(w, p.Session.State())
			return next(ctx, w, req)
		}
	}
}

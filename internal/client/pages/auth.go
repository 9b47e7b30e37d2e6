package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/folio/internal/client/router"
	"github.com/dmitrijs2005/folio/internal/client/services"
)

// Login reads credentials and opens the session. Success lands on the
// admin page, replacing the login entry; failure stays here.
func (p *Pages) Login() router.Handler {
	return func(ctx context.Context, w io.Writer, _ *router.Request) (router.Result, error) {
		title(w, "Login")

		if st := p.Session.State(); st.IsAuthenticated {
			fmt.Fprintf(w, "Logged in as %s. Use 'logout' to switch accounts.\n", st.User.DisplayName())
			return router.Rendered, nil
		}

		identifier, err := p.Prompt.Text("Username or email (empty to cancel)")
		if err != nil {
			return router.Rendered, err
		}
		if strings.TrimSpace(identifier) == "" {
			fmt.Fprintln(w, "Login cancelled.")
			return router.Rendered, nil
		}
		password, err := p.Prompt.Password("Password")
		if err != nil {
			return router.Rendered, err
		}

		if _, err := p.Auth.Login(ctx, identifier, password); err != nil {
			showError(w, "Login failed", err)
			return router.Rendered, nil
		}
		return router.RedirectTo(PathAdmin, true), nil
	}
}

// Register creates an account and sends the user to the login page.
func (p *Pages) Register() router.Handler {
	return func(ctx context.Context, w io.Writer, _ *router.Request) (router.Result, error) {
		title(w, "Register")

		var f services.RegisterForm
		var err error
		if f.Username, err = p.Prompt.Text("Username (empty to cancel)"); err != nil {
			return router.Rendered, err
		}
		if strings.TrimSpace(f.Username) == "" {
			fmt.Fprintln(w, "Registration cancelled.")
			return router.Rendered, nil
		}
		if f.Email, err = p.Prompt.Text("Email"); err != nil {
			return router.Rendered, err
		}
		if f.Password, err = p.Prompt.Password("Password"); err != nil {
			return router.Rendered, err
		}
		if f.ConfirmPassword, err = p.Prompt.Password("Confirm password"); err != nil {
			return router.Rendered, err
		}

		if err := p.Auth.Register(ctx, f); err != nil {
			showError(w, "Registration failed", err)
			return router.Rendered, nil
		}
		fmt.Fprintln(w, "Registration successful. Please log in.")
		return router.RedirectTo(PathLogin, true), nil
	}
}

package pages

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/client/router"
	"github.com/dmitrijs2005/folio/internal/client/services"
	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/logging"
)

const (
	PathHome     = "/"
	PathProjects = "/projects"
	PathBlog     = "/blog"
	PathPost     = "/blog/:id"
	PathComment  = "/blog/:id/comment"
	PathContact  = "/contact"
	PathLogin    = "/login"
	PathRegister = "/register"
	PathAdmin    = "/admin"

	PathProjectNew    = "/admin/projects/new"
	PathProjectEdit   = "/admin/projects/:id/edit"
	PathProjectDelete = "/admin/projects/:id/delete"
	PathPostNew       = "/admin/blog/new"
	PathPostEdit      = "/admin/blog/:id/edit"
	PathPostDelete    = "/admin/blog/:id/delete"
)

// ProjectLister feeds the public projects page.
type ProjectLister interface {
	ListProjects(ctx context.Context) ([]api.Project, error)
}

// Deps are the collaborators the pages render from.
type Deps struct {
	Session       router.StateReader
	Auth          *services.AuthService
	Blog          *services.BlogService
	Contact       *services.ContactService
	ProjectSource ProjectLister

	ProjectCatalog *services.Catalog[api.Project]
	PostCatalog    *services.Catalog[api.Post]

	Prompt Prompter
	Logger logging.Logger
}

type Pages struct {
	Deps
}

func New(d Deps) *Pages {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	return &Pages{Deps: d}
}

// Routes registers every page on r. Protected pages sit behind the
// authentication guard, which runs before the header is written.
func (p *Pages) Routes(r *router.Router) {
	layout := p.Layout()
	r.Protect(router.RequireAuth(p.Session, PathLogin))

	r.Handle(PathHome, p.Home(), layout)
	r.Handle(PathProjects, p.Projects(), layout)
	r.Handle(PathBlog, p.BlogList(), layout)
	r.Handle(PathPost, p.BlogDetail(), layout)
	r.HandleProtected(PathComment, p.CommentForm(), layout)
	r.Handle(PathContact, p.ContactForm(), layout)
	r.Handle(PathLogin, p.Login(), layout)
	r.Handle(PathRegister, p.Register(), layout)

	r.HandleProtected(PathAdmin, p.Admin(), layout)
	r.HandleProtected(PathProjectNew, p.ProjectForm(), layout)
	r.HandleProtected(PathProjectEdit, p.ProjectForm(), layout)
	r.HandleProtected(PathProjectDelete, p.ProjectDelete(), layout)
	r.HandleProtected(PathPostNew, p.PostForm(), layout)
	r.HandleProtected(PathPostEdit, p.PostForm(), layout)
	r.HandleProtected(PathPostDelete, p.PostDelete(), layout)

	r.NotFound(router.Chain(p.NotFound(), layout))
}

func (p *Pages) NotFound() router.Handler {
	return func(_ context.Context, w io.Writer, req *router.Request) (router.Result, error) {
		fmt.Fprintln(w, "404 Not Found")
		fmt.Fprintf(w, "Nothing lives at %s.\n", req.Path)
		return router.Rendered, nil
	}
}

func title(w io.Writer, s string) {
	fmt.Fprintf(w, "\n== %s ==\n", s)
}

// showError prints a failure the user can act on. Pages keep running.
func showError(w io.Writer, what string, err error) {
	fmt.Fprintf(w, "%s: %s\n", what, describe(err))
}

func describe(err error) string {
	var se *api.StatusError
	switch {
	case errors.Is(err, common.ErrNotAuthenticated):
		return "please log in first"
	case errors.Is(err, api.ErrUnavailable) && !errors.As(err, &se):
		return "the server cannot be reached, try again later"
	case errors.As(err, &se) && se.Message != "":
		return se.Message
	default:
		return err.Error()
	}
}

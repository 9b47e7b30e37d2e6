package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/client/router"
	"golang.org/x/sync/errgroup"
)

var backToAdmin = router.RedirectTo(PathAdmin, true)

// Admin is the dashboard: both managers with their current lists.
func (p *Pages) Admin() router.Handler {
	return func(ctx context.Context, w io.Writer, _ *router.Request) (router.Result, error) {
		title(w, "Admin Dashboard")
		if st := p.Session.State(); st.User != nil {
			fmt.Fprintf(w, "Signed in as %s\n", st.User.DisplayName())
		}

		var projectsErr, postsErr error
		var g errgroup.Group
		g.Go(func() error {
			projectsErr = p.ProjectCatalog.Load(ctx)
			return nil
		})
		g.Go(func() error {
			postsErr = p.PostCatalog.Load(ctx)
			return nil
		})
		_ = g.Wait()

		fmt.Fprintln(w, "\nProjects")
		if projectsErr != nil {
			showError(w, "Could not load projects", projectsErr)
		}
		projects := p.ProjectCatalog.Items()
		if len(projects) == 0 {
			fmt.Fprintln(w, "  (none)")
		}
		for _, pr := range projects {
			fmt.Fprintf(w, "  [%s] %s\n", pr.ID, pr.Title)
		}

		fmt.Fprintln(w, "\nBlog posts")
		if postsErr != nil {
			showError(w, "Could not load posts", postsErr)
		}
		posts := p.PostCatalog.Items()
		if len(posts) == 0 {
			fmt.Fprintln(w, "  (none)")
		}
		for _, post := range posts {
			fmt.Fprintf(w, "  [%s] %s\n", post.ID, post.Title)
		}

		fmt.Fprintln(w, "\nManage with: project new|edit <id>|delete <id>, post new|edit <id>|delete <id>")
		return router.Rendered, nil
	}
}

// ProjectForm creates a project, or edits the one named by the id param.
func (p *Pages) ProjectForm() router.Handler {
	return func(ctx context.Context, w io.Writer, req *router.Request) (router.Result, error) {
		var pr api.Project
		id := req.Param("id")
		if id == "" {
			title(w, "New project")
		} else {
			title(w, "Edit project")
			found, ok := p.findProject(ctx, id)
			if !ok {
				fmt.Fprintf(w, "Project %s not found.\n", id)
				return router.Rendered, nil
			}
			pr = found
		}

		var err error
		if pr.Title, err = p.ask("Title", pr.Title); err != nil {
			return router.Rendered, err
		}
		if pr.Description, err = p.ask("Description", pr.Description); err != nil {
			return router.Rendered, err
		}
		if pr.URL, err = p.ask("Project URL", pr.URL); err != nil {
			return router.Rendered, err
		}

		if id == "" {
			_, err = p.ProjectCatalog.Create(ctx, pr)
		} else {
			_, err = p.ProjectCatalog.Update(ctx, pr)
		}
		if err != nil {
			showError(w, "Project not saved", err)
			return router.Rendered, nil
		}
		fmt.Fprintln(w, "Project saved.")
		return backToAdmin, nil
	}
}

func (p *Pages) ProjectDelete() router.Handler {
	return func(ctx context.Context, w io.Writer, req *router.Request) (router.Result, error) {
		title(w, "Delete project")
		pr, ok := p.findProject(ctx, req.Param("id"))
		if !ok {
			fmt.Fprintf(w, "Project %s not found.\n", req.Param("id"))
			return router.Rendered, nil
		}

		yes, err := p.Prompt.Confirm(fmt.Sprintf("Delete project %q?", pr.Title))
		if err != nil {
			return router.Rendered, err
		}
		if !yes {
			return backToAdmin, nil
		}
		if err := p.ProjectCatalog.Delete(ctx, pr.ID); err != nil {
			showError(w, "Project not deleted", err)
			return router.Rendered, nil
		}
		fmt.Fprintln(w, "Project deleted.")
		return backToAdmin, nil
	}
}

// PostForm creates a post, or edits the one named by the id param.
func (p *Pages) PostForm() router.Handler {
	return func(ctx context.Context, w io.Writer, req *router.Request) (router.Result, error) {
		var post api.Post
		id := req.Param("id")
		if id == "" {
			title(w, "New post")
		} else {
			title(w, "Edit post")
			found, ok := p.findPost(ctx, id)
			if !ok {
				fmt.Fprintf(w, "Post %s not found.\n", id)
				return router.Rendered, nil
			}
			post = found
		}

		var err error
		if post.Title, err = p.ask("Title", post.Title); err != nil {
			return router.Rendered, err
		}
		if post.Summary, err = p.ask("Summary", post.Summary); err != nil {
			return router.Rendered, err
		}
		label := "Content"
		if post.Content != "" {
			label = "Content (empty line keeps the current text)"
		}
		content, err := p.Prompt.Multiline(label)
		if err != nil {
			return router.Rendered, err
		}
		if strings.TrimSpace(content) != "" {
			post.Content = content
		}

		if id == "" {
			_, err = p.PostCatalog.Create(ctx, post)
		} else {
			_, err = p.PostCatalog.Update(ctx, post)
		}
		if err != nil {
			showError(w, "Post not saved", err)
			return router.Rendered, nil
		}
		fmt.Fprintln(w, "Post saved.")
		return backToAdmin, nil
	}
}

func (p *Pages) PostDelete() router.Handler {
	return func(ctx context.Context, w io.Writer, req *router.Request) (router.Result, error) {
		title(w, "Delete post")
		post, ok := p.findPost(ctx, req.Param("id"))
		if !ok {
			fmt.Fprintf(w, "Post %s not found.\n", req.Param("id"))
			return router.Rendered, nil
		}

		yes, err := p.Prompt.Confirm(fmt.Sprintf("Delete post %q?", post.Title))
		if err != nil {
			return router.Rendered, err
		}
		if !yes {
			return backToAdmin, nil
		}
		if err := p.PostCatalog.Delete(ctx, post.ID); err != nil {
			showError(w, "Post not deleted", err)
			return router.Rendered, nil
		}
		fmt.Fprintln(w, "Post deleted.")
		return backToAdmin, nil
	}
}

// ask prompts for a field, showing and keeping current on empty input.
func (p *Pages) ask(label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := p.Prompt.Text(label)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(v) == "" {
		return current, nil
	}
	return strings.TrimSpace(v), nil
}

func (p *Pages) findProject(ctx context.Context, id string) (api.Project, bool) {
	if !p.ProjectCatalog.Loaded() {
		if err := p.ProjectCatalog.Load(ctx); err != nil {
			p.Logger.Warn(ctx, "failed to load projects", "error", err)
		}
	}
	return p.ProjectCatalog.Find(id)
}

func (p *Pages) findPost(ctx context.Context, id string) (api.Post, bool) {
	if !p.PostCatalog.Loaded() {
		if err := p.PostCatalog.Load(ctx); err != nil {
			p.Logger.Warn(ctx, "failed to load posts", "error", err)
		}
	}
	return p.PostCatalog.Find(id)
}

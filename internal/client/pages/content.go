package pages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/client/router"
	"github.com/dmitrijs2005/folio/internal/client/services"
)

func (p *Pages) Home() router.Handler {
	return func(_ context.Context, w io.Writer, _ *router.Request) (router.Result, error) {
		title(w, "Home / About Me")
		fmt.Fprintln(w, "Welcome to my portfolio. Browse my projects, read the blog or get in touch.")
		fmt.Fprintln(w, "Try: projects, blog, contact.")
		return router.Rendered, nil
	}
}

func (p *Pages) Projects() router.Handler {
	return func(ctx context.Context, w io.Writer, _ *router.Request) (router.Result, error) {
		title(w, "Projects")

		projects, err := p.ProjectSource.ListProjects(ctx)
		if err != nil {
			p.Logger.Warn(ctx, "failed to load projects", "error", err)
			showError(w, "Could not load projects", err)
			return router.Rendered, nil
		}
		if len(projects) == 0 {
			fmt.Fprintln(w, "No projects yet.")
			return router.Rendered, nil
		}
		for _, pr := range projects {
			fmt.Fprintf(w, "* %s\n", pr.Title)
			if pr.Description != "" {
				fmt.Fprintf(w, "  %s\n", pr.Description)
			}
			if link := pr.Link(); link != "" {
				fmt.Fprintf(w, "  %s\n", link)
			}
		}
		return router.Rendered, nil
	}
}

func (p *Pages) BlogList() router.Handler {
	return func(ctx context.Context, w io.Writer, _ *router.Request) (router.Result, error) {
		title(w, "Blog")

		posts, err := p.Blog.List(ctx)
		if err != nil {
			p.Logger.Warn(ctx, "failed to load posts", "error", err)
			showError(w, "Could not load posts", err)
			return router.Rendered, nil
		}
		if len(posts) == 0 {
			fmt.Fprintln(w, "No posts yet.")
			return router.Rendered, nil
		}
		for _, post := range posts {
			fmt.Fprintf(w, "[%s] %s", post.ID, post.Title)
			if post.PublishedDate != "" {
				fmt.Fprintf(w, " (%s)", post.PublishedDate)
			}
			fmt.Fprintln(w)
			if s := services.Summary(post); s != "" {
				fmt.Fprintf(w, "    %s\n", s)
			}
		}
		fmt.Fprintln(w, "Open a post with: blog <id>")
		return router.Rendered, nil
	}
}

func (p *Pages) BlogDetail() router.Handler {
	return func(ctx context.Context, w io.Writer, req *router.Request) (router.Result, error) {
		post, err := p.Blog.Get(ctx, req.Param("id"))
		if err != nil {
			if errors.Is(err, api.ErrNotFound) {
				title(w, "Post not found")
				fmt.Fprintln(w, "This post does not exist.")
				return router.Rendered, nil
			}
			title(w, "Blog")
			showError(w, "Could not load post", err)
			return router.Rendered, nil
		}

		title(w, post.Title)
		if post.PublishedDate != "" {
			fmt.Fprintf(w, "Published %s\n", post.PublishedDate)
		}
		fmt.Fprintf(w, "\n%s\n\n", strings.TrimSpace(post.Content))

		fmt.Fprintf(w, "Comments (%d)\n", len(post.Comments))
		if len(post.Comments) == 0 {
			fmt.Fprintln(w, "  No comments yet.")
		}
		for _, c := range post.Comments {
			author := c.Author
			if author == "" {
				author = "anonymous"
			}
			fmt.Fprintf(w, "  %s: %s\n", author, c.Content)
		}

		if p.Session.State().IsAuthenticated {
			fmt.Fprintln(w, "Add a comment with: comment")
		} else {
			fmt.Fprintln(w, "Log in to leave a comment.")
		}
		return router.Rendered, nil
	}
}

// CommentForm adds a comment and returns to the post.
func (p *Pages) CommentForm() router.Handler {
	return func(ctx context.Context, w io.Writer, req *router.Request) (router.Result, error) {
		id := req.Param("id")
		back := router.RedirectTo(PathBlog+"/"+id, true)
		title(w, "New comment")

		text, err := p.Prompt.Multiline("Your comment")
		if err != nil {
			return router.Rendered, err
		}
		if strings.TrimSpace(text) == "" {
			fmt.Fprintln(w, "Comment discarded.")
			return back, nil
		}

		if _, err := p.Blog.Comment(ctx, id, text); err != nil {
			showError(w, "Could not post comment", err)
			return router.Rendered, nil
		}
		fmt.Fprintln(w, "Comment posted.")
		return back, nil
	}
}

func (p *Pages) ContactForm() router.Handler {
	return func(ctx context.Context, w io.Writer, _ *router.Request) (router.Result, error) {
		title(w, "Contact")

		var msg api.ContactMessage
		var err error
		if msg.Name, err = p.Prompt.Text("Name"); err != nil {
			return router.Rendered, err
		}
		if msg.Email, err = p.Prompt.Text("Email"); err != nil {
			return router.Rendered, err
		}
		if msg.Message, err = p.Prompt.Multiline("Message"); err != nil {
			return router.Rendered, err
		}

		if err := p.Contact.Send(ctx, msg); err != nil {
			showError(w, "Message not sent", err)
			return router.Rendered, nil
		}
		fmt.Fprintln(w, "Message sent. Thank you!")
		return router.Rendered, nil
	}
}

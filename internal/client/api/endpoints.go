package api

import (
	"context"
	"net/http"
)

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.write(ctx, http.MethodPost, req, &resp, "users", "login"); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.write(ctx, http.MethodPost, req, nil, "users", "register")
}

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	projects := make([]Project, 0)
	if err := c.get(ctx, &projects, "projects"); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject posts p and returns the server's copy. An empty response
// body yields p unchanged.
func (c *Client) CreateProject(ctx context.Context, p Project) (*Project, error) {
	created := p
	if err := c.write(ctx, http.MethodPost, p, &created, "projects"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateProject(ctx context.Context, p Project) (*Project, error) {
	if p.ID == "" {
		return nil, ErrMissingID
	}
	updated := p
	if err := c.write(ctx, http.MethodPut, p, &updated, "projects", p.ID); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	return c.write(ctx, http.MethodDelete, nil, nil, "projects", id)
}

func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	posts := make([]Post, 0)
	if err := c.get(ctx, &posts, "blog"); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var post Post
	if err := c.get(ctx, &post, "blog", id); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CreatePost(ctx context.Context, p Post) (*Post, error) {
	created := p
	if err := c.write(ctx, http.MethodPost, p, &created, "blog"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePost(ctx context.Context, p Post) (*Post, error) {
	if p.ID == "" {
		return nil, ErrMissingID
	}
	updated := p
	if err := c.write(ctx, http.MethodPut, p, &updated, "blog", p.ID); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	return c.write(ctx, http.MethodDelete, nil, nil, "blog", id)
}

func (c *Client) AddComment(ctx context.Context, postID, content string) (*Comment, error) {
	if postID == "" {
		return nil, ErrMissingID
	}
	comment := Comment{Content: content}
	if err := c.write(ctx, http.MethodPost, comment, &comment, "blog", postID, "comments"); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) SendContact(ctx context.Context, msg ContactMessage) error {
	return c.write(ctx, http.MethodPost, msg, nil, "contact")
}

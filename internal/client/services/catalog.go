package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/logging"
)

// Identified is an item addressed by a server-assigned ID.
type Identified interface {
	GetID() string
}

// Backend is the remote side of a Catalog.
type Backend[T Identified] struct {
	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, item T) (*T, error)
	Update func(ctx context.Context, item T) (*T, error)
	Delete func(ctx context.Context, id string) error

	// Validate, when set, runs before Create and Update.
	Validate func(item T) error
}

// Catalog is the locally held list behind an admin manager. The list is
// changed only after the matching API call succeeded, so a failed write
// leaves it exactly as it was.
type Catalog[T Identified] struct {
	mu      sync.RWMutex
	items   []T
	loaded  bool
	backend Backend[T]
	name    string
	logger  logging.Logger
}

func NewCatalog[T Identified](name string, b Backend[T], logger logging.Logger) *Catalog[T] {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Catalog[T]{name: name, backend: b, logger: logger}
}

// NewProjectCatalog binds a catalog to the /projects endpoints.
func NewProjectCatalog(c *api.Client, logger logging.Logger) *Catalog[api.Project] {
	return NewCatalog("projects", Backend[api.Project]{
		List:     c.ListProjects,
		Create:   c.CreateProject,
		Update:   c.UpdateProject,
		Delete:   c.DeleteProject,
		Validate: ValidateProject,
	}, logger)
}

// NewPostCatalog binds a catalog to the /blog endpoints.
func NewPostCatalog(c *api.Client, logger logging.Logger) *Catalog[api.Post] {
	return NewCatalog("posts", Backend[api.Post]{
		List:     c.ListPosts,
		Create:   c.CreatePost,
		Update:   c.UpdatePost,
		Delete:   c.DeletePost,
		Validate: ValidatePost,
	}, logger)
}

func ValidateProject(p api.Project) error {
	if common.Blank(p.Title) {
		return fmt.Errorf("%w: project title is required", common.ErrValidation)
	}
	return nil
}

func ValidatePost(p api.Post) error {
	if common.Blank(p.Title) || common.Blank(p.Content) {
		return fmt.Errorf("%w: post title and content are required", common.ErrValidation)
	}
	return nil
}

// Load replaces the list with the server's. On failure the previous list
// is kept.
func (c *Catalog[T]) Load(ctx context.Context) error {
	items, err := c.backend.List(ctx)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.name, err)
	}

	c.mu.Lock()
	c.items = slices.Clone(items)
	c.loaded = true
	c.mu.Unlock()

	c.logger.Debug(ctx, "catalog loaded", "catalog", c.name, "count", len(items))
	return nil
}

// Loaded reports whether a Load has succeeded at least once.
func (c *Catalog[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Items returns a copy of the list.
func (c *Catalog[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

func (c *Catalog[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Create stores item remotely and prepends the server's copy.
func (c *Catalog[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	if err := c.validate(item); err != nil {
		return zero, err
	}

	created, err := c.backend.Create(ctx, item)
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", c.name, err)
	}

	c.mu.Lock()
	c.items = slices.Insert(c.items, 0, *created)
	c.mu.Unlock()
	return *created, nil
}

// Update stores item remotely and replaces the entry with the same ID.
func (c *Catalog[T]) Update(ctx context.Context, item T) (T, error) {
	var zero T
	if item.GetID() == "" {
		return zero, fmt.Errorf("update %s: %w", c.name, api.ErrMissingID)
	}
	if err := c.validate(item); err != nil {
		return zero, err
	}

	updated, err := c.backend.Update(ctx, item)
	if err != nil {
		return zero, fmt.Errorf("update %s: %w", c.name, err)
	}

	c.mu.Lock()
	if i := c.index(item.GetID()); i >= 0 {
		c.items[i] = *updated
	}
	c.mu.Unlock()
	return *updated, nil
}

// Delete removes the item remotely, then locally.
func (c *Catalog[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete %s: %w", c.name, api.ErrMissingID)
	}
	if err := c.backend.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", c.name, err)
	}

	c.mu.Lock()
	if i := c.index(id); i >= 0 {
		c.items = slices.Delete(c.items, i, i+1)
	}
	c.mu.Unlock()
	return nil
}

func (c *Catalog[T]) validate(item T) error {
	if c.backend.Validate == nil {
		return nil
	}
	return c.backend.Validate(item)
}

func (c *Catalog[T]) index(id string) int {
	return slices.IndexFunc(c.items, func(it T) bool { return it.GetID() == id })
}

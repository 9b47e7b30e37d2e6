package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/client/session"
	"github.com/dmitrijs2005/folio/internal/common"
)

// SummaryLength is how many runes of content stand in for a missing summary.
const SummaryLength = 150

type BlogAPI interface {
	ListPosts(ctx context.Context) ([]api.Post, error)
	GetPost(ctx context.Context, id string) (*api.Post, error)
	AddComment(ctx context.Context, postID, content string) (*api.Comment, error)
}

type StateReader interface {
	State() session.State
}

type BlogService struct {
	api     BlogAPI
	session StateReader
}

func NewBlogService(a BlogAPI, s StateReader) *BlogService {
	return &BlogService{api: a, session: s}
}

func (s *BlogService) List(ctx context.Context) ([]api.Post, error) {
	posts, err := s.api.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (*api.Post, error) {
	post, err := s.api.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}
	return post, nil
}

// Comment adds a comment to a post on behalf of the logged-in user.
func (s *BlogService) Comment(ctx context.Context, postID, text string) (*api.Comment, error) {
	if !s.session.State().IsAuthenticated {
		return nil, common.ErrNotAuthenticated
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment is empty", common.ErrValidation)
	}

	c, err := s.api.AddComment(ctx, postID, text)
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return c, nil
}

// Summary is the post's own summary, or the start of its content.
func Summary(p api.Post) string {
	if s := strings.TrimSpace(p.Summary); s != "" {
		return s
	}
	return common.Truncate(strings.TrimSpace(p.Content), SummaryLength)
}

package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// fakeProjects is an in-memory projects backend with a switchable failure.
type fakeProjects struct {
	remote []api.Project
	fail   error
	nextID int
}

func (f *fakeProjects) backend() Backend[api.Project] {
	return Backend[api.Project]{
		List: func(context.Context) ([]api.Project, error) {
			if f.fail != nil {
				return nil, f.fail
			}
			return f.remote, nil
		},
		Create: func(_ context.Context, p api.Project) (*api.Project, error) {
			if f.fail != nil {
				return nil, f.fail
			}
			f.nextID++
			p.ID = "new" + strconv.Itoa(f.nextID)
			return &p, nil
		},
		Update: func(_ context.Context, p api.Project) (*api.Project, error) {
			if f.fail != nil {
				return nil, f.fail
			}
			return &p, nil
		},
		Delete: func(context.Context, string) error {
			return f.fail
		},
		Validate: ValidateProject,
	}
}

func loadedCatalog(t *testing.T, f *fakeProjects) *Catalog[api.Project] {
	t.Helper()
	f.remote = []api.Project{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}
	c := NewCatalog("projects", f.backend(), nil)
	require.NoError(t, c.Load(context.Background()))
	return c
}

func TestCatalog_Load(t *testing.T) {
	f := &fakeProjects{}
	c := loadedCatalog(t, f)
	assert.True(t, c.Loaded())
	assert.Len(t, c.Items(), 2)

	f.fail = errBoom
	require.ErrorIs(t, c.Load(context.Background()), errBoom)
	assert.Len(t, c.Items(), 2, "failed load keeps the previous list")
}

func TestCatalog_Create(t *testing.T) {
	f := &fakeProjects{}
	c := loadedCatalog(t, f)

	got, err := c.Create(context.Background(), api.Project{Title: "C"})
	require.NoError(t, err)
	assert.Equal(t, "new1", got.ID)

	want := []api.Project{{ID: "new1", Title: "C"}, {ID: "a", Title: "A"}, {ID: "b", Title: "B"}}
	if diff := cmp.Diff(want, c.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_Update(t *testing.T) {
	f := &fakeProjects{}
	c := loadedCatalog(t, f)

	_, err := c.Update(context.Background(), api.Project{ID: "b", Title: "B2"})
	require.NoError(t, err)

	p, ok := c.Find("b")
	require.True(t, ok)
	assert.Equal(t, "B2", p.Title)

	_, err = c.Update(context.Background(), api.Project{Title: "x"})
	require.ErrorIs(t, err, api.ErrMissingID)
}

func TestCatalog_Delete(t *testing.T) {
	f := &fakeProjects{}
	c := loadedCatalog(t, f)

	require.NoError(t, c.Delete(context.Background(), "a"))
	_, ok := c.Find("a")
	assert.False(t, ok)
	assert.Len(t, c.Items(), 1)
}

func TestCatalog_FailedWritesLeaveListUnchanged(t *testing.T) {
	f := &fakeProjects{}
	c := loadedCatalog(t, f)
	before := c.Items()
	ctx := context.Background()

	f.fail = errBoom
	_, err := c.Create(ctx, api.Project{Title: "C"})
	require.ErrorIs(t, err, errBoom)
	_, err = c.Update(ctx, api.Project{ID: "a", Title: "A2"})
	require.ErrorIs(t, err, errBoom)
	require.ErrorIs(t, c.Delete(ctx, "a"), errBoom)

	if diff := cmp.Diff(before, c.Items()); diff != "" {
		t.Errorf("items changed after failed writes (-before +after):\n%s", diff)
	}
}

func TestCatalog_Validation(t *testing.T) {
	f := &fakeProjects{}
	c := loadedCatalog(t, f)

	_, err := c.Create(context.Background(), api.Project{Title: "  "})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Zero(t, f.nextID)
}

func TestCatalog_ItemsIsACopy(t *testing.T) {
	c := loadedCatalog(t, &fakeProjects{})
	items := c.Items()
	items[0].Title = "mutated"

	p, _ := c.Find("a")
	assert.Equal(t, "A", p.Title)
}

func TestValidatePost(t *testing.T) {
	require.ErrorIs(t, ValidatePost(api.Post{Title: "t"}), common.ErrValidation)
	require.NoError(t, ValidatePost(api.Post{Title: "t", Content: "c"}))
}

func TestNewPostCatalog_OverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = io.WriteString(w, `[{"_id":"p1","title":"Hello","content":"World"}]`)
		case http.MethodDelete:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client, err := api.New(srv.URL, nil, api.WithRetry(1, 0))
	require.NoError(t, err)

	c := NewPostCatalog(client, nil)
	require.NoError(t, c.Load(context.Background()))
	require.Len(t, c.Items(), 1)

	err = c.Delete(context.Background(), "p1")
	require.ErrorIs(t, err, api.ErrRequestFailed)
	assert.Len(t, c.Items(), 1)
}

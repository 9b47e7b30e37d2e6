package router

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/folio/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNavigator(s StateReader) *Navigator {
	r := New()
	r.Handle("/", page("home"))
	r.Handle("/blog", page("blog"))
	r.Handle("/login", page("login"))
	r.Handle("/admin", page("admin"), RequireAuth(s, "/login"))
	return NewNavigator(r, nil)
}

func TestNavigator_GuardRedirectReplacesEntry(t *testing.T) {
	nav := newTestNavigator(fixedState{authenticated: false})
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, nav.Navigate(ctx, &buf, "/blog"))
	buf.Reset()

	require.NoError(t, nav.Navigate(ctx, &buf, "/admin"))
	assert.Equal(t, "login\n", buf.String())
	assert.NotContains(t, buf.String(), "admin")
	assert.Equal(t, "/login", nav.Current())
	assert.Equal(t, []string{"/blog", "/login"}, nav.History())

	buf.Reset()
	ok, err := nav.Back(ctx, &buf)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/blog", nav.Current(), "back skips the gated page")
	assert.Equal(t, "blog\n", buf.String())
}

func TestNavigator_LoggedInRendersGuardedPage(t *testing.T) {
	nav := newTestNavigator(fixedState{authenticated: true})

	var buf bytes.Buffer
	require.NoError(t, nav.Navigate(context.Background(), &buf, "/admin/"))
	assert.Equal(t, "admin\n", buf.String())
	assert.Equal(t, "/admin", nav.Current())
}

func TestNavigator_ReloadAfterLogoutRedirects(t *testing.T) {
	m := session.NewManager(nil, nil)
	ctx := context.Background()
	_, err := m.Login(ctx, session.Credentials{Email: "a@b.com"}, "tok")
	require.NoError(t, err)

	nav := newTestNavigator(m)
	var buf bytes.Buffer
	require.NoError(t, nav.Navigate(ctx, &buf, "/admin"))
	assert.Equal(t, "admin\n", buf.String())

	m.Logout(ctx)
	buf.Reset()
	require.NoError(t, nav.Reload(ctx, &buf))
	assert.Equal(t, "login\n", buf.String())
	assert.Equal(t, []string{"/login"}, nav.History())
}

func TestNavigator_PushRedirect(t *testing.T) {
	r := New()
	r.Handle("/old", func(context.Context, io.Writer, *Request) (Result, error) {
		return RedirectTo("/new", false), nil
	})
	r.Handle("/new", page("new"))
	nav := NewNavigator(r, nil)

	require.NoError(t, nav.Navigate(context.Background(), io.Discard, "/old"))
	assert.Equal(t, []string{"/old", "/new"}, nav.History())
}

func TestNavigator_RedirectLoopStops(t *testing.T) {
	r := New()
	r.Handle("/a", func(context.Context, io.Writer, *Request) (Result, error) { return RedirectTo("/b", true), nil })
	r.Handle("/b", func(context.Context, io.Writer, *Request) (Result, error) { return RedirectTo("/a", true), nil })
	nav := NewNavigator(r, nil)

	err := nav.Navigate(context.Background(), io.Discard, "/a")
	require.ErrorIs(t, err, ErrTooManyRedirects)
}

func TestNavigator_HandlerErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	r := New()
	r.Handle("/broken", func(context.Context, io.Writer, *Request) (Result, error) { return Rendered, boom })
	nav := NewNavigator(r, nil)

	err := nav.Navigate(context.Background(), io.Discard, "/broken")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "render /broken")
}

func TestNavigator_BackAndReloadOnEmptyHistory(t *testing.T) {
	nav := newTestNavigator(fixedState{})
	ctx := context.Background()

	ok, err := nav.Back(ctx, io.Discard)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, nav.Reload(ctx, io.Discard))
	assert.Empty(t, nav.History())
}

package pages

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/client/router"
	"github.com/dmitrijs2005/folio/internal/client/services"
	"github.com/dmitrijs2005/folio/internal/client/session"
	"github.com/stretchr/testify/require"
)

// scriptPrompter answers prompts from a fixed script.
type scriptPrompter struct {
	answers []string
	asked   []string
}

func (s *scriptPrompter) next(label string) (string, error) {
	s.asked = append(s.asked, label)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *scriptPrompter) Text(label string) (string, error) { return s.next(label) }
func (s *scriptPrompter) Password(label string) (string, error) { return s.next(label) }
func (s *scriptPrompter) Multiline(label string) (string, error) { return s.next(label) }

func (s *scriptPrompter) Confirm(label string) (bool, error) {
	a, err := s.next(label)
	return strings.EqualFold(a, "y"), err
}

// fakeBackend is an in-memory portfolio API.
type fakeBackend struct {
	mu       sync.Mutex
	projects []api.Project
	posts    []api.Post
	users    map[string]string
	failures map[string]int
	auth     []string
	seq      int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		projects: []api.Project{{ID: "p1", Title: "Folio", Description: "This site", URL: "https://folio.dev"}},
		posts: []api.Post{{
			ID:            "b1",
			Title:         "First post",
			Content:       strings.Repeat("lorem ", 40),
			PublishedDate: "2024-01-02",
			Comments:      []api.Comment{{Author: "bob", Content: "great"}},
		}},
		users:    map[string]string{"ann": "secret"},
		failures: map[string]int{},
	}
}

func (b *fakeBackend) fail(route string, code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[route] = code
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if pw, ok := b.users[req.Identifier]; !ok || pw != req.Password {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, api.LoginResponse{
			Token: "tok-" + req.Identifier,
			User:  api.UserInfo{ID: "u1", Username: req.Identifier, Email: req.Identifier + "@x.io"},
		})
	})
	mux.HandleFunc("POST /users/register", func(w http.ResponseWriter, r *http.Request) {
		var req api.RegisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.users[req.Username] = req.Password
		writeJSON(w, http.StatusCreated, map[string]string{"message": "ok"})
	})
	mux.HandleFunc("GET /projects", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, b.projects)
	})
	mux.HandleFunc("POST /projects", func(w http.ResponseWriter, r *http.Request) {
		var p api.Project
		_ = json.NewDecoder(r.Body).Decode(&p)
		b.seq++
		p.ID = fmt.Sprintf("p%d", 100+b.seq)
		b.projects = append(b.projects, p)
		writeJSON(w, http.StatusCreated, p)
	})
	mux.HandleFunc("PUT /projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		var p api.Project
		_ = json.NewDecoder(r.Body).Decode(&p)
		for i := range b.projects {
			if b.projects[i].ID == r.PathValue("id") {
				b.projects[i] = p
			}
		}
		writeJSON(w, http.StatusOK, p)
	})
	mux.HandleFunc("DELETE /projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		out := b.projects[:0]
		for _, p := range b.projects {
			if p.ID != r.PathValue("id") {
				out = append(out, p)
			}
		}
		b.projects = out
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /blog", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, b.posts)
	})
	mux.HandleFunc("POST /blog", func(w http.ResponseWriter, r *http.Request) {
		var p api.Post
		_ = json.NewDecoder(r.Body).Decode(&p)
		b.seq++
		p.ID = fmt.Sprintf("b%d", 100+b.seq)
		b.posts = append(b.posts, p)
		writeJSON(w, http.StatusCreated, p)
	})
	mux.HandleFunc("GET /blog/{id}", func(w http.ResponseWriter, r *http.Request) {
		for _, p := range b.posts {
			if p.ID == r.PathValue("id") {
				writeJSON(w, http.StatusOK, p)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Post not found"})
	})
	mux.HandleFunc("PUT /blog/{id}", func(w http.ResponseWriter, r *http.Request) {
		var p api.Post
		_ = json.NewDecoder(r.Body).Decode(&p)
		for i := range b.posts {
			if b.posts[i].ID == r.PathValue("id") {
				b.posts[i] = p
			}
		}
		writeJSON(w, http.StatusOK, p)
	})
	mux.HandleFunc("DELETE /blog/{id}", func(w http.ResponseWriter, r *http.Request) {
		out := b.posts[:0]
		for _, p := range b.posts {
			if p.ID != r.PathValue("id") {
				out = append(out, p)
			}
		}
		b.posts = out
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /blog/{id}/comments", func(w http.ResponseWriter, r *http.Request) {
		var c api.Comment
		_ = json.NewDecoder(r.Body).Decode(&c)
		c.Author = "ann"
		for i := range b.posts {
			if b.posts[i].ID == r.PathValue("id") {
				b.posts[i].Comments = append(b.posts[i].Comments, c)
			}
		}
		writeJSON(w, http.StatusCreated, c)
	})
	mux.HandleFunc("POST /contact", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "sent"})
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.auth = append(b.auth, r.Header.Get("Authorization"))

		_, pattern := mux.Handler(r)
		if code, ok := b.failures[pattern]; ok {
			writeJSON(w, code, map[string]string{"message": "backend failure"})
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func (b *fakeBackend) projectCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.projects)
}

func (b *fakeBackend) postCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.posts)
}

func (b *fakeBackend) authHeaders() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.auth...)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type harness struct {
	t       *testing.T
	backend *fakeBackend
	session *session.Manager
	prompt  *scriptPrompter
	pages   *Pages
	router  *router.Router
	nav     *router.Navigator
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	be := newFakeBackend()
	srv := httptest.NewServer(be.handler())
	t.Cleanup(srv.Close)

	sess := session.NewManager(nil, nil)
	client, err := api.New(srv.URL, sess, api.WithRetry(1, 0))
	require.NoError(t, err)

	prompt := &scriptPrompter{}
	p := New(Deps{
		Session:        sess,
		Auth:           services.NewAuthService(client, sess, nil),
		Blog:           services.NewBlogService(client, sess),
		Contact:        services.NewContactService(client),
		ProjectSource:  client,
		ProjectCatalog: services.NewProjectCatalog(client, nil),
		PostCatalog:    services.NewPostCatalog(client, nil),
		Prompt:         prompt,
	})

	r := router.New()
	p.Routes(r)

	return &harness{
		t:       t,
		backend: be,
		session: sess,
		prompt:  prompt,
		pages:   p,
		router:  r,
		nav:     router.NewNavigator(r, nil),
	}
}

func (h *harness) login() {
	h.t.Helper()
	_, err := h.session.Login(context.Background(), session.Credentials{ID: "u1", Username: "ann"}, "tok-ann")
	require.NoError(h.t, err)
}

// open navigates to path answering prompts with answers and returns the
// rendered output.
func (h *harness) open(path string, answers ...string) string {
	h.t.Helper()
	h.prompt.answers = answers
	var buf bytes.Buffer
	require.NoError(h.t, h.nav.Navigate(context.Background(), &buf, path))
	return buf.String()
}


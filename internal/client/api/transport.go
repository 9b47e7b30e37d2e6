package api

import (
	"net/http"

	"github.com/google/uuid"
)

// TokenSource yields the bearer token for the next request, "" for none.
type TokenSource interface {
	Token() string
}

const RequestIDHeader = "X-Request-ID"

// bearerTransport decorates every outbound request with the session's
// bearer token and a request ID. The caller's request is never mutated.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	r.Header.Del("Authorization")
	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if r.Header.Get(RequestIDHeader) == "" {
		r.Header.Set(RequestIDHeader, uuid.NewString())
	}
	if r.Header.Get("Accept") == "" {
		r.Header.Set("Accept", "application/json")
	}
	if r.Body != nil && r.Header.Get("Content-Type") == "" {
		r.Header.Set("Content-Type", "application/json")
	}

	return t.base.RoundTrip(r)
}

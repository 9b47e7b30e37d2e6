// Package api is the client of the portfolio REST API.
//
// Every request goes through bearerTransport, which attaches
// "Authorization: Bearer <token>" whenever the TokenSource (the session
// manager) holds a token, so no call site deals with credentials.
// GET requests are retried on transient failures with fortify's retry
// policy; writes are never retried.
//
// # Error Handling
//
// Failures map onto sentinel errors matched with errors.Is:
// ErrUnavailable (network failure, 502/503/504), ErrUnauthorized (401/403),
// ErrNotFound (404) and ErrRequestFailed (any other non-2xx). HTTP failures
// are returned as *StatusError carrying the code and the server's message.
package api

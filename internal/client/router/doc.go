// Package router maps logical paths ("/blog/:id") to page handlers, keeps
// the navigation history and interposes the authentication guard.
//
// A Handler renders a page to an io.Writer and returns a Result. The zero
// Result means the page was rendered; a non-empty RedirectTo asks the
// Navigator to go elsewhere, either pushing a new history entry or
// replacing the current one.
//
// RequireAuth is the route guard. It is a Middleware composed in front of
// a handler and decides synchronously, from the session state alone,
// whether the destination is rendered or replaced by a redirect to the
// login page.
package router

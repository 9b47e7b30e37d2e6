// Package cli provides the interactive folio command-line client.
//
// NewApp wires configuration, the SQLite-backed local storage, the session
// manager, the API client, the pages and the router. App.Run starts a
// read-eval-print loop that navigates between pages:
//
//   - home, projects, blog [id], contact
//   - login, register, logout, whoami
//   - admin, project new|edit|delete, post new|edit|delete
//   - open <path>, back, reload, exit
//
// Session changes re-render the header; logging out while a protected page
// is on screen re-renders it, which sends the user to the login page.
package cli

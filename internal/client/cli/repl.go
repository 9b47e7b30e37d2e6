package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/folio/internal/client/pages"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	current() string
	Open(ctx context.Context, path string) error
	Back(ctx context.Context) error
	Reload(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI() string
}

const (
	helpPublic = "Available commands: home, projects, blog [id], contact, login, register, open <path>, back, reload, whoami, exit"
	helpAuthed = "Available commands: home, projects, blog [id], comment, contact, admin, " +
		"project new|edit <id>|delete <id>, post new|edit <id>|delete <id>, open <path>, back, reload, whoami, logout, exit"
)

// runREPL starts a read-eval-print loop for the folio CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on a. Page commands are shortcuts for "open <path>".
// Errors returned by a are printed and the loop goes on. The loop exits on
// EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "folio%s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpAuthed)
			} else {
				fmt.Fprintln(w, helpPublic)
			}

		case "open", "go":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: open <path>")
				continue
			}
			err = a.Open(ctx, args[0])

		case "back":
			err = a.Back(ctx)

		case "reload":
			err = a.Reload(ctx)

		case "home":
			err = a.Open(ctx, pages.PathHome)

		case "projects":
			err = a.Open(ctx, pages.PathProjects)

		case "blog":
			path := pages.PathBlog
			if len(args) > 0 {
				path += "/" + args[0]
			}
			err = a.Open(ctx, path)

		case "comment":
			id, ok := postOnScreen(a.current())
			if !ok {
				fmt.Fprintln(w, "Open a post first: blog <id>")
				continue
			}
			err = a.Open(ctx, pages.PathBlog+"/"+id+"/comment")

		case "contact":
			err = a.Open(ctx, pages.PathContact)

		case "login":
			err = a.Open(ctx, pages.PathLogin)

		case "register":
			err = a.Open(ctx, pages.PathRegister)

		case "admin":
			err = a.Open(ctx, pages.PathAdmin)

		case "project", "post":
			path, ok := adminPath(cmd, args)
			if !ok {
				fmt.Fprintf(w, "Usage: %s new | %s edit <id> | %s delete <id>\n", cmd, cmd, cmd)
				continue
			}
			err = a.Open(ctx, path)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			fmt.Fprintln(w, a.WhoAmI())

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
			continue
		}

		if err != nil {
			fmt.Fprintln(w, "Error:", err)
		}
	}
}

// postOnScreen extracts the post ID when path is a blog post page.
func postOnScreen(path string) (string, bool) {
	id, ok := strings.CutPrefix(path, pages.PathBlog+"/")
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

func adminPath(kind string, args []string) (string, bool) {
	base := "/admin/projects"
	if kind == "post" {
		base = "/admin/blog"
	}
	if len(args) == 0 {
		return "", false
	}
	switch args[0] {
	case "new":
		return base + "/new", true
	case "edit", "delete":
		if len(args) < 2 {
			return "", false
		}
		return base + "/" + args[1] + "/" + args[0], true
	default:
		return "", false
	}
}

package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/client/config"
	"github.com/dmitrijs2005/folio/internal/client/localstore"
	"github.com/dmitrijs2005/folio/internal/client/pages"
	"github.com/dmitrijs2005/folio/internal/client/router"
	"github.com/dmitrijs2005/folio/internal/client/services"
	"github.com/dmitrijs2005/folio/internal/client/session"
	"github.com/dmitrijs2005/folio/internal/logging"
)

const retryInitialDelay = 200 * time.Millisecond

type App struct {
	config  *config.Config
	db      *sql.DB
	session *session.Manager
	auth    *services.AuthService
	router  *router.Router
	nav     *router.Navigator
	logger  logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// navigating is set while a page renders; session changes made by the
	// page are shown by the render itself.
	navigating  bool
	pending     *session.State
	unsubscribe func()
}

type Option func(*App)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.reader = bufio.NewReader(in)
		a.out = out
	}
}

func WithLogger(l logging.Logger) Option {
	return func(a *App) { a.logger = l }
}

// NewApp opens local storage, restores the session and wires the pages.
// When local storage cannot be opened the session lives in memory only.
// The caller must Close the App.
func NewApp(ctx context.Context, c *config.Config, opts ...Option) (*App, error) {
	a := &App{
		config: c,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logging.New(os.Stderr, c.LogLevel)
	}

	var store session.Storage
	db, err := localstore.Open(ctx, c.StoragePath)
	if err != nil {
		a.logger.Warn(ctx, "local storage unavailable, session kept in memory only", "path", c.StoragePath, "error", err)
	} else {
		a.db = db
		store = localstore.New(db)
	}

	a.session = session.NewManager(store, a.logger.With("component", "session"))
	a.session.Initialize(ctx)

	client, err := api.New(c.APIBaseURL, a.session,
		api.WithTimeout(c.RequestTimeout),
		api.WithRetry(c.RetryAttempts, retryInitialDelay),
		api.WithLogger(a.logger.With("component", "api")),
	)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.auth = services.NewAuthService(client, a.session, a.logger)
	p := pages.New(pages.Deps{
		Session:        a.session,
		Auth:           a.auth,
		Blog:           services.NewBlogService(client, a.session),
		Contact:        services.NewContactService(client),
		ProjectSource:  client,
		ProjectCatalog: services.NewProjectCatalog(client, a.logger),
		PostCatalog:    services.NewPostCatalog(client, a.logger),
		Prompt:         &terminalPrompter{reader: a.reader, w: a.out},
		Logger:         a.logger,
	})

	a.router = router.New()
	p.Routes(a.router)
	a.nav = router.NewNavigator(a.router, a.logger)
	a.unsubscribe = a.session.Subscribe(a.onSessionChange)

	return a, nil
}

// Run shows the home page and blocks in the REPL until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to folio (type 'help' for commands)")
	if err := a.Open(ctx, pages.PathHome); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

func (a *App) current() string {
	return a.nav.Current()
}

func (a *App) status() string {
	st := a.session.State()
	if !st.IsAuthenticated {
		return ""
	}
	return fmt.Sprintf(" (%s)", st.User.DisplayName())
}

// Open navigates to path.
func (a *App) Open(ctx context.Context, path string) error {
	a.navigating = true
	defer func() { a.navigating = false }()
	return a.nav.Navigate(ctx, a.out, path)
}

func (a *App) Back(ctx context.Context) error {
	a.navigating = true
	defer func() { a.navigating = false }()

	ok, err := a.nav.Back(ctx, a.out)
	if !ok {
		fmt.Fprintln(a.out, "Nothing to go back to.")
	}
	return err
}

func (a *App) Reload(ctx context.Context) error {
	a.navigating = true
	defer func() { a.navigating = false }()
	return a.nav.Reload(ctx, a.out)
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return a.settle(ctx)
}

func (a *App) WhoAmI() string {
	st := a.session.State()
	if !st.IsAuthenticated {
		return "Not logged in."
	}
	if st.User.Username != "" && st.User.Email != "" {
		return fmt.Sprintf("Logged in as %s (%s)", st.User.Username, st.User.Email)
	}
	return "Logged in as " + st.User.DisplayName()
}

func (a *App) onSessionChange(st session.State) {
	if a.navigating {
		return
	}
	a.pending = &st
}

// settle shows the effect of a session change made outside a page: a
// protected page on screen is rendered again so the guard can turn the
// user away, anything else just gets a fresh header.
func (a *App) settle(ctx context.Context) error {
	st := a.pending
	a.pending = nil
	if st == nil {
		return nil
	}

	if !st.IsAuthenticated && a.router.IsProtected(a.nav.Current()) {
		return a.Reload(ctx)
	}
	pages.Header(a.out, *st)
	return nil
}

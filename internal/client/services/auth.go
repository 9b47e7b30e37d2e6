package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/client/session"
	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/logging"
)

// AuthAPI is the part of the API client AuthService needs.
type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) error
}

// SessionManager is the part of session.Manager AuthService writes through.
type SessionManager interface {
	State() session.State
	Login(ctx context.Context, creds session.Credentials, token string) (session.State, error)
	Logout(ctx context.Context) session.State
}

// RegisterForm is the input of the registration page.
type RegisterForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

type AuthService struct {
	api     AuthAPI
	session SessionManager
	logger  logging.Logger
}

func NewAuthService(a AuthAPI, s SessionManager, logger logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &AuthService{api: a, session: s, logger: logger}
}

// Login authenticates against the API and, on success, opens the session.
// Any failure leaves the session as it was.
func (a *AuthService) Login(ctx context.Context, identifier, password string) (session.State, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return a.session.State(), fmt.Errorf("%w: identifier and password are required", common.ErrValidation)
	}

	resp, err := a.api.Login(ctx, api.LoginRequest{Identifier: identifier, Password: password})
	if err != nil {
		a.logger.Debug(ctx, "login rejected", "identifier", identifier, "error", err)
		return a.session.State(), fmt.Errorf("login: %w", err)
	}

	creds := session.Credentials{
		ID:       resp.User.ID,
		Email:    resp.User.Email,
		Username: resp.User.Username,
	}
	if creds.Email == "" && creds.Username == "" {
		if strings.Contains(identifier, "@") {
			creds.Email = identifier
		} else {
			creds.Username = identifier
		}
	}

	st, err := a.session.Login(ctx, creds, resp.Token)
	if err != nil {
		return st, fmt.Errorf("login: %w", err)
	}
	return st, nil
}

// Register creates an account. It never opens a session.
func (a *AuthService) Register(ctx context.Context, f RegisterForm) error {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)

	switch {
	case f.Username == "" || f.Email == "" || f.Password == "":
		return fmt.Errorf("%w: username, email and password are required", common.ErrValidation)
	case !strings.Contains(f.Email, "@"):
		return fmt.Errorf("%w: invalid email address", common.ErrValidation)
	case f.Password != f.ConfirmPassword:
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}

	err := a.api.Register(ctx, api.RegisterRequest{
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password,
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	a.logger.Info(ctx, "account registered", "username", f.Username)
	return nil
}

func (a *AuthService) Logout(ctx context.Context) session.State {
	return a.session.Logout(ctx)
}

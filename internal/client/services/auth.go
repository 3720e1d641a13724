// Package services contains application services for the recipe client.
// This file defines the authentication service: the identity probe, login,
// registration, logout and persistence of the session between runs.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/cookbook/internal/client/client"
	"github.com/dmitrijs2005/cookbook/internal/client/models"
	"github.com/dmitrijs2005/cookbook/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/cookbook/internal/dbx"
	"github.com/dmitrijs2005/cookbook/internal/logging"
)

const (
	sessionKey      = "session_cookies"
	lastUsernameKey = "last_username"
)

// AuthService defines session operations for the client.
//
// Contract:
//   - Restore: reinstall the session saved by a previous run, if any.
//   - Current: ask the server who the session belongs to; nil means anonymous.
//   - Login / Register: open a session and persist it locally.
//   - Logout: close the session on the server, then forget it locally.
//   - LastUsername: the username of the last successful login.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Restore(ctx context.Context) error
	Current(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, c models.Credentials) (*models.User, error)
	Register(ctx context.Context, r models.Registration) (*models.User, error)
	Logout(ctx context.Context) error
	LastUsername(ctx context.Context) (string, error)
}

// authService is the concrete AuthService backed by the API client and the
// local preferences database.
type authService struct {
	client client.Client
	db     *sql.DB
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client client.Client, db *sql.DB, logger logging.Logger) AuthService {
	return &authService{client: client, db: db, logger: logger}
}

func (a *authService) getPreferencesRepo() preferences.Repository {
	return preferences.NewSQLiteRepository(a.db)
}

type savedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Path  string `json:"path,omitempty"`
}

func (a *authService) Restore(ctx context.Context) error {
	raw, ok, err := a.getPreferencesRepo().Get(ctx, sessionKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return nil
	}

	var saved []savedCookie
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		a.logger.Warn(ctx, "discarding unreadable saved session", "error", err)
		return a.getPreferencesRepo().Delete(ctx, sessionKey)
	}

	cookies := make([]*http.Cookie, 0, len(saved))
	for _, c := range saved {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: c.Path})
	}
	a.client.SetCookies(cookies)
	return nil
}

// Current probes the session. A session the server no longer accepts is
// removed from local storage.
func (a *authService) Current(ctx context.Context) (*models.User, error) {
	u, err := a.client.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("identity probe: %w", err)
	}
	if u == nil {
		if err := a.getPreferencesRepo().Delete(ctx, sessionKey); err != nil {
			a.logger.Warn(ctx, "failed to drop stale session", "error", err)
		}
	}
	return u, nil
}

func (a *authService) Login(ctx context.Context, c models.Credentials) (*models.User, error) {
	u, err := a.client.Login(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	a.persist(ctx, u)
	return u, nil
}

func (a *authService) Register(ctx context.Context, r models.Registration) (*models.User, error) {
	u, err := a.client.Register(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	a.persist(ctx, u)
	return u, nil
}

// persist saves the session cookies and the username in one transaction.
// Failing to persist only costs the session on the next run, so it is logged.
func (a *authService) persist(ctx context.Context, u *models.User) {
	cookies := a.client.Cookies()
	saved := make([]savedCookie, 0, len(cookies))
	for _, c := range cookies {
		saved = append(saved, savedCookie{Name: c.Name, Value: c.Value, Path: c.Path})
	}
	data, err := json.Marshal(saved)
	if err != nil {
		a.logger.Warn(ctx, "failed to encode session", "error", err)
		return
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := preferences.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, sessionKey, string(data)); err != nil {
			return err
		}
		return repo.Set(ctx, lastUsernameKey, u.Username)
	})
	if err != nil {
		a.logger.Warn(ctx, "failed to persist session", "error", err)
	}
}

// Logout closes the session on the server. Once the server has accepted it
// the logout has happened: failing to forget the local copy is only logged,
// and the next run drops the stale cookie at the identity probe.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		return fmt.Errorf("logout error: %w", err)
	}
	a.client.SetCookies(expired(a.client.Cookies()))
	a.forget(ctx)
	return nil
}

// forget removes the saved session and the last username in one transaction.
func (a *authService) forget(ctx context.Context) {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := preferences.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, sessionKey); err != nil {
			return err
		}
		return repo.Delete(ctx, lastUsernameKey)
	})
	if err != nil {
		a.logger.Warn(ctx, "failed to forget session", "error", err)
	}
}

func (a *authService) LastUsername(ctx context.Context) (string, error) {
	v, _, err := a.getPreferencesRepo().Get(ctx, lastUsernameKey)
	return v, err
}

// expired returns copies of cookies that make the jar drop them.
func expired(cookies []*http.Cookie) []*http.Cookie {
	out := make([]*http.Cookie, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, &http.Cookie{Name: c.Name, Value: "", Path: c.Path, MaxAge: -1})
	}
	return out
}

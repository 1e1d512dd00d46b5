// Package auth signs users in and out against the travel API and keeps the
// store and the persisted session in step. The persisted session is a cache,
// never the source of truth: re-read on startup, overwritten on login,
// deleted on logout.
package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asimmohammad/corptravel/models"
	"github.com/asimmohammad/corptravel/services/store"
	"github.com/asimmohammad/corptravel/utils"
)

// API is the slice of the travel client the sign-in flow needs.
type API interface {
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)
	Register(ctx context.Context, email, password string) (models.LoginResponse, error)
}

// Flow drives sign-in, sign-out, and session resumption.
type Flow struct {
	API      API
	Store    *store.Store
	Sessions utils.SessionStore
	Logger   *zap.Logger
}

// Resume loads a previously persisted session into the store. It returns the
// restored user, or nil when no session is persisted.
func (f *Flow) Resume() (*models.User, error) {
	user, err := f.Sessions.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to resume session: %w", err)
	}
	if user == nil {
		return nil, nil
	}
	f.Store.Login(*user)
	return user, nil
}

// Login authenticates, installs the identity in the store, and persists it.
func (f *Flow) Login(ctx context.Context, email, password string) (models.User, error) {
	resp, err := f.API.Login(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	return f.install(email, resp), nil
}

// Register creates an account and signs the new user in.
func (f *Flow) Register(ctx context.Context, email, password string) (models.User, error) {
	resp, err := f.API.Register(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	return f.install(email, resp), nil
}

// install records the signed-in user. A persistence failure does not fail the
// login; the session survives in memory either way.
func (f *Flow) install(email string, resp models.LoginResponse) models.User {
	user := models.User{Email: email, Role: resp.Role, Token: resp.AccessToken}
	f.Store.Login(user)
	if err := f.Sessions.Save(user); err != nil && f.Logger != nil {
		f.Logger.Warn("failed to persist session", zap.Error(err))
	}
	return user
}

// Logout clears the in-memory session and cart and deletes the persisted
// session.
func (f *Flow) Logout() error {
	f.Store.Logout()
	if err := f.Sessions.Clear(); err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}
	return nil
}

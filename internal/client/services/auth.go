// Package services contains application services for the PayTrack client.
// This file defines the authentication service: login, registration, session
// restore and logout against the persisted session store.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SaraBabic/PayTrackApp/internal/client/api"
	"github.com/SaraBabic/PayTrackApp/internal/client/models"
	"github.com/SaraBabic/PayTrackApp/internal/client/session"
)

// ErrNoSession means no usable session is persisted: the user must log in.
var ErrNoSession = errors.New("no active session")

// AuthService manages the login session.
//
// Contract:
//   - Login: authenticate, persist token + profile, arm the API client.
//   - Register: create an account; does not log in.
//   - Restore: on startup, re-arm the API client from the persisted session.
//   - CurrentUser: the persisted profile, or ErrNoSession.
//   - Logout: clear both persisted entries and disarm the API client.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, username, password string) error
	Restore(ctx context.Context) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	repo   session.Repository
	now    func() time.Time
}

// NewAuthService constructs an AuthService bound to the given API client and
// session repository.
func NewAuthService(client api.Client, repo session.Repository) AuthService {
	return &authService{client: client, repo: repo, now: time.Now}
}

// Login authenticates against the server and persists the returned token and
// user profile so the session survives restarts.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	sess, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	profile, err := json.Marshal(sess.User)
	if err != nil {
		return nil, fmt.Errorf("profile serialization error: %w", err)
	}

	if err := a.repo.Set(ctx, session.KeyToken, []byte(sess.Token)); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	if err := a.repo.Set(ctx, session.KeyUser, profile); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	return &sess.User, nil
}

// Register creates a new account on the server. The user still has to log in
// afterwards; no session is persisted here.
func (a *authService) Register(ctx context.Context, email, username, password string) error {
	return a.client.Register(ctx, email, username, password)
}

// Restore loads the persisted session, verifies it has not expired, and
// attaches the token to the API client. Returns the stored profile, or
// ErrNoSession if nothing usable is persisted.
func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	user, err := a.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	token, err := a.repo.Get(ctx, session.KeyToken)
	if err != nil {
		return nil, err
	}
	a.client.SetToken(string(token))

	return user, nil
}

// CurrentUser returns the persisted profile. A missing profile, a missing
// token, or a token whose exp claim is in the past all count as no session;
// an expired session is cleared before returning.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	token, err := a.repo.Get(ctx, session.KeyToken)
	if err != nil {
		return nil, err
	}
	profile, err := a.repo.Get(ctx, session.KeyUser)
	if err != nil {
		return nil, err
	}
	if token == nil || profile == nil {
		return nil, ErrNoSession
	}

	if tokenExpired(string(token), a.now()) {
		if err := a.repo.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, ErrNoSession
	}

	var user models.User
	if err := json.Unmarshal(profile, &user); err != nil {
		return nil, fmt.Errorf("stored profile is corrupt: %w", err)
	}
	return &user, nil
}

// Logout clears both persisted session entries and detaches the token from
// the API client.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.repo.Clear(ctx); err != nil {
		return err
	}
	a.client.SetToken("")
	return nil
}

// tokenExpired reports whether token is a JWT with an exp claim in the past.
// The client holds no signing key, so the claim is read unverified; tokens
// that are not JWTs (or carry no exp) are treated as opaque and still valid.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

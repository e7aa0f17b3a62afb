// Package session owns the single process-wide session state of the console.
//
// The state machine is small: anonymous -> loading (init or login/signup in
// flight) -> authenticated, or back to anonymous on logout or failure. Every
// transition replaces the whole State value at once; no field is ever mutated
// in place, so observers can never read a half-updated session.
package session

import (
	"context"

	"github.com/csyeteam03/trace-console/internal/client/api"
	"github.com/csyeteam03/trace-console/internal/client/models"
	"github.com/csyeteam03/trace-console/internal/logging"
)

// SessionExpiredMessage is surfaced when a stored token exists but the
// session can no longer be verified.
const SessionExpiredMessage = "Session expired. Please login again."

// State is a snapshot of the session.
type State struct {
	Authenticated bool
	User          *models.User
	Loading       bool
	Err           string
}

// Store is the slice of the credential store the controller drives.
type Store interface {
	IsAuthenticated() bool
	User() *models.User
	Clear() error
}

// Controller is the only writer of session state and of the credential store
// (which it delegates to the auth module). Views read State() and call the
// operation methods; they never mutate anything themselves.
type Controller struct {
	store Store
	auth  api.AuthAPI
	log   logging.Logger

	state State
}

// NewController snapshots the store synchronously: a previously persisted
// session shows as authenticated immediately, pending Init's verification.
func NewController(store Store, auth api.AuthAPI, log logging.Logger) *Controller {
	c := &Controller{
		store: store,
		auth:  auth,
		log:   log.With("component", "session"),
	}
	c.state = State{
		Authenticated: store.IsAuthenticated(),
		User:          store.User(),
		Loading:       true,
	}
	return c
}

// State returns the current session snapshot.
func (c *Controller) State() State {
	return c.state
}

// Init verifies a persisted session at startup. With no stored token it just
// leaves the loading state; with one, a failed verification clears the store
// and reports the session as expired.
func (c *Controller) Init(ctx context.Context) {
	if !c.store.IsAuthenticated() {
		s := c.state
		s.Loading = false
		c.state = s
		return
	}

	user, err := c.auth.CurrentUser(ctx)
	if err != nil || user == nil {
		if err != nil {
			c.log.Warn(ctx, "session verification failed", "error", err)
		}
		_ = c.store.Clear()
		c.state = State{Err: SessionExpiredMessage}
		return
	}

	c.state = State{Authenticated: true, User: user}
}

// Login authenticates with the given credentials. On failure the store is
// already cleared by the auth module; the state returns to anonymous with the
// failure message recorded, and the error is returned so the initiating view
// can react as well.
func (c *Controller) Login(ctx context.Context, creds models.Credentials) error {
	c.state = State{Loading: true}

	user, err := c.auth.Login(ctx, creds)
	if err != nil {
		c.state = State{Err: err.Error()}
		return err
	}

	c.log.Info(ctx, "login successful", "username", user.Username)
	c.state = State{Authenticated: true, User: user}
	return nil
}

// Signup creates the account and, on success, immediately logs in with the
// same credentials; signup by itself never establishes a session.
func (c *Controller) Signup(ctx context.Context, req models.UserRequest) error {
	c.state = State{Loading: true}

	if _, err := c.auth.SignUp(ctx, req); err != nil {
		c.state = State{Err: err.Error()}
		return err
	}

	return c.Login(ctx, models.Credentials{Username: req.Username, Password: req.Password})
}

// Logout clears the store and resets to anonymous. No server call.
func (c *Controller) Logout() {
	_ = c.store.Clear()
	c.state = State{}
}

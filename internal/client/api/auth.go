package api

import (
	"context"
	"strings"
	"time"

	"github.com/csyeteam03/trace-console/internal/client/models"
)

// CredentialStore is the slice of the credential store the auth module needs.
type CredentialStore interface {
	SetToken(creds models.Credentials) error
	SetUser(u models.User) error
	User() *models.User
	Clear() error
}

// AuthAPI groups the account operations.
type AuthAPI interface {
	SignUp(ctx context.Context, req models.UserRequest) (*models.User, error)
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

// AuthClient implements AuthAPI against the remote API and the local
// credential store. It is the only resource module that writes the store.
type AuthClient struct {
	gw    *Gateway
	store CredentialStore
}

func NewAuthClient(gw *Gateway, store CredentialStore) *AuthClient {
	return &AuthClient{gw: gw, store: store}
}

// SignUp creates the account. It does not establish a session; callers chain
// into Login with the same credentials.
func (c *AuthClient) SignUp(ctx context.Context, req models.UserRequest) (*models.User, error) {
	var user models.User
	if err := c.gw.PostJSON(ctx, "/v1/user", req, &user); err != nil {
		if HasStatus(err, 409) {
			return nil, ErrUserExists
		}
		return nil, messageOr(err, "An error occurred during signup")
	}
	return &user, nil
}

// Login verifies the credentials and establishes the stored session.
//
// The server has no dedicated login endpoint, so the credentials are stored
// speculatively and probed against a protected list endpoint: any 2xx proves
// them valid. The returned User is synthesized from the submitted username
// because the probe returns no user object. A known limitation, not a
// contract to deepen; switch to a real login endpoint if the server grows one.
func (c *AuthClient) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	if err := c.store.SetToken(creds); err != nil {
		return nil, err
	}

	if err := c.gw.GetJSON(ctx, "/v1/instructors", nil); err != nil {
		// Any failure invalidates the speculative token.
		_ = c.store.Clear()

		if HasStatus(err, 401) {
			return nil, ErrInvalidCredentials
		}
		return nil, messageOr(err, "Authentication failed")
	}

	user := userFromCredentials(creds)
	if err := c.store.SetUser(*user); err != nil {
		return nil, err
	}
	return user, nil
}

// CurrentUser returns the persisted user record, or nil when no session has
// ever been established.
func (c *AuthClient) CurrentUser(ctx context.Context) (*models.User, error) {
	return c.store.User(), nil
}

// userFromCredentials fabricates the session's user record: the first name is
// best-effort derived from the local part of the email.
func userFromCredentials(creds models.Credentials) *models.User {
	first := creds.Username
	if i := strings.Index(first, "@"); i >= 0 {
		first = first[:i]
	}
	if first == "" {
		first = "User"
	}
	now := time.Now().UTC().Format(time.RFC3339)
	return &models.User{
		UserID:         "authenticated-user",
		FirstName:      first,
		LastName:       "",
		Username:       creds.Username,
		AccountCreated: now,
		AccountUpdated: now,
	}
}

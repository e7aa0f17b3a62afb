package credstore

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csyeteam03/trace-console/internal/client/models"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "auth.json"))
	require.NoError(t, err)
	return s
}

func TestSetToken_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		creds models.Credentials
	}{
		{"plain", models.Credentials{Username: "alice@example.org", Password: "secret"}},
		{"password with colon", models.Credentials{Username: "bob@example.org", Password: "a:b:c"}},
		{"unicode password", models.Credentials{Username: "eve@example.org", Password: "пароль"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newStore(t)
			require.NoError(t, s.SetToken(tc.creds))

			tok := s.Token()
			require.NotEmpty(t, tok)

			decoded, err := base64.StdEncoding.DecodeString(tok)
			require.NoError(t, err)
			require.Equal(t, tc.creds.Username+":"+tc.creds.Password, string(decoded))
		})
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")

	s, err := Open(path)
	require.NoError(t, err)
	creds := models.Credentials{Username: "alice@example.org", Password: "secret"}
	require.NoError(t, s.SetToken(creds))
	require.NoError(t, s.SetUser(models.User{UserID: "u1", Username: creds.Username}))

	reopened, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, s.Token(), reopened.Token())
	require.NotNil(t, reopened.User())
	require.Equal(t, "u1", reopened.User().UserID)
	require.True(t, reopened.IsAuthenticated())
}

func TestClear_RemovesEverything(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SetToken(models.Credentials{Username: "a@b.c", Password: "p"}))
	require.NoError(t, s.SetUser(models.User{UserID: "u1"}))
	require.True(t, s.IsAuthenticated())

	require.NoError(t, s.Clear())

	require.False(t, s.IsAuthenticated())
	require.Empty(t, s.Token())
	require.Nil(t, s.User())
	require.Nil(t, s.Credentials())

	// Clearing twice must not fail even though the file is gone.
	require.NoError(t, s.Clear())
}

func TestIsAuthenticated_RequiresTokenAndUser(t *testing.T) {
	s := newStore(t)
	require.False(t, s.IsAuthenticated())

	require.NoError(t, s.SetToken(models.Credentials{Username: "a@b.c", Password: "p"}))
	require.False(t, s.IsAuthenticated(), "token alone is not a session")

	require.NoError(t, s.SetUser(models.User{UserID: "u1"}))
	require.True(t, s.IsAuthenticated())
}

func TestOpen_MissingFileIsEmptyStore(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nope", "auth.json"))
	require.NoError(t, err)
	require.False(t, s.IsAuthenticated())
}

func TestOpen_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Open(path)
	require.Error(t, err)
}

func TestStore_FileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken(models.Credentials{Username: "a@b.c", Password: "p"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

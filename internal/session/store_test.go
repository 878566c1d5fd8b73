package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accommotrack/client-go/internal/models"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	user := models.User{ID: 1, Role: models.RoleTenant, FirstName: "Ana", Email: "ana@example.com"}

	s := NewStore(dir)
	require.NoError(t, s.Init())
	require.NoError(t, s.SetSession("tok-123", user))
	require.NoError(t, s.SetPreferences(Preferences{FontSize: "large", Theme: "dark"}))

	// A fresh boot reads everything back.
	s2 := NewStore(dir)
	require.NoError(t, s2.Init())
	assert.Equal(t, "tok-123", s2.Token())
	require.NotNil(t, s2.User())
	assert.Equal(t, "Ana", s2.User().FirstName)
	assert.Equal(t, Preferences{FontSize: "large", Theme: "dark"}, s2.Preferences())
}

func TestStore_LogoutClearsSessionButKeepsPreferences(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	require.NoError(t, s.Init())
	require.NoError(t, s.SetSession("tok", models.User{ID: 1}))
	require.NoError(t, s.SetPreferences(Preferences{FontSize: "small", Theme: "dark"}))

	require.NoError(t, s.Logout())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())

	s2 := NewStore(dir)
	require.NoError(t, s2.Init())
	assert.Empty(t, s2.Token())
	assert.Nil(t, s2.User())
	assert.Equal(t, "dark", s2.Preferences().Theme, "UI preferences survive logout")
}

func TestStore_DefaultsWhenNothingPersisted(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Init())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
	assert.Equal(t, Preferences{FontSize: "medium", Theme: "light"}, s.Preferences())
}

func TestStore_TokenExpired(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Init())
	assert.True(t, s.TokenExpired(), "no token means expired")

	require.NoError(t, s.SetSession(signedToken(t, time.Now().Add(time.Hour)), models.User{ID: 1}))
	assert.False(t, s.TokenExpired())

	require.NoError(t, s.SetSession(signedToken(t, time.Now().Add(-time.Hour)), models.User{ID: 1}))
	assert.True(t, s.TokenExpired())

	require.NoError(t, s.SetSession("garbage", models.User{ID: 1}))
	assert.True(t, s.TokenExpired(), "unparseable token is treated as expired")
}

func TestStore_SetUserRefreshesCopy(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Init())
	require.NoError(t, s.SetSession("tok", models.User{ID: 1, FirstName: "Ana"}))

	u := s.User()
	u.FirstName = "Anna"
	require.NoError(t, s.SetUser(*u))
	assert.Equal(t, "Anna", s.User().FirstName)
	assert.Equal(t, "tok", s.Token(), "token untouched by a user refresh")
}

func TestStore_CorruptUserDataIsDiscarded(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	require.NoError(t, s.Init())
	require.NoError(t, s.SetSession("tok", models.User{ID: 1}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "userData"), []byte("{not json"), 0o600))

	s2 := NewStore(dir)
	require.NoError(t, s2.Init(), "corrupt values never block startup")
	assert.Nil(t, s2.User())
	assert.Equal(t, "tok", s2.Token())
}

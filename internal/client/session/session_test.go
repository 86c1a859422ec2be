package session

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/finkeeper/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestSession_SetUserAndClear(t *testing.T) {
	s := New()
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())

	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	s.SetUser(models.User{ID: "u1", Email: "a@b.c"}, signedToken(t, exp))

	assert.True(t, s.IsAuthenticated())
	require.NotNil(t, s.User())
	assert.Equal(t, "a@b.c", s.User().Email)
	assert.Equal(t, exp.UTC(), s.TokenExpiry().UTC())

	s.Clear()
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.True(t, s.TokenExpiry().IsZero())
}

func TestSession_UserReturnsCopy(t *testing.T) {
	s := New()
	s.SetUser(models.User{ID: "u1", Name: "Al"}, "")

	u := s.User()
	u.Name = "changed"

	assert.Equal(t, "Al", s.User().Name)
}

func TestSession_Loading(t *testing.T) {
	s := New()
	assert.False(t, s.IsLoading())
	s.SetLoading(true)
	assert.True(t, s.IsLoading())
	s.SetLoading(false)
	assert.False(t, s.IsLoading())
}

func Test_tokenExpiry(t *testing.T) {
	tests := []struct {
		name  string
		token string
		zero  bool
	}{
		{name: "empty token", token: "", zero: true},
		{name: "garbage token", token: "not-a-jwt", zero: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tokenExpiry(tt.token).IsZero())
		})
	}

	t.Run("valid token", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		got := tokenExpiry(signedToken(t, exp))
		assert.Equal(t, exp.UTC(), got.UTC())
	})
}

func TestSession_SetUserWithoutTokenKeepsExpiry(t *testing.T) {
	s := New()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	s.SetUser(models.User{ID: "u1", Email: "a@b.c"}, signedToken(t, exp))
	require.Equal(t, exp.UTC(), s.TokenExpiry().UTC())

	// An identity probe carries no token; the known expiry must survive.
	s.SetUser(models.User{ID: "u1", Email: "a@b.c"}, "")
	require.Equal(t, exp.UTC(), s.TokenExpiry().UTC())
}

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueParse(t *testing.T) {
	iss, err := NewAdminIssuer("s3cret", time.Minute)
	require.NoError(t, err)

	tok, exp, err := iss.Issue("ops")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Minute), exp, 5*time.Second)

	claims, err := iss.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "ops", claims.Subject)
	require.Equal(t, "users:write", claims.Scope)
}

func TestParseRejects(t *testing.T) {
	a, _ := NewAdminIssuer("one", time.Minute)
	b, _ := NewAdminIssuer("two", time.Minute)

	tok, _, err := a.Issue("ops")
	require.NoError(t, err)

	_, err = b.Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = a.Parse("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)

	// expirado, más allá de la tolerancia
	a.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := a.Issue("ops")
	require.NoError(t, err)
	a.now = time.Now
	_, err = a.Parse(old)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewAdminIssuerRequiresSecret(t *testing.T) {
	_, err := NewAdminIssuer("", time.Minute)
	require.ErrorIs(t, err, ErrNoSecret)
}

package main

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rengifo/usermanager/internal/config"
)

const wantDemo = `=== Testing with valid user ===
Saving user to the database...
Email: example@domain.com
Password: password123
Sending welcome email to example@domain.com
User successfully added and notified.

=== Testing with invalid email ===
Invalid email or password. User not added.

=== Testing with invalid password ===
Invalid email or password. User not added.

=== Testing with both invalid ===
Invalid email or password. User not added.
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("USERMANAGER_LOG_LEVEL", "off")
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootRunsDemo(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	require.Equal(t, wantDemo, out)
}

func TestDemoSubcommand(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	require.Equal(t, wantDemo, out)
}

func TestLegacySubcommand(t *testing.T) {
	out, err := run(t, "legacy")
	require.NoError(t, err)
	require.Contains(t, out, "=== Testing with valid user ===\n Saving user to the database...\n")
	require.NotContains(t, out, "User successfully added and notified.")
}

func TestAddSubcommand(t *testing.T) {
	out, err := run(t, "add", "--email", "valid@email.com", "--password", "1234")
	require.NoError(t, err)
	require.Equal(t, "Invalid email or password. User not added.\n", out)
}

func TestTokenRequiresSecret(t *testing.T) {
	_, err := run(t, "token")
	require.Error(t, err)

	t.Setenv("USERMANAGER_ADMIN_SECRET", "s3cret")
	out, err := run(t, "token", "--subject", "ops")
	require.NoError(t, err)
	require.Regexp(t, `^[\w-]+\.[\w-]+\.[\w-]+\n$`, out)
}

func TestMalformedAdminTTLFailsBeforeAnyCommand(t *testing.T) {
	t.Setenv("USERMANAGER_ADMIN_SECRET", "s3cret")
	t.Setenv("USERMANAGER_ADMIN_TTL", "una hora")
	for _, args := range [][]string{{"token"}, {"serve", "--addr", "127.0.0.1:0"}} {
		_, err := run(t, args...)
		require.ErrorIs(t, err, config.ErrInvalid, args)
	}
}

func TestMigrateOnConsoleIsNotSupported(t *testing.T) {
	_, err := run(t, "migrate")
	require.Error(t, err)
}

func TestEncryptSubcommand(t *testing.T) {
	t.Setenv("USERMANAGER_MASTER_KEY", base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{3}, 32)))
	out, err := run(t, "encrypt", "smtp-pass")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "enc:"))

	// el valor cifrado vuelve a cargarse como secreto
	t.Setenv("SMTP_PASSWORD", strings.TrimSpace(out))
	_, err = run(t, "add", "--email", "invalid-email", "--password", "123")
	require.NoError(t, err)
}

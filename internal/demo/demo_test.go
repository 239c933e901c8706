package demo_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rengifo/usermanager/internal/demo"
	"github.com/rengifo/usermanager/internal/legacy"
	"github.com/rengifo/usermanager/internal/users"
)

const wantRefactored = `=== Testing with valid user ===
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

func TestRunRefactored(t *testing.T) {
	var buf bytes.Buffer
	m := users.NewDefault(&buf)

	err := demo.Run(context.Background(), &buf, func(ctx context.Context, email, password string) error {
		_, err := m.AddUser(ctx, email, password)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, wantRefactored, buf.String())
}

func TestRunLegacy(t *testing.T) {
	var buf bytes.Buffer
	m := legacy.NewUserManager(&buf)

	err := demo.Run(context.Background(), &buf, func(_ context.Context, email, password string) error {
		m.AddUser(email, password)
		return nil
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "=== Testing with valid user ===\n Saving user to the database...\n")
	require.Contains(t, buf.String(), "=== Testing with both invalid ===\n Invalid email or password. User not added.\n")
}

func TestRunStopsOnError(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")
	n := 0
	err := demo.Run(context.Background(), &buf, func(context.Context, string, string) error {
		n++
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, n)
}

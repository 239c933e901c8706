package migrations

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrdered(t *testing.T) {
	files, err := Ordered()
	require.NoError(t, err)
	require.NotEmpty(t, files)
	require.Equal(t, "0001_app_user.sql", files[0].Name)
	require.Contains(t, files[0].SQL, "CREATE TABLE IF NOT EXISTS app_user")
}

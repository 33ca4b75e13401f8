//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dklebine/productioncalculator/internal/testutil"
)

// One container serves every integration test of the package; each test gets its own database.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

func openTestDB(t *testing.T) *MongoDB {
	t.Helper()
	db, err := NewMongoDB(testutil.SharedDatabase(t))
	require.NoError(t, err)
	return db
}

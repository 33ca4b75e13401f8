//go:build integration

package app

import (
	"context"
	"os"
	"testing"

	"github.com/dklebine/productioncalculator/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

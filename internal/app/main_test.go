//go:build integration

package app

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/flashe-service/internal/testutil"
)

// TestMain shares one MongoDB container across the package's integration tests.
func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithMongoDB(context.Background(), m))
}

//go:build integration

// Package testutil runs a throwaway MongoDB for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const mongoImage = "mongo:7.0"

// MongoDBContainer is a running MongoDB container.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// StartMongoDB starts a MongoDB container and returns its connection URI.
func StartMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}
	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Terminate stops the container.
func (m *MongoDBContainer) Terminate(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate mongodb container: %w", err)
	}
	return nil
}

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
)

// RunWithMongoDB starts one container for the whole package, runs the tests
// and tears the container down. Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithMongoDB(context.Background(), m))
//	}
func RunWithMongoDB(ctx context.Context, m *testing.M) int {
	sharedOnce.Do(func() {
		shared, sharedErr = StartMongoDB(ctx)
	})
	if sharedErr != nil {
		_, _ = fmt.Fprintf(os.Stderr, "mongodb container: %v\n", sharedErr)
		return 1
	}

	code := m.Run()

	if err := shared.Terminate(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return code
}

// MongoURI returns the URI of the package's shared container.
func MongoURI() string {
	if shared == nil {
		panic("testutil: shared mongodb not started, call RunWithMongoDB from TestMain")
	}
	return shared.URI
}

// DatabaseName turns a test name into a unique database name. MongoDB caps
// names at 64 bytes and rejects path separators, dots and spaces.
func DatabaseName(testName string) string {
	var b strings.Builder
	for _, r := range testName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
		if b.Len() >= 48 {
			break
		}
	}
	return fmt.Sprintf("%s_%06d", b.String(), time.Now().UnixNano()%1_000_000)
}

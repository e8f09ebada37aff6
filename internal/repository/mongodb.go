// Package repository stores catalog snapshots and the request journal in MongoDB.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	CatalogsCollection = "catalogs"
	LogsCollection     = "logs"
)

const logsTTLIndexName = "timestamp_ttl"

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	// EnableCompression turns on wire compression (zstd, snappy, zlib).
	EnableCompression bool
}

// DefaultMongoConfig returns the pool settings used in production. The
// storefront's load is small, so the pool is kept modest.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            20,
		MinPoolSize:            2,
		MaxConnIdleTime:        5 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          15 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB holds the client and the collections the service uses.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Catalogs *mongo.Collection
	Logs     *mongo.Collection
}

// NewMongoDB connects with DefaultMongoConfig.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings and ensures indexes.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)
	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:   client,
		Database: db,
		Catalogs: db.Collection(CatalogsCollection),
		Logs:     db.Collection(LogsCollection),
	}

	if err := m.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return m, nil
}

func (m *MongoDB) createIndexes(ctx context.Context) error {
	_, err := m.Catalogs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "active", Value: 1}}},
		{Keys: bson.D{{Key: "version", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create catalog indexes: %w", err)
	}

	_, err = m.Logs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
		{Keys: bson.D{{Key: "action", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create log indexes: %w", err)
	}
	return nil
}

// SetLogsTTL makes journal entries expire after ttlDays. The existing TTL
// index is replaced so a changed retention takes effect.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	if ttlDays <= 0 {
		return nil
	}

	_, err := m.Logs.Indexes().DropOne(ctx, logsTTLIndexName)
	var cmdErr mongo.CommandError
	if err != nil && !(errors.As(err, &cmdErr) && cmdErr.Name == "IndexNotFound") {
		return fmt.Errorf("drop logs ttl index: %w", err)
	}

	ttlIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().
			SetName(logsTTLIndexName).
			SetExpireAfterSeconds(int32(ttlDays * 24 * 60 * 60)),
	}
	if _, err := m.Logs.Indexes().CreateOne(ctx, ttlIndex); err != nil {
		return fmt.Errorf("create logs ttl index: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the primary with a short timeout.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}

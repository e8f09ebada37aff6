package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

// LogsRepository stores request journal entries.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a LogsRepository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{collection: db.Logs}
}

// Insert stores one entry.
func (r *LogsRepository) Insert(ctx context.Context, entry *model.LogEntry) error {
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("insert log entry: %w", err)
	}
	return nil
}

// InsertMany stores entries unordered, so one bad entry does not block the rest.
func (r *LogsRepository) InsertMany(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]any, len(entries))
	for i, e := range entries {
		docs[i] = e
	}
	if _, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		return fmt.Errorf("insert log entries: %w", err)
	}
	return nil
}

// Find returns entries matching filter, newest first.
func (r *LogsRepository) Find(ctx context.Context, filter model.LogFilter) ([]model.LogEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	if filter.Skip > 0 {
		opts.SetSkip(int64(filter.Skip))
	}

	cursor, err := r.collection.Find(ctx, buildLogQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find log entries: %w", err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := make([]model.LogEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode log entries: %w", err)
	}
	return entries, nil
}

func buildLogQuery(filter model.LogFilter) bson.M {
	query := bson.M{}
	if filter.RequestID != "" {
		query["request_id"] = filter.RequestID
	}
	if filter.Level != "" {
		query["level"] = filter.Level
	}
	if filter.Action != "" {
		query["action"] = filter.Action
	}
	if filter.Region != "" {
		query["region"] = filter.Region
	}
	if filter.Since != nil || filter.Until != nil {
		window := bson.M{}
		if filter.Since != nil {
			window["$gte"] = *filter.Since
		}
		if filter.Until != nil {
			window["$lte"] = *filter.Until
		}
		query["timestamp"] = window
	}
	return query
}

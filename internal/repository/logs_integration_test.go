//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

func newEntry(action, region string, ts time.Time) *model.LogEntry {
	return &model.LogEntry{
		ID:        primitive.NewObjectID(),
		Timestamp: ts,
		Level:     "info",
		Message:   action,
		RequestID: "req-" + action,
		Action:    action,
		Region:    region,
		Quantity:  2,
	}
}

func TestLogsRepository_InsertAndFind(t *testing.T) {
	repo := NewLogsRepository(setupTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, repo.Insert(ctx, newEntry(model.ActionQuote, "القاهرة", now.Add(-time.Minute))))
	require.NoError(t, repo.InsertMany(ctx, []*model.LogEntry{
		newEntry(model.ActionOrderPrepared, "الجيزة", now),
		newEntry(model.ActionOrderRejected, "شمال سيناء", now.Add(time.Minute)),
	}))

	all, err := repo.Find(ctx, model.LogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, model.ActionOrderRejected, all[0].Action, "newest first")

	byAction, err := repo.Find(ctx, model.LogFilter{Action: model.ActionOrderPrepared})
	require.NoError(t, err)
	require.Len(t, byAction, 1)
	assert.Equal(t, "الجيزة", byAction[0].Region)

	since := now.Add(-30 * time.Second)
	recent, err := repo.Find(ctx, model.LogFilter{Since: &since, Limit: 1})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, model.ActionOrderRejected, recent[0].Action)
}

func TestLogsRepository_InsertMany_Empty(t *testing.T) {
	repo := NewLogsRepository(setupTestDB(t))

	assert.NoError(t, repo.InsertMany(context.Background(), nil))
}

func TestMongoDB_SetLogsTTL(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SetLogsTTL(ctx, 30))
	require.NoError(t, db.SetLogsTTL(ctx, 7), "replacing the ttl index")
	assert.NoError(t, db.SetLogsTTL(ctx, 0))
	assert.NoError(t, db.HealthCheck(ctx))
}

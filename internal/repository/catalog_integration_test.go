//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

func TestCatalogRepository_GetActive_Empty(t *testing.T) {
	repo := NewCatalogRepository(setupTestDB(t))

	snapshot, err := repo.GetActive(context.Background())

	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestCatalogRepository_PublishAndGetActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	doc := model.DefaultCatalogDocument()
	created, err := repo.Publish(ctx, doc, "seed")
	require.NoError(t, err)
	assert.Equal(t, 1, created.Version)
	assert.True(t, created.Active)

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, created.ID, active.ID)
	assert.Equal(t, "seed", active.CreatedBy)

	got := active.Document()
	assert.Equal(t, doc.FlashTypes, got.FlashTypes)
	assert.Equal(t, doc.Discount, got.Discount)
	assert.Equal(t, doc.WhatsApp, got.WhatsApp)
	assert.Equal(t, doc.Shipping, got.Shipping, "shipping order survives storage")
	assert.Equal(t, doc.FreeShippingThreshold, got.FreeShippingThreshold)
	assert.Equal(t, doc.UnavailableGovernorates, got.UnavailableGovernorates)
}

func TestCatalogRepository_Publish_DeactivatesPrevious(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	_, err := repo.Publish(ctx, model.DefaultCatalogDocument(), "seed")
	require.NoError(t, err)

	updated := model.DefaultCatalogDocument()
	updated.Discount = 0.3
	second, err := repo.Publish(ctx, updated, "admin")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Version)

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, 2, active.Version)
	assert.InDelta(t, 0.3, active.Discount, 1e-9)

	count, err := db.Catalogs.CountDocuments(ctx, bson.M{"active": true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

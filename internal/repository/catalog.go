package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

// ProductTypeRecord is a product type as stored in a snapshot.
type ProductTypeRecord struct {
	ID    string  `bson:"id"`
	Name  string  `bson:"name"`
	Price float64 `bson:"price"`
}

// CatalogSnapshot is one version of the catalog document. At most one
// snapshot is active; the active one is what the storefront serves.
type CatalogSnapshot struct {
	ID                    primitive.ObjectID    `bson:"_id,omitempty"`
	ProductTypes          []ProductTypeRecord   `bson:"product_types"`
	Discount              float64               `bson:"discount"`
	ContactNumber         string                `bson:"contact_number"`
	Shipping              []model.ShippingEntry `bson:"shipping"`
	FreeShippingThreshold int                   `bson:"free_shipping_threshold"`
	UnavailableRegions    []string              `bson:"unavailable_regions"`
	Active                bool                  `bson:"active"`
	Version               int                   `bson:"version"`
	CreatedAt             time.Time             `bson:"created_at"`
	CreatedBy             string                `bson:"created_by,omitempty"`
}

// SnapshotFromDocument converts a catalog document into its stored form.
// Shipping is kept as an array so region order survives the round trip.
func SnapshotFromDocument(doc model.CatalogDocument) CatalogSnapshot {
	types := make([]ProductTypeRecord, len(doc.FlashTypes))
	for i, pt := range doc.FlashTypes {
		types[i] = ProductTypeRecord{ID: pt.ID, Name: pt.Name, Price: pt.Price}
	}
	return CatalogSnapshot{
		ProductTypes:          types,
		Discount:              doc.Discount,
		ContactNumber:         doc.WhatsApp,
		Shipping:              append([]model.ShippingEntry(nil), doc.Shipping...),
		FreeShippingThreshold: doc.FreeShippingThreshold,
		UnavailableRegions:    append([]string(nil), doc.UnavailableGovernorates...),
	}
}

// Document converts the snapshot back into a catalog document.
func (s CatalogSnapshot) Document() model.CatalogDocument {
	types := make([]model.ProductTypeDocument, len(s.ProductTypes))
	for i, pt := range s.ProductTypes {
		types[i] = model.ProductTypeDocument{ID: pt.ID, Name: pt.Name, Price: pt.Price}
	}
	return model.CatalogDocument{
		FlashTypes:              types,
		Discount:                s.Discount,
		WhatsApp:                s.ContactNumber,
		Shipping:                model.ShippingTable(append([]model.ShippingEntry(nil), s.Shipping...)),
		FreeShippingThreshold:   s.FreeShippingThreshold,
		UnavailableGovernorates: append([]string(nil), s.UnavailableRegions...),
	}
}

// CatalogRepository reads and publishes catalog snapshots.
type CatalogRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewCatalogRepository creates a CatalogRepository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{collection: db.Catalogs, now: time.Now}
}

// GetActive returns the active snapshot, or nil when none has been published.
func (r *CatalogRepository) GetActive(ctx context.Context) (*CatalogSnapshot, error) {
	var snapshot CatalogSnapshot
	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{"active": true}, opts).Decode(&snapshot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active catalog: %w", err)
	}
	return &snapshot, nil
}

// Publish stores doc as the new active snapshot with the next version
// number and deactivates every earlier one.
func (r *CatalogRepository) Publish(ctx context.Context, doc model.CatalogDocument, createdBy string) (*CatalogSnapshot, error) {
	version, err := r.nextVersion(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := SnapshotFromDocument(doc)
	snapshot.ID = primitive.NewObjectID()
	snapshot.Active = true
	snapshot.Version = version
	snapshot.CreatedAt = r.now().UTC()
	snapshot.CreatedBy = createdBy

	if _, err := r.collection.InsertOne(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("insert catalog snapshot: %w", err)
	}

	_, err = r.collection.UpdateMany(ctx,
		bson.M{"active": true, "_id": bson.M{"$ne": snapshot.ID}},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		return nil, fmt.Errorf("deactivate previous catalogs: %w", err)
	}
	return &snapshot, nil
}

func (r *CatalogRepository) nextVersion(ctx context.Context) (int, error) {
	var latest CatalogSnapshot
	opts := options.FindOne().
		SetSort(bson.D{{Key: "version", Value: -1}}).
		SetProjection(bson.M{"version": 1})
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&latest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find latest catalog version: %w", err)
	}
	return latest.Version + 1, nil
}

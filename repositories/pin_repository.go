package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kbs-store/models"
)

// PinRepository holds at most one live PIN per phone. Expiry is enforced
// twice: reads filter on expires_at themselves, and the store's TTL index
// removes stale documents in the background. The explicit filter matters
// because Mongo's TTL monitor only sweeps about once a minute; a store
// without TTL support needs the PinSweeper running instead.
type PinRepository interface {
	Upsert(ctx context.Context, record *models.PinRecord) error
	Find(ctx context.Context, phone, pin string) (*models.PinRecord, error)
	MarkVerified(ctx context.Context, phone, pin string) error
	DeleteExpired(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoPinRepository struct {
	collection *mongo.Collection
}

func NewPinRepository(db *mongo.Database) PinRepository {
	return &mongoPinRepository{collection: db.Collection("pins")}
}

func (r *mongoPinRepository) Upsert(ctx context.Context, record *models.PinRecord) error {
	filter := bson.M{"phone": record.Phone}
	update := bson.M{"$set": record}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert pin: %w", err)
	}
	return nil
}

func (r *mongoPinRepository) Find(ctx context.Context, phone, pin string) (*models.PinRecord, error) {
	filter := bson.M{
		"phone":      phone,
		"pin":        pin,
		"expires_at": bson.M{"$gt": time.Now()},
	}

	var record models.PinRecord
	if err := r.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pin: %w", err)
	}
	return &record, nil
}

func (r *mongoPinRepository) MarkVerified(ctx context.Context, phone, pin string) error {
	filter := bson.M{
		"phone":      phone,
		"pin":        pin,
		"expires_at": bson.M{"$gt": time.Now()},
	}
	update := bson.M{"$set": bson.M{"verified": true}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark pin verified: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *mongoPinRepository) DeleteExpired(ctx context.Context) (int64, error) {
	filter := bson.M{"expires_at": bson.M{"$lte": time.Now()}}

	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired pins: %w", err)
	}
	return result.DeletedCount, nil
}

func (r *mongoPinRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create pin indexes: %w", err)
	}
	return nil
}

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

// ItemRepository is the catalog's document-store contract. Single-document
// writes are atomic; id uniqueness is enforced by the store's index, not by
// application-level locking.
type ItemRepository interface {
	List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	GetByID(ctx context.Context, id string) (*models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) (*models.Item, error)
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoItemRepository struct {
	collection *mongo.Collection
}

func NewItemRepository(db *mongo.Database) ItemRepository {
	return &mongoItemRepository{collection: db.Collection("items")}
}

func (r *mongoItemRepository) List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}
	if filter.InStock != nil {
		query["in_stock"] = *filter.InStock
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

func (r *mongoItemRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	var item models.Item
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

func (r *mongoItemRepository) Create(ctx context.Context, item *models.Item) error {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicateID
		}
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

func (r *mongoItemRepository) Update(ctx context.Context, item *models.Item) (*models.Item, error) {
	item.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"name":        item.Name,
		"price":       item.Price,
		"description": item.Description,
		"image":       item.Image,
		"category":    item.Category,
		"in_stock":    item.InStock,
		"featured":    item.Featured,
		"updated_at":  item.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Item
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"id": item.ID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return &updated, nil
}

func (r *mongoItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *mongoItemRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create item indexes: %w", err)
	}
	return nil
}

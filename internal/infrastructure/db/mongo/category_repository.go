package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

const collectionCategories = "categories"

// CategoryRepository implements ports.CategoryRepository using MongoDB.
// The collection is seeded out-of-band; this layer only reads it.
type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection(collectionCategories)}
}

type categoryDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Brand string             `bson:"brand,omitempty"`
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer cur.Close(ctx)

	categories := []*domain.Category{}
	for cur.Next(ctx) {
		var d categoryDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		categories = append(categories, &domain.Category{
			ID:    d.ID.Hex(),
			Name:  d.Name,
			Brand: d.Brand,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
	"github.com/dealfourwheel/marketplace-api/internal/core/ports"
)

const collectionProducts = "products"

// ProductRepository implements ports.ProductRepository using MongoDB.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

type productDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Category      string             `bson:"category"`
	SellerEmail   string             `bson:"seller_email"`
	SellerName    string             `bson:"seller_name,omitempty"`
	Price         float64            `bson:"price"`
	OriginalPrice float64            `bson:"original_price,omitempty"`
	YearOfUse     int                `bson:"year_of_use,omitempty"`
	Location      string             `bson:"location,omitempty"`
	Phone         string             `bson:"phone,omitempty"`
	Description   string             `bson:"description,omitempty"`
	ImageURL      string             `bson:"image_url,omitempty"`
	PostedAt      time.Time          `bson:"posted_at"`
}

func (d productDoc) toDomain() *domain.Product {
	return &domain.Product{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Category:      d.Category,
		SellerEmail:   d.SellerEmail,
		SellerName:    d.SellerName,
		Price:         d.Price,
		OriginalPrice: d.OriginalPrice,
		YearOfUse:     d.YearOfUse,
		Location:      d.Location,
		Phone:         d.Phone,
		Description:   d.Description,
		ImageURL:      d.ImageURL,
		PostedAt:      d.PostedAt.UTC(),
	}
}

func (r *ProductRepository) Insert(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := productDoc{
		Name:          p.Name,
		Category:      p.Category,
		SellerEmail:   p.SellerEmail,
		SellerName:    p.SellerName,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		YearOfUse:     p.YearOfUse,
		Location:      p.Location,
		Phone:         p.Phone,
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		PostedAt:      p.PostedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// List returns products matching filter, newest first. An unknown category
// yields an empty slice.
func (r *ProductRepository) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	opts := options.Find().SetSort(bson.D{{Key: "posted_at", Value: -1}})
	if filter.Limit > 0 {
		opts = opts.SetLimit(filter.Limit)
	}

	return r.find(ctx, query, opts)
}

func (r *ProductRepository) FindBySeller(ctx context.Context, email string) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{"seller_email": email}, options.Find().SetSort(bson.D{{Key: "posted_at", Value: -1}}))
}

func (r *ProductRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	products := []*domain.Product{}
	for cur.Next(ctx) {
		var d productDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, d.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// EnsureIndexes creates the lookup indexes on the products collection.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "seller_email", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

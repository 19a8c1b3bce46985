package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
)

const collectionBookings = "bookings"

// BookingRepository implements ports.BookingRepository using MongoDB.
type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

type bookingDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ProductID       string             `bson:"product_id"`
	ProductName     string             `bson:"product_name"`
	Price           float64            `bson:"price"`
	BuyerName       string             `bson:"buyer_name"`
	BuyerEmail      string             `bson:"buyer_email"`
	Phone           string             `bson:"phone,omitempty"`
	MeetingLocation string             `bson:"meeting_location,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (d bookingDoc) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:              d.ID.Hex(),
		ProductID:       d.ProductID,
		ProductName:     d.ProductName,
		Price:           d.Price,
		BuyerName:       d.BuyerName,
		BuyerEmail:      d.BuyerEmail,
		Phone:           d.Phone,
		MeetingLocation: d.MeetingLocation,
		CreatedAt:       d.CreatedAt.UTC(),
	}
}

func (r *BookingRepository) Insert(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bookingDoc{
		ProductID:       b.ProductID,
		ProductName:     b.ProductName,
		Price:           b.Price,
		BuyerName:       b.BuyerName,
		BuyerEmail:      b.BuyerEmail,
		Phone:           b.Phone,
		MeetingLocation: b.MeetingLocation,
		CreatedAt:       b.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	created := *b
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cur.Close(ctx)

	bookings := []*domain.Booking{}
	for cur.Next(ctx) {
		var d bookingDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, d.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}

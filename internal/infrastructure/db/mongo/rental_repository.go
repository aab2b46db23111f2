package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vidly/rental-api/internal/core/domain"
)

const collectionRentals = "rentals"

type RentalRepository struct {
	col *mongo.Collection
}

func NewRentalRepository(db *mongo.Database) *RentalRepository {
	return &RentalRepository{col: db.Collection(collectionRentals)}
}

type customerSnapshotDoc struct {
	ID     primitive.ObjectID `bson:"_id"`
	Name   string             `bson:"name"`
	Phone  string             `bson:"phone"`
	IsGold bool               `bson:"is_gold"`
}

type movieSnapshotDoc struct {
	ID              primitive.ObjectID `bson:"_id"`
	Title           string             `bson:"title"`
	DailyRentalRate float64            `bson:"daily_rental_rate"`
}

type rentalDoc struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	Customer     customerSnapshotDoc `bson:"customer"`
	Movie        movieSnapshotDoc    `bson:"movie"`
	DateOut      time.Time           `bson:"date_out"`
	DateReturned *time.Time          `bson:"date_returned,omitempty"`
	RentalFee    float64             `bson:"rental_fee,omitempty"`
}

func (d rentalDoc) toDomain() *domain.Rental {
	return &domain.Rental{
		ID: d.ID.Hex(),
		Customer: domain.CustomerSnapshot{
			ID:     d.Customer.ID.Hex(),
			Name:   d.Customer.Name,
			Phone:  d.Customer.Phone,
			IsGold: d.Customer.IsGold,
		},
		Movie: domain.MovieSnapshot{
			ID:              d.Movie.ID.Hex(),
			Title:           d.Movie.Title,
			DailyRentalRate: d.Movie.DailyRentalRate,
		},
		DateOut:      d.DateOut,
		DateReturned: d.DateReturned,
		RentalFee:    d.RentalFee,
	}
}

func toRentalDoc(rental *domain.Rental) (rentalDoc, error) {
	customerID, err := parseID(rental.Customer.ID)
	if err != nil {
		return rentalDoc{}, fmt.Errorf("customer snapshot id %q: %w", rental.Customer.ID, err)
	}
	movieID, err := parseID(rental.Movie.ID)
	if err != nil {
		return rentalDoc{}, fmt.Errorf("movie snapshot id %q: %w", rental.Movie.ID, err)
	}
	return rentalDoc{
		Customer: customerSnapshotDoc{
			ID:     customerID,
			Name:   rental.Customer.Name,
			Phone:  rental.Customer.Phone,
			IsGold: rental.Customer.IsGold,
		},
		Movie: movieSnapshotDoc{
			ID:              movieID,
			Title:           rental.Movie.Title,
			DailyRentalRate: rental.Movie.DailyRentalRate,
		},
		DateOut:      rental.DateOut,
		DateReturned: rental.DateReturned,
		RentalFee:    rental.RentalFee,
	}, nil
}

func (r *RentalRepository) FindAll(ctx context.Context) ([]*domain.Rental, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date_out", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find rentals: %w", err)
	}
	defer cur.Close(ctx)

	rentals := []*domain.Rental{}
	for cur.Next(ctx) {
		var d rentalDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode rental: %w", err)
		}
		rentals = append(rentals, d.toDomain())
	}
	return rentals, cur.Err()
}

func (r *RentalRepository) FindByID(ctx context.Context, id string) (*domain.Rental, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d rentalDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, fmt.Errorf("find rental: %w", err)
	}
	return d.toDomain(), nil
}

func (r *RentalRepository) Insert(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	doc, err := toRentalDoc(rental)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert rental: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// Update persists the closed state (date_returned, rental_fee) of a rental.
func (r *RentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	oid, err := parseID(rental.ID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"date_returned": rental.DateReturned,
			"rental_fee":    rental.RentalFee,
		}},
	)
	if err != nil {
		return fmt.Errorf("update rental: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}

// FindByCustomerAndMovie returns the newest rental for the pair, open or
// closed. Closed rentals must surface so the return workflow can reject a
// repeat return as already processed rather than not found.
func (r *RentalRepository) FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	custOID, err := parseID(customerID)
	if err != nil {
		return nil, err
	}
	movieOID, err := parseID(movieID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"customer._id": custOID,
		"movie._id":    movieOID,
	}

	var d rentalDoc
	err = r.col.FindOne(ctx, filter,
		options.FindOne().SetSort(bson.D{{Key: "date_out", Value: -1}}),
	).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, fmt.Errorf("find rental by pair: %w", err)
	}
	return d.toDomain(), nil
}

// EnsureIndexes creates the lookup index used by the return workflow.
func (r *RentalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer._id", Value: 1}, {Key: "movie._id", Value: 1}}},
		{Keys: bson.D{{Key: "date_out", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

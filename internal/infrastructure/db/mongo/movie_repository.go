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

const collectionMovies = "movies"

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{col: db.Collection(collectionMovies)}
}

type genreSnapshotDoc struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
}

type movieDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Genre           genreSnapshotDoc   `bson:"genre"`
	NumberInStock   int                `bson:"number_in_stock"`
	DailyRentalRate float64            `bson:"daily_rental_rate"`
}

func (d movieDoc) toDomain() *domain.Movie {
	return &domain.Movie{
		ID:    d.ID.Hex(),
		Title: d.Title,
		Genre: domain.GenreSnapshot{
			ID:   d.Genre.ID.Hex(),
			Name: d.Genre.Name,
		},
		NumberInStock:   d.NumberInStock,
		DailyRentalRate: d.DailyRentalRate,
	}
}

// toDoc builds the storable document. The genre snapshot id has already been
// validated by the service, so a parse failure here is a programming error.
func toMovieDoc(m *domain.Movie) (movieDoc, error) {
	genreID, err := parseID(m.Genre.ID)
	if err != nil {
		return movieDoc{}, fmt.Errorf("genre snapshot id %q: %w", m.Genre.ID, err)
	}
	return movieDoc{
		Title:           m.Title,
		Genre:           genreSnapshotDoc{ID: genreID, Name: m.Genre.Name},
		NumberInStock:   m.NumberInStock,
		DailyRentalRate: m.DailyRentalRate,
	}, nil
}

func (r *MovieRepository) FindAll(ctx context.Context) ([]*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer cur.Close(ctx)

	movies := []*domain.Movie{}
	for cur.Next(ctx) {
		var d movieDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode movie: %w", err)
		}
		movies = append(movies, d.toDomain())
	}
	return movies, cur.Err()
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d movieDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return d.toDomain(), nil
}

func (r *MovieRepository) Insert(ctx context.Context, m *domain.Movie) (*domain.Movie, error) {
	doc, err := toMovieDoc(m)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateTitle
		}
		return nil, fmt.Errorf("insert movie: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *MovieRepository) Update(ctx context.Context, id string, m *domain.Movie) (*domain.Movie, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	doc, err := toMovieDoc(m)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var updated movieDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"title":             doc.Title,
			"genre":             doc.Genre,
			"number_in_stock":   doc.NumberInStock,
			"daily_rental_rate": doc.DailyRentalRate,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateTitle
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}
	return updated.toDomain(), nil
}

func (r *MovieRepository) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d movieDoc
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("delete movie: %w", err)
	}
	return d.toDomain(), nil
}

// AdjustStock atomically adds delta to number_in_stock.
func (r *MovieRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"number_in_stock": delta}},
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// EnsureIndexes creates the unique title index on the movies collection.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

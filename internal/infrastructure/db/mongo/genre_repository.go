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

const collectionGenres = "genres"

type GenreRepository struct {
	col *mongo.Collection
}

func NewGenreRepository(db *mongo.Database) *GenreRepository {
	return &GenreRepository{col: db.Collection(collectionGenres)}
}

type genreDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (d genreDoc) toDomain() *domain.Genre {
	return &domain.Genre{ID: d.ID.Hex(), Name: d.Name}
}

func (r *GenreRepository) FindAll(ctx context.Context) ([]*domain.Genre, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find genres: %w", err)
	}
	defer cur.Close(ctx)

	genres := []*domain.Genre{}
	for cur.Next(ctx) {
		var d genreDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode genre: %w", err)
		}
		genres = append(genres, d.toDomain())
	}
	return genres, cur.Err()
}

func (r *GenreRepository) FindByID(ctx context.Context, id string) (*domain.Genre, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d genreDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, fmt.Errorf("find genre: %w", err)
	}
	return d.toDomain(), nil
}

func (r *GenreRepository) Insert(ctx context.Context, g *domain.Genre) (*domain.Genre, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, genreDoc{Name: g.Name})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateGenre
		}
		return nil, fmt.Errorf("insert genre: %w", err)
	}

	oid := res.InsertedID.(primitive.ObjectID)
	return &domain.Genre{ID: oid.Hex(), Name: g.Name}, nil
}

func (r *GenreRepository) Update(ctx context.Context, id string, g *domain.Genre) (*domain.Genre, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d genreDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"name": g.Name}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGenreNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateGenre
		}
		return nil, fmt.Errorf("update genre: %w", err)
	}
	return d.toDomain(), nil
}

func (r *GenreRepository) Delete(ctx context.Context, id string) (*domain.Genre, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d genreDoc
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, fmt.Errorf("delete genre: %w", err)
	}
	return d.toDomain(), nil
}

// EnsureIndexes creates the unique name index on the genres collection.
func (r *GenreRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

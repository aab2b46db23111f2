package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vidly/rental-api/internal/core/domain"
	"github.com/vidly/rental-api/internal/core/ports"
)

type MovieService struct {
	movies ports.MovieRepository
	genres ports.GenreRepository
	log    zerolog.Logger
}

func NewMovieService(movies ports.MovieRepository, genres ports.GenreRepository, log zerolog.Logger) *MovieService {
	return &MovieService{movies: movies, genres: genres, log: log}
}

func (s *MovieService) List(ctx context.Context) ([]*domain.Movie, error) {
	return s.movies.FindAll(ctx)
}

func (s *MovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.movies.FindByID(ctx, id)
}

func (s *MovieService) Create(ctx context.Context, in ports.MovieInput) (*domain.Movie, error) {
	movie, err := s.buildMovie(ctx, in)
	if err != nil {
		return nil, err
	}

	created, err := s.movies.Insert(ctx, movie)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("movie_id", created.ID).Str("title", created.Title).Msg("movie created")
	return created, nil
}

func (s *MovieService) Update(ctx context.Context, id string, in ports.MovieInput) (*domain.Movie, error) {
	movie, err := s.buildMovie(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.movies.Update(ctx, id, movie)
}

func (s *MovieService) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	removed, err := s.movies.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("movie_id", id).Msg("movie deleted")
	return removed, nil
}

// buildMovie resolves the referenced genre and embeds a snapshot of it into
// the movie document. Edits to the genre after this point do not propagate.
func (s *MovieService) buildMovie(ctx context.Context, in ports.MovieInput) (*domain.Movie, error) {
	genre, err := s.genres.FindByID(ctx, in.GenreID)
	if err != nil {
		if errors.Is(err, domain.ErrGenreNotFound) || errors.Is(err, domain.ErrInvalidID) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, fmt.Errorf("resolve genre: %w", err)
	}

	return &domain.Movie{
		Title: in.Title,
		Genre: domain.GenreSnapshot{
			ID:   genre.ID,
			Name: genre.Name,
		},
		NumberInStock:   in.NumberInStock,
		DailyRentalRate: in.DailyRentalRate,
	}, nil
}

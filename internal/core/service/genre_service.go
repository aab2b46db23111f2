package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vidly/rental-api/internal/core/domain"
	"github.com/vidly/rental-api/internal/core/ports"
)

type GenreService struct {
	repo ports.GenreRepository
	log  zerolog.Logger
}

func NewGenreService(repo ports.GenreRepository, log zerolog.Logger) *GenreService {
	return &GenreService{repo: repo, log: log}
}

func (s *GenreService) List(ctx context.Context) ([]*domain.Genre, error) {
	return s.repo.FindAll(ctx)
}

func (s *GenreService) Get(ctx context.Context, id string) (*domain.Genre, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GenreService) Create(ctx context.Context, in ports.GenreInput) (*domain.Genre, error) {
	created, err := s.repo.Insert(ctx, &domain.Genre{Name: in.Name})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("genre_id", created.ID).Str("name", created.Name).Msg("genre created")
	return created, nil
}

func (s *GenreService) Update(ctx context.Context, id string, in ports.GenreInput) (*domain.Genre, error) {
	return s.repo.Update(ctx, id, &domain.Genre{Name: in.Name})
}

func (s *GenreService) Delete(ctx context.Context, id string) (*domain.Genre, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("genre_id", id).Msg("genre deleted")
	return removed, nil
}

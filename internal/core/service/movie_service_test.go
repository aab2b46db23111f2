package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vidly/rental-api/internal/core/domain"
	"github.com/vidly/rental-api/internal/core/ports"
)

type stubGenreRepo struct {
	genres map[string]*domain.Genre
	nextID int
}

func newStubGenreRepo() *stubGenreRepo {
	return &stubGenreRepo{genres: make(map[string]*domain.Genre)}
}

func (r *stubGenreRepo) FindAll(_ context.Context) ([]*domain.Genre, error) {
	out := []*domain.Genre{}
	for _, g := range r.genres {
		clone := *g
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubGenreRepo) FindByID(_ context.Context, id string) (*domain.Genre, error) {
	if g, ok := r.genres[id]; ok {
		clone := *g
		return &clone, nil
	}
	return nil, domain.ErrGenreNotFound
}

func (r *stubGenreRepo) Insert(_ context.Context, g *domain.Genre) (*domain.Genre, error) {
	r.nextID++
	clone := *g
	clone.ID = "genre_" + strconv.Itoa(r.nextID)
	r.genres[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubGenreRepo) Update(_ context.Context, id string, g *domain.Genre) (*domain.Genre, error) {
	if _, ok := r.genres[id]; !ok {
		return nil, domain.ErrGenreNotFound
	}
	clone := *g
	clone.ID = id
	r.genres[id] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubGenreRepo) Delete(_ context.Context, id string) (*domain.Genre, error) {
	g, ok := r.genres[id]
	if !ok {
		return nil, domain.ErrGenreNotFound
	}
	delete(r.genres, id)
	return g, nil
}

type stubMovieRepo struct {
	movies map[string]*domain.Movie
	nextID int

	adjustErr error
}

func newStubMovieRepo() *stubMovieRepo {
	return &stubMovieRepo{movies: make(map[string]*domain.Movie)}
}

func (r *stubMovieRepo) FindAll(_ context.Context) ([]*domain.Movie, error) {
	out := []*domain.Movie{}
	for _, m := range r.movies {
		clone := *m
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubMovieRepo) FindByID(_ context.Context, id string) (*domain.Movie, error) {
	if m, ok := r.movies[id]; ok {
		clone := *m
		return &clone, nil
	}
	return nil, domain.ErrMovieNotFound
}

func (r *stubMovieRepo) Insert(_ context.Context, m *domain.Movie) (*domain.Movie, error) {
	r.nextID++
	clone := *m
	clone.ID = "movie_" + strconv.Itoa(r.nextID)
	r.movies[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubMovieRepo) Update(_ context.Context, id string, m *domain.Movie) (*domain.Movie, error) {
	if _, ok := r.movies[id]; !ok {
		return nil, domain.ErrMovieNotFound
	}
	clone := *m
	clone.ID = id
	r.movies[id] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubMovieRepo) Delete(_ context.Context, id string) (*domain.Movie, error) {
	m, ok := r.movies[id]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	delete(r.movies, id)
	return m, nil
}

func (r *stubMovieRepo) AdjustStock(_ context.Context, id string, delta int) error {
	if r.adjustErr != nil {
		return r.adjustErr
	}
	m, ok := r.movies[id]
	if !ok {
		return domain.ErrMovieNotFound
	}
	m.NumberInStock += delta
	return nil
}

func TestMovieService_Create_EmbedsGenreSnapshot(t *testing.T) {
	genres := newStubGenreRepo()
	movies := newStubMovieRepo()
	svc := NewMovieService(movies, genres, zerolog.Nop())

	genre, _ := genres.Insert(context.Background(), &domain.Genre{Name: "action"})

	movie, err := svc.Create(context.Background(), ports.MovieInput{
		Title:           "movie1",
		GenreID:         genre.ID,
		NumberInStock:   10,
		DailyRentalRate: 2,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if movie.Genre.ID != genre.ID || movie.Genre.Name != "action" {
		t.Fatalf("expected embedded genre snapshot, got %+v", movie.Genre)
	}

	// The snapshot is a copy: renaming the genre must not affect the movie.
	if _, err := genres.Update(context.Background(), genre.ID, &domain.Genre{Name: "thriller"}); err != nil {
		t.Fatalf("genre update failed: %v", err)
	}
	stored, _ := movies.FindByID(context.Background(), movie.ID)
	if stored.Genre.Name != "action" {
		t.Fatalf("genre snapshot mutated: %+v", stored.Genre)
	}
}

func TestMovieService_Create_UnknownGenre(t *testing.T) {
	svc := NewMovieService(newStubMovieRepo(), newStubGenreRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.MovieInput{
		Title:           "movie1",
		GenreID:         "missing",
		NumberInStock:   10,
		DailyRentalRate: 2,
	})
	if err != domain.ErrGenreNotFound {
		t.Fatalf("expected ErrGenreNotFound, got %v", err)
	}
}

func TestMovieService_Update_ReresolvesGenre(t *testing.T) {
	genres := newStubGenreRepo()
	movies := newStubMovieRepo()
	svc := NewMovieService(movies, genres, zerolog.Nop())

	oldGenre, _ := genres.Insert(context.Background(), &domain.Genre{Name: "action"})
	newGenre, _ := genres.Insert(context.Background(), &domain.Genre{Name: "comedy"})

	movie, err := svc.Create(context.Background(), ports.MovieInput{
		Title: "movie1", GenreID: oldGenre.ID, NumberInStock: 5, DailyRentalRate: 1,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), movie.ID, ports.MovieInput{
		Title: "movie1 extended", GenreID: newGenre.ID, NumberInStock: 5, DailyRentalRate: 1,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Genre.Name != "comedy" {
		t.Fatalf("expected re-resolved genre snapshot, got %+v", updated.Genre)
	}
}

func TestMovieService_Delete_ReturnsRemoved(t *testing.T) {
	genres := newStubGenreRepo()
	movies := newStubMovieRepo()
	svc := NewMovieService(movies, genres, zerolog.Nop())

	genre, _ := genres.Insert(context.Background(), &domain.Genre{Name: "action"})
	movie, _ := svc.Create(context.Background(), ports.MovieInput{
		Title: "movie1", GenreID: genre.ID, NumberInStock: 5, DailyRentalRate: 1,
	})

	removed, err := svc.Delete(context.Background(), movie.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if removed.ID != movie.ID {
		t.Fatalf("expected removed movie %s, got %s", movie.ID, removed.ID)
	}
	if _, err := svc.Get(context.Background(), movie.ID); err != domain.ErrMovieNotFound {
		t.Fatalf("expected ErrMovieNotFound after delete, got %v", err)
	}
}

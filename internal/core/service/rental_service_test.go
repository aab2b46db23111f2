package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vidly/rental-api/internal/core/domain"
)

type stubCustomerRepo struct {
	customers map[string]*domain.Customer
	nextID    int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func (r *stubCustomerRepo) FindAll(_ context.Context) ([]*domain.Customer, error) {
	out := []*domain.Customer{}
	for _, c := range r.customers {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	if c, ok := r.customers[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) Insert(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	r.nextID++
	clone := *c
	clone.ID = "customer_" + strconv.Itoa(r.nextID)
	r.customers[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, id string, c *domain.Customer) (*domain.Customer, error) {
	if _, ok := r.customers[id]; !ok {
		return nil, domain.ErrCustomerNotFound
	}
	clone := *c
	clone.ID = id
	r.customers[id] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return c, nil
}

type stubRentalRepo struct {
	rentals map[string]*domain.Rental
	nextID  int
}

func newStubRentalRepo() *stubRentalRepo {
	return &stubRentalRepo{rentals: make(map[string]*domain.Rental)}
}

func cloneRental(r *domain.Rental) *domain.Rental {
	clone := *r
	if r.DateReturned != nil {
		at := *r.DateReturned
		clone.DateReturned = &at
	}
	return &clone
}

func (r *stubRentalRepo) FindAll(_ context.Context) ([]*domain.Rental, error) {
	out := []*domain.Rental{}
	for _, rental := range r.rentals {
		out = append(out, cloneRental(rental))
	}
	return out, nil
}

func (r *stubRentalRepo) FindByID(_ context.Context, id string) (*domain.Rental, error) {
	if rental, ok := r.rentals[id]; ok {
		return cloneRental(rental), nil
	}
	return nil, domain.ErrRentalNotFound
}

func (r *stubRentalRepo) Insert(_ context.Context, rental *domain.Rental) (*domain.Rental, error) {
	r.nextID++
	clone := cloneRental(rental)
	clone.ID = "rental_" + strconv.Itoa(r.nextID)
	r.rentals[clone.ID] = cloneRental(clone)
	return clone, nil
}

func (r *stubRentalRepo) Update(_ context.Context, rental *domain.Rental) error {
	if _, ok := r.rentals[rental.ID]; !ok {
		return domain.ErrRentalNotFound
	}
	r.rentals[rental.ID] = cloneRental(rental)
	return nil
}

func (r *stubRentalRepo) FindByCustomerAndMovie(_ context.Context, customerID, movieID string) (*domain.Rental, error) {
	var newest *domain.Rental
	for _, rental := range r.rentals {
		if rental.Customer.ID != customerID || rental.Movie.ID != movieID {
			continue
		}
		if newest == nil || rental.DateOut.After(newest.DateOut) {
			newest = rental
		}
	}
	if newest == nil {
		return nil, domain.ErrRentalNotFound
	}
	return cloneRental(newest), nil
}

type rentalFixture struct {
	svc       *RentalService
	rentals   *stubRentalRepo
	movies    *stubMovieRepo
	customers *stubCustomerRepo
	customer  *domain.Customer
	movie     *domain.Movie
}

func newRentalFixture(t *testing.T) *rentalFixture {
	t.Helper()

	customers := newStubCustomerRepo()
	movies := newStubMovieRepo()
	rentals := newStubRentalRepo()

	customer, err := customers.Insert(context.Background(), &domain.Customer{Name: "customer1", Phone: "12345"})
	if err != nil {
		t.Fatalf("insert customer: %v", err)
	}
	movie, err := movies.Insert(context.Background(), &domain.Movie{
		Title:           "movie1",
		NumberInStock:   10,
		DailyRentalRate: 2,
	})
	if err != nil {
		t.Fatalf("insert movie: %v", err)
	}

	return &rentalFixture{
		svc:       NewRentalService(rentals, movies, customers, zerolog.Nop()),
		rentals:   rentals,
		movies:    movies,
		customers: customers,
		customer:  customer,
		movie:     movie,
	}
}

func TestRentalService_Checkout(t *testing.T) {
	f := newRentalFixture(t)

	rental, err := f.svc.Checkout(context.Background(), f.customer.ID, f.movie.ID)
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}
	if rental.Customer.ID != f.customer.ID || rental.Customer.Name != "customer1" {
		t.Fatalf("unexpected customer snapshot: %+v", rental.Customer)
	}
	if rental.Movie.ID != f.movie.ID || rental.Movie.DailyRentalRate != 2 {
		t.Fatalf("unexpected movie snapshot: %+v", rental.Movie)
	}
	if rental.Returned() {
		t.Fatalf("new rental must be open")
	}

	movie, _ := f.movies.FindByID(context.Background(), f.movie.ID)
	if movie.NumberInStock != 9 {
		t.Fatalf("expected stock 9 after checkout, got %d", movie.NumberInStock)
	}
}

func TestRentalService_Checkout_OutOfStock(t *testing.T) {
	f := newRentalFixture(t)
	f.movies.movies[f.movie.ID].NumberInStock = 0

	if _, err := f.svc.Checkout(context.Background(), f.customer.ID, f.movie.ID); err != domain.ErrMovieNotInStock {
		t.Fatalf("expected ErrMovieNotInStock, got %v", err)
	}
}

func TestRentalService_Checkout_UnknownCustomer(t *testing.T) {
	f := newRentalFixture(t)

	if _, err := f.svc.Checkout(context.Background(), "missing", f.movie.ID); err != domain.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestRentalService_ProcessReturn(t *testing.T) {
	f := newRentalFixture(t)

	rental, err := f.svc.Checkout(context.Background(), f.customer.ID, f.movie.ID)
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}

	// Pin the clock 3 days after checkout: 3 days at rate 2 → fee 6.
	f.svc.now = func() time.Time { return rental.DateOut.AddDate(0, 0, 3) }

	returned, err := f.svc.ProcessReturn(context.Background(), f.customer.ID, f.movie.ID)
	if err != nil {
		t.Fatalf("ProcessReturn returned error: %v", err)
	}
	if !returned.Returned() {
		t.Fatalf("expected rental closed")
	}
	if returned.RentalFee != 6 {
		t.Fatalf("expected fee 6, got %v", returned.RentalFee)
	}

	movie, _ := f.movies.FindByID(context.Background(), f.movie.ID)
	if movie.NumberInStock != 10 {
		t.Fatalf("expected stock restored to 10, got %d", movie.NumberInStock)
	}

	stored, _ := f.rentals.FindByID(context.Background(), returned.ID)
	if !stored.Returned() || stored.RentalFee != 6 {
		t.Fatalf("closed state not persisted: %+v", stored)
	}
}

func TestRentalService_ProcessReturn_NoRentalForPair(t *testing.T) {
	f := newRentalFixture(t)

	if _, err := f.svc.ProcessReturn(context.Background(), f.customer.ID, f.movie.ID); err != domain.ErrRentalNotFound {
		t.Fatalf("expected ErrRentalNotFound, got %v", err)
	}
}

func TestRentalService_ProcessReturn_AlreadyProcessed(t *testing.T) {
	f := newRentalFixture(t)

	if _, err := f.svc.Checkout(context.Background(), f.customer.ID, f.movie.ID); err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}
	if _, err := f.svc.ProcessReturn(context.Background(), f.customer.ID, f.movie.ID); err != nil {
		t.Fatalf("first return failed: %v", err)
	}

	// The closed rental is still found by the pair lookup; the terminal-state
	// check rejects it as already processed rather than not found.
	if _, err := f.svc.ProcessReturn(context.Background(), f.customer.ID, f.movie.ID); err != domain.ErrRentalAlreadyReturned {
		t.Fatalf("expected ErrRentalAlreadyReturned on second return, got %v", err)
	}

	// Stock must not be incremented twice.
	movie, _ := f.movies.FindByID(context.Background(), f.movie.ID)
	if movie.NumberInStock != 10 {
		t.Fatalf("expected stock 10 after rejected repeat return, got %d", movie.NumberInStock)
	}
}

func TestRentalService_ProcessReturn_NewestRentalWins(t *testing.T) {
	// A closed earlier rental must not shadow a newer open one for the same
	// pair: the lookup picks the newest rental, which is still returnable.
	f := newRentalFixture(t)

	if _, err := f.svc.Checkout(context.Background(), f.customer.ID, f.movie.ID); err != nil {
		t.Fatalf("first checkout failed: %v", err)
	}
	if _, err := f.svc.ProcessReturn(context.Background(), f.customer.ID, f.movie.ID); err != nil {
		t.Fatalf("first return failed: %v", err)
	}

	base := f.svc.now()
	f.svc.now = func() time.Time { return base.Add(time.Hour) }
	if _, err := f.svc.Checkout(context.Background(), f.customer.ID, f.movie.ID); err != nil {
		t.Fatalf("second checkout failed: %v", err)
	}

	returned, err := f.svc.ProcessReturn(context.Background(), f.customer.ID, f.movie.ID)
	if err != nil {
		t.Fatalf("second return failed: %v", err)
	}
	if !returned.Returned() {
		t.Fatalf("expected the newer rental closed")
	}
}

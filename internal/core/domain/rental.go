package domain

import (
	"math"
	"time"
)

// CustomerSnapshot is the denormalized copy of a Customer embedded in a
// rental at creation time.
type CustomerSnapshot struct {
	ID     string `json:"id" bson:"_id"`
	Name   string `json:"name" bson:"name"`
	Phone  string `json:"phone" bson:"phone"`
	IsGold bool   `json:"is_gold" bson:"is_gold"`
}

// MovieSnapshot is the denormalized copy of a Movie embedded in a rental.
// It carries only the fields needed to price the rental later.
type MovieSnapshot struct {
	ID              string  `json:"id" bson:"_id"`
	Title           string  `json:"title" bson:"title"`
	DailyRentalRate float64 `json:"daily_rental_rate" bson:"daily_rental_rate"`
}

// Rental records one checkout of one movie by one customer. It has exactly
// two states: open (DateReturned nil) and closed (DateReturned set). Closed
// is terminal.
type Rental struct {
	ID           string           `json:"id" bson:"_id,omitempty"`
	Customer     CustomerSnapshot `json:"customer" bson:"customer"`
	Movie        MovieSnapshot    `json:"movie" bson:"movie"`
	DateOut      time.Time        `json:"date_out" bson:"date_out"`
	DateReturned *time.Time       `json:"date_returned,omitempty" bson:"date_returned,omitempty"`
	RentalFee    float64          `json:"rental_fee,omitempty" bson:"rental_fee,omitempty"`
}

// Returned reports whether the rental has been closed.
func (r *Rental) Returned() bool {
	return r.DateReturned != nil
}

// Return closes the rental at the given time and computes the fee.
// Days are counted inclusively: any started day is billed, and a
// same-day return is billed as one day.
func (r *Rental) Return(at time.Time) error {
	if r.Returned() {
		return ErrRentalAlreadyReturned
	}
	days := int(math.Ceil(at.Sub(r.DateOut).Hours() / 24))
	if days < 1 {
		days = 1
	}
	r.DateReturned = &at
	r.RentalFee = float64(days) * r.Movie.DailyRentalRate
	return nil
}

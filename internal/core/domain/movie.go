package domain

// GenreSnapshot is the denormalized copy of a Genre embedded in a movie at
// creation/update time. Later edits to the genre do not propagate here.
type GenreSnapshot struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// Movie is a catalog entry. Title is unique across the collection;
// NumberInStock and DailyRentalRate are bounded to [0,255].
type Movie struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	Title           string        `json:"title" bson:"title"`
	Genre           GenreSnapshot `json:"genre" bson:"genre"`
	NumberInStock   int           `json:"number_in_stock" bson:"number_in_stock"`
	DailyRentalRate float64       `json:"daily_rental_rate" bson:"daily_rental_rate"`
}

package domain

// Genre is a movie category. Name is unique across the collection.
type Genre struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}

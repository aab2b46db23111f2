package domain

// Customer is a registered borrower. IsGold marks members entitled to
// promotional treatment; it defaults to false.
type Customer struct {
	ID     string `json:"id" bson:"_id,omitempty"`
	Name   string `json:"name" bson:"name"`
	Phone  string `json:"phone" bson:"phone"`
	IsGold bool   `json:"is_gold" bson:"is_gold"`
}

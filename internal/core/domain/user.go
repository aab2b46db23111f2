package domain

// User models an authenticated actor. PasswordHash is never serialized in
// responses; IsAdmin gates the delete endpoints.
type User struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password_hash"`
	IsAdmin      bool   `json:"is_admin" bson:"is_admin"`
}

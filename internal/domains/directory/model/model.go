package model

const EntityName = "admin"

// Admin is a fair staff account. Password holds the bcrypt hash; it is
// persisted in the blob but never serialized into API responses.
type Admin struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

package model

const EntityName = "vendor"

// Vendor is a registered exhibitor account. Password holds the bcrypt hash.
type Vendor struct {
	ID           string `json:"id"`
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
}

package model

import "time"

// User represents an account in the database.
type User struct {
	ID        int64
	Email     string
	AuthHash  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Credentials is the body of register and login requests.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a bearer token and the account it belongs to.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse is the public view of an account.
// MaxAmount is the largest batch the account may request.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	MaxAmount int       `json:"max_amount"`
	CreatedAt time.Time `json:"created_at"`
}

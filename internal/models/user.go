package models

// User is part of the store contract but is not exposed by any route yet.
type User struct {
	ID       string `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}

// UserInput is the payload for creating a user
type UserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

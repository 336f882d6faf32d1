package models

// User is an administrative account. The password hash never leaves the
// server.
type User struct {
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

package dto

// SignupRequest registers a new administrative account.
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login. The access token is also set
// as an HTTP-only cookie; it is echoed in the body for clients that prefer
// the Authorization header.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	Username    string `json:"username"`
}

// UserResponse is the wire shape of the current user.
type UserResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

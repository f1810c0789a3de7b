package dto

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest carries no binding tags: the handler checks presence itself
// so the "Please provide email and password" message stays exact.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PublicUser is the profile slice safe to return to clients.
type PublicUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

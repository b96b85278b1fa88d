package models

// User is the account identity returned by the backend on login, register,
// and the /api/auth/me endpoint.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

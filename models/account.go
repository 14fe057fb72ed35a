package models

// Role values baked into tokens and route allow-lists.
const (
	RoleAdmin   = "admin"
	RoleCoach   = "coach"
	RoleStudent = "student"
)

// Account is the result of a credential lookup across the three role
// tables. Role tells which table the login was found in.
type Account struct {
	ID           int
	Role         string
	Login        string
	FirstName    string
	LastName     string
	PasswordHash string
}

// Principal is the identity carried by a verified token.
type Principal struct {
	ID    int    `json:"id"`
	Role  string `json:"role"`
	Login string `json:"login"`
}

type Credentials struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type PasswordChange struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

package models

type Student struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Login     string `json:"login"`
	CreatedAt string `json:"created_at"`
}

// StudentView is the reduced field set exposed to coaches.
type StudentView struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type StudentCreate struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	Login     string `json:"login" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// StudentUpdate carries a partial update; nil fields keep their previous values.
type StudentUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Login     *string `json:"login"`
	Password  *string `json:"password"`
}

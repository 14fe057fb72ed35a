package models

type Coach struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date"`
	Phone       string `json:"phone"`
	SportTypeID *int   `json:"sport_type_id"`
	SportName   string `json:"sport_name"`
	Login       string `json:"login"`
	CreatedAt   string `json:"created_at"`
}

// CoachView is the field set any authenticated role may see.
type CoachView struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	Phone     string `json:"phone"`
	SportName string `json:"sport_name"`
}

// CoachCreate accepts either first/last name or a single full_name the
// admin UI sends; the controller splits the latter.
type CoachCreate struct {
	FullName    string `json:"full_name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date"`
	Phone       string `json:"phone"`
	SportTypeID *int   `json:"sport_type_id"`
	Login       string `json:"login"`
	Password    string `json:"password"`
}

type CoachUpdate struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	BirthDate   *string `json:"birth_date"`
	Phone       *string `json:"phone"`
	SportTypeID *int    `json:"sport_type_id"`
	Login       *string `json:"login"`
	Password    *string `json:"password"`
}

package models

type Slider struct {
	ID          int    `json:"id"`
	SchoolName  string `json:"school_name"`
	ImagePath   string `json:"image_path"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

package models

type SportType struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path"`
	CreatedAt   string `json:"created_at"`
}

package models

type CompetitionResult struct {
	ID              int    `json:"id"`
	CompetitionName string `json:"competition_name"`
	Date            string `json:"date"`
	ImagePath       string `json:"image_path"`
	Description     string `json:"description"`
	CreatedAt       string `json:"created_at"`
}

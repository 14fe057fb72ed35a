package models

type NewsPost struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Date      string   `json:"date"`
	CreatedAt string   `json:"created_at"`
	Images    []string `json:"images"`
}

type NewsImage struct {
	ID        int    `json:"id"`
	NewsID    int    `json:"news_id"`
	ImagePath string `json:"image_path"`
}

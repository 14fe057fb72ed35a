package controllers

import (
	"database/sql"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"sports-school/models"
	"sports-school/repository"
	"sports-school/storage"
	"sports-school/utils"
)

type NewsController struct{}

func (nc NewsController) GetNews(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := "SELECT id, title, content, date, created_at FROM news" + repository.OrderClause(newsDesc)
		rows, err := db.Query(query)
		if err != nil {
			respondServerError(w, err, "failed to query news")
			return
		}
		defer rows.Close()

		posts := []models.NewsPost{}
		for rows.Next() {
			var post models.NewsPost
			var content, date sql.NullString
			if err := rows.Scan(&post.ID, &post.Title, &content, &date, &post.CreatedAt); err != nil {
				respondServerError(w, err, "failed to scan news post")
				return
			}
			post.Content = utils.NullStringToString(content)
			post.Date = utils.NullStringToString(date)
			posts = append(posts, post)
		}
		if err := rows.Err(); err != nil {
			respondServerError(w, err, "failed to read news")
			return
		}

		for i := range posts {
			images, err := newsImagePaths(db, posts[i].ID)
			if err != nil {
				respondServerError(w, err, "failed to query news images")
				return
			}
			posts[i].Images = images
		}

		utils.ResponseJSON(w, posts)
	}
}

func (nc NewsController) AddNews(db *sql.DB, media *storage.MediaStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid multipart form"})
			return
		}

		title := r.FormValue("title")
		if title == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Title is required"})
			return
		}
		date := r.FormValue("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		fields := &repository.Fields{}
		fields.Set("title", title)
		fields.Set("content", r.FormValue("content"))
		fields.Set("date", date)

		id, err := repository.Create(db, newsDesc, fields)
		if err != nil {
			respondRepoError(w, err, "News")
			return
		}

		if err := attachImages(db, media, int(id), r.MultipartForm.File["images"]); err != nil {
			respondServerError(w, err, "failed to attach news images")
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"message": "News added successfully", "id": id})
	}
}

func (nc NewsController) UpdateNews(db *sql.DB, media *storage.MediaStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid id"})
			return
		}
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid multipart form"})
			return
		}

		fields := &repository.Fields{}
		if _, ok := r.MultipartForm.Value["title"]; ok {
			fields.Set("title", r.FormValue("title"))
		}
		if _, ok := r.MultipartForm.Value["content"]; ok {
			fields.Set("content", r.FormValue("content"))
		}
		if _, ok := r.MultipartForm.Value["date"]; ok {
			fields.Set("date", r.FormValue("date"))
		}

		uploads := r.MultipartForm.File["images"]
		replace := r.FormValue("replace_images") == "true" && len(uploads) > 0

		// An update may touch only the image set; don't reject that as an
		// empty field update.
		if fields.Len() > 0 {
			if err := repository.Update(db, newsDesc, id, fields); err != nil {
				respondRepoError(w, err, "News")
				return
			}
		} else {
			if _, err := newsPostExists(db, id); err != nil {
				respondRepoError(w, err, "News")
				return
			}
			if len(uploads) == 0 {
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "No fields to update"})
				return
			}
		}

		if replace {
			oldImages, err := newsImagePaths(db, id)
			if err != nil {
				respondServerError(w, err, "failed to query news images")
				return
			}
			if _, err := db.Exec("DELETE FROM news_images WHERE news_id = ?", id); err != nil {
				respondServerError(w, err, "failed to delete news images")
				return
			}
			for _, path := range oldImages {
				cleanupFile(media, path)
			}
		}

		if err := attachImages(db, media, id, uploads); err != nil {
			respondServerError(w, err, "failed to attach news images")
			return
		}

		utils.ResponseJSON(w, map[string]string{"message": "News updated successfully"})
	}
}

// DeleteNews removes the post, its image rows and their files.
func (nc NewsController) DeleteNews(db *sql.DB, media *storage.MediaStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid id"})
			return
		}

		images, err := newsImagePaths(db, id)
		if err != nil {
			respondServerError(w, err, "failed to query news images")
			return
		}

		// Row cascade handles news_images; files are ours to clean up.
		if err := repository.Delete(db, newsDesc, id); err != nil {
			respondRepoError(w, err, "News")
			return
		}
		for _, path := range images {
			cleanupFile(media, path)
		}

		utils.ResponseJSON(w, map[string]string{"message": "News deleted successfully"})
	}
}

func newsImagePaths(db *sql.DB, newsID int) ([]string, error) {
	rows, err := db.Query("SELECT image_path FROM news_images WHERE news_id = ?", newsID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := []string{}
	for rows.Next() {
		var path sql.NullString
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		if path.Valid {
			paths = append(paths, path.String)
		}
	}
	return paths, rows.Err()
}

func newsPostExists(db *sql.DB, id int) (bool, error) {
	var exists int
	err := db.QueryRow("SELECT 1 FROM news WHERE id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, repository.ErrNotFound
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func attachImages(db *sql.DB, media *storage.MediaStore, newsID int, uploads []*multipart.FileHeader) error {
	for _, header := range uploads {
		if header.Filename == "" {
			continue
		}
		file, err := header.Open()
		if err != nil {
			return err
		}
		path, err := media.Save(file, header.Filename, storage.CategoryNews)
		file.Close()
		if err != nil {
			return err
		}
		if _, err := db.Exec("INSERT INTO news_images (news_id, image_path) VALUES (?, ?)", newsID, path); err != nil {
			cleanupFile(media, path)
			return err
		}
	}
	return nil
}

package controllers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"sports-school/models"
	"sports-school/repository"
	"sports-school/storage"
	"sports-school/utils"
)

type SportTypeController struct{}

func (stc SportTypeController) GetSportTypes(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query("SELECT id, name, description, image_path, created_at FROM sport_types")
		if err != nil {
			respondServerError(w, err, "failed to query sport types")
			return
		}
		defer rows.Close()

		sports := []models.SportType{}
		for rows.Next() {
			var sport models.SportType
			var description, imagePath sql.NullString
			if err := rows.Scan(&sport.ID, &sport.Name, &description, &imagePath, &sport.CreatedAt); err != nil {
				respondServerError(w, err, "failed to scan sport type")
				return
			}
			sport.Description = utils.NullStringToString(description)
			sport.ImagePath = utils.NullStringToString(imagePath)
			sports = append(sports, sport)
		}

		utils.ResponseJSON(w, sports)
	}
}

func (stc SportTypeController) AddSportType(db *sql.DB, media *storage.MediaStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid multipart form"})
			return
		}

		name := r.FormValue("name")
		if name == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Sport name is required"})
			return
		}

		// Image is optional here, unlike sliders.
		var imagePath interface{}
		if file, header, err := r.FormFile("image"); err == nil {
			defer file.Close()
			if header.Filename != "" {
				path, err := media.Save(file, header.Filename, storage.CategorySports)
				if err != nil {
					respondServerError(w, err, "failed to store sport type image")
					return
				}
				imagePath = path
			}
		} else if !errors.Is(err, http.ErrMissingFile) {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid image upload"})
			return
		}

		fields := &repository.Fields{}
		fields.Set("name", name)
		fields.Set("description", r.FormValue("description"))
		fields.Set("image_path", imagePath)

		id, err := repository.Create(db, sportTypeDesc, fields)
		if err != nil {
			respondRepoError(w, err, "Sport type")
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"message": "Sport type added successfully", "id": id})
	}
}

func (stc SportTypeController) UpdateSportType(db *sql.DB, media *storage.MediaStore) http.HandlerFunc {
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

		oldImage, err := repository.ImagePath(db, sportTypeDesc, id)
		if err != nil {
			respondRepoError(w, err, "Sport type")
			return
		}

		fields := &repository.Fields{}
		if _, ok := r.MultipartForm.Value["name"]; ok {
			fields.Set("name", r.FormValue("name"))
		}
		if _, ok := r.MultipartForm.Value["description"]; ok {
			fields.Set("description", r.FormValue("description"))
		}

		newImage := replacementImage(w, r, media, storage.CategorySports)
		if newImage == uploadFailed {
			return
		}
		if newImage != "" {
			fields.Set("image_path", newImage)
		}

		if err := repository.Update(db, sportTypeDesc, id, fields); err != nil {
			if newImage != "" {
				cleanupFile(media, newImage)
			}
			respondRepoError(w, err, "Sport type")
			return
		}

		if newImage != "" {
			cleanupFile(media, oldImage)
		}

		utils.ResponseJSON(w, map[string]string{"message": "Sport type updated successfully"})
	}
}

func (stc SportTypeController) DeleteSportType(db *sql.DB, media *storage.MediaStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid id"})
			return
		}

		imagePath, err := repository.ImagePath(db, sportTypeDesc, id)
		if err != nil {
			respondRepoError(w, err, "Sport type")
			return
		}

		if err := repository.Delete(db, sportTypeDesc, id); err != nil {
			respondRepoError(w, err, "Sport type")
			return
		}
		cleanupFile(media, imagePath)

		utils.ResponseJSON(w, map[string]string{"message": "Sport type deleted successfully"})
	}
}

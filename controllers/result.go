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

type ResultController struct{}

func (rc ResultController) GetResults(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := "SELECT id, competition_name, date, image_path, description, created_at FROM results" +
			repository.OrderClause(resultDesc)
		rows, err := db.Query(query)
		if err != nil {
			respondServerError(w, err, "failed to query results")
			return
		}
		defer rows.Close()

		results := []models.CompetitionResult{}
		for rows.Next() {
			var result models.CompetitionResult
			var date, imagePath, description sql.NullString
			if err := rows.Scan(&result.ID, &result.CompetitionName, &date, &imagePath, &description, &result.CreatedAt); err != nil {
				respondServerError(w, err, "failed to scan result")
				return
			}
			result.Date = utils.NullStringToString(date)
			result.ImagePath = utils.NullStringToString(imagePath)
			result.Description = utils.NullStringToString(description)
			results = append(results, result)
		}

		utils.ResponseJSON(w, results)
	}
}

func (rc ResultController) AddResult(db *sql.DB, media *storage.MediaStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid multipart form"})
			return
		}

		competitionName := r.FormValue("competition_name")
		if competitionName == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Competition name is required"})
			return
		}

		var imagePath interface{}
		if file, header, err := r.FormFile("image"); err == nil {
			defer file.Close()
			if header.Filename != "" {
				path, err := media.Save(file, header.Filename, storage.CategoryResults)
				if err != nil {
					respondServerError(w, err, "failed to store result image")
					return
				}
				imagePath = path
			}
		} else if !errors.Is(err, http.ErrMissingFile) {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid image upload"})
			return
		}

		fields := &repository.Fields{}
		fields.Set("competition_name", competitionName)
		fields.Set("date", r.FormValue("date"))
		fields.Set("image_path", imagePath)
		fields.Set("description", r.FormValue("description"))

		id, err := repository.Create(db, resultDesc, fields)
		if err != nil {
			respondRepoError(w, err, "Result")
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"message": "Result added successfully", "id": id})
	}
}

func (rc ResultController) UpdateResult(db *sql.DB, media *storage.MediaStore) http.HandlerFunc {
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

		oldImage, err := repository.ImagePath(db, resultDesc, id)
		if err != nil {
			respondRepoError(w, err, "Result")
			return
		}

		fields := &repository.Fields{}
		if _, ok := r.MultipartForm.Value["competition_name"]; ok {
			fields.Set("competition_name", r.FormValue("competition_name"))
		}
		if _, ok := r.MultipartForm.Value["date"]; ok {
			fields.Set("date", r.FormValue("date"))
		}
		if _, ok := r.MultipartForm.Value["description"]; ok {
			fields.Set("description", r.FormValue("description"))
		}

		newImage := replacementImage(w, r, media, storage.CategoryResults)
		if newImage == uploadFailed {
			return
		}
		if newImage != "" {
			fields.Set("image_path", newImage)
		}

		if err := repository.Update(db, resultDesc, id, fields); err != nil {
			if newImage != "" {
				cleanupFile(media, newImage)
			}
			respondRepoError(w, err, "Result")
			return
		}

		if newImage != "" {
			cleanupFile(media, oldImage)
		}

		utils.ResponseJSON(w, map[string]string{"message": "Result updated successfully"})
	}
}

func (rc ResultController) DeleteResult(db *sql.DB, media *storage.MediaStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid id"})
			return
		}

		imagePath, err := repository.ImagePath(db, resultDesc, id)
		if err != nil {
			respondRepoError(w, err, "Result")
			return
		}

		if err := repository.Delete(db, resultDesc, id); err != nil {
			respondRepoError(w, err, "Result")
			return
		}
		cleanupFile(media, imagePath)

		utils.ResponseJSON(w, map[string]string{"message": "Result deleted successfully"})
	}
}

package controllers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"sports-school/models"
	"sports-school/repository"
	"sports-school/storage"
	"sports-school/utils"
)

type SliderController struct{}

const maxUploadSize = 10 << 20 // 10MB

func (slc SliderController) GetSliders(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query("SELECT id, school_name, image_path, description, created_at FROM sliders")
		if err != nil {
			respondServerError(w, err, "failed to query sliders")
			return
		}
		defer rows.Close()

		sliders := []models.Slider{}
		for rows.Next() {
			var slider models.Slider
			var imagePath, description sql.NullString
			if err := rows.Scan(&slider.ID, &slider.SchoolName, &imagePath, &description, &slider.CreatedAt); err != nil {
				respondServerError(w, err, "failed to scan slider")
				return
			}
			slider.ImagePath = utils.NullStringToString(imagePath)
			slider.Description = utils.NullStringToString(description)
			sliders = append(sliders, slider)
		}

		utils.ResponseJSON(w, sliders)
	}
}

func (slc SliderController) AddSlider(db *sql.DB, media *storage.MediaStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid multipart form"})
			return
		}

		schoolName := r.FormValue("school_name")
		if schoolName == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "School name is required"})
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "No image provided"})
			return
		}
		defer file.Close()

		imagePath, err := media.Save(file, header.Filename, storage.CategorySliders)
		if err != nil {
			respondServerError(w, err, "failed to store slider image")
			return
		}

		fields := &repository.Fields{}
		fields.Set("school_name", schoolName)
		fields.Set("image_path", imagePath)
		fields.Set("description", r.FormValue("description"))

		id, err := repository.Create(db, sliderDesc, fields)
		if err != nil {
			respondRepoError(w, err, "Slider")
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"message": "Slider added successfully", "id": id})
	}
}

func (slc SliderController) UpdateSlider(db *sql.DB, media *storage.MediaStore) http.HandlerFunc {
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

		oldImage, err := repository.ImagePath(db, sliderDesc, id)
		if err != nil {
			respondRepoError(w, err, "Slider")
			return
		}

		fields := &repository.Fields{}
		if _, ok := r.MultipartForm.Value["school_name"]; ok {
			fields.Set("school_name", r.FormValue("school_name"))
		}
		if _, ok := r.MultipartForm.Value["description"]; ok {
			fields.Set("description", r.FormValue("description"))
		}

		newImage := replacementImage(w, r, media, storage.CategorySliders)
		if newImage == uploadFailed {
			return
		}
		if newImage != "" {
			fields.Set("image_path", newImage)
		}

		if err := repository.Update(db, sliderDesc, id, fields); err != nil {
			// The new file is orphaned if the row write failed; remove it.
			if newImage != "" {
				cleanupFile(media, newImage)
			}
			respondRepoError(w, err, "Slider")
			return
		}

		// New image durably saved and row committed; only now drop the old file.
		if newImage != "" {
			cleanupFile(media, oldImage)
		}

		utils.ResponseJSON(w, map[string]string{"message": "Slider updated successfully"})
	}
}

func (slc SliderController) DeleteSlider(db *sql.DB, media *storage.MediaStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid id"})
			return
		}

		imagePath, err := repository.ImagePath(db, sliderDesc, id)
		if err != nil {
			respondRepoError(w, err, "Slider")
			return
		}

		if err := repository.Delete(db, sliderDesc, id); err != nil {
			respondRepoError(w, err, "Slider")
			return
		}
		cleanupFile(media, imagePath)

		utils.ResponseJSON(w, map[string]string{"message": "Slider deleted successfully"})
	}
}

// uploadFailed marks that replacementImage already wrote an error response.
const uploadFailed = "\x00"

// replacementImage saves an optional replacement upload and returns its
// relative path, "" when no file was sent, or uploadFailed after
// responding with an error.
func replacementImage(w http.ResponseWriter, r *http.Request, media *storage.MediaStore, category string) string {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return ""
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid image upload"})
		return uploadFailed
	}
	defer file.Close()

	if header.Filename == "" {
		return ""
	}

	path, err := media.Save(file, header.Filename, category)
	if err != nil {
		respondServerError(w, err, "failed to store image")
		return uploadFailed
	}
	return path
}

func cleanupFile(media *storage.MediaStore, relPath string) {
	if err := media.Delete(relPath); err != nil {
		logrus.WithError(err).WithField("path", relPath).Warn("failed to delete stored file")
	}
}

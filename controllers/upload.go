package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"sports-school/models"
	"sports-school/storage"
	"sports-school/utils"
)

type UploadController struct{}

// ServeFile streams a stored upload back by its relative path.
func (uc UploadController) ServeFile(media *storage.MediaStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		relPath := mux.Vars(r)["path"]

		file, err := media.Open(relPath)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "File not found"})
				return
			}
			respondServerError(w, err, "failed to open stored file")
			return
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil {
			respondServerError(w, err, "failed to stat stored file")
			return
		}
		http.ServeContent(w, r, file.Name(), info.ModTime(), file)
	}
}

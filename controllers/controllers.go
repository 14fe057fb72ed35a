package controllers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"sports-school/models"
	"sports-school/repository"
	"sports-school/utils"
)

var validate = validator.New()

// respondRepoError maps repository errors onto the HTTP error taxonomy.
// Anything unexpected is logged and returned as a generic 500 so internal
// detail never reaches the client.
func respondRepoError(w http.ResponseWriter, err error, entity string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: entity + " not found"})
	case errors.Is(err, repository.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, models.Error{Message: "Login already exists"})
	case errors.Is(err, repository.ErrReferenced):
		utils.RespondWithError(w, http.StatusConflict, models.Error{Message: entity + " is still referenced"})
	case errors.Is(err, repository.ErrEmptyUpdate):
		utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "No fields to update"})
	default:
		logrus.WithError(err).WithField("entity", entity).Error("storage failure")
		utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Server error"})
	}
}

func respondServerError(w http.ResponseWriter, err error, msg string) {
	logrus.WithError(err).Error(msg)
	utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Server error"})
}

package controllers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"sports-school/auth"
	"sports-school/middleware"
	"sports-school/models"
	"sports-school/utils"
)

type AuthController struct{}

// Login checks credentials across the role tables and returns a signed
// token together with the basic account fields the frontend shows.
func (ac AuthController) Login(db *sql.DB, mgr *auth.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}
		if err := validate.Struct(creds); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Login and password are required"})
			return
		}

		account, err := mgr.Authenticate(db, creds.Login, creds.Password)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrMissingFields):
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Login and password are required"})
			case errors.Is(err, auth.ErrInvalidCredentials):
				utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Invalid login or password"})
			default:
				respondServerError(w, err, "login lookup failed")
			}
			return
		}

		token, err := mgr.GenerateToken(account)
		if err != nil {
			respondServerError(w, err, "token generation failed")
			return
		}

		utils.ResponseJSON(w, models.LoginResponse{
			Token:     token,
			Role:      account.Role,
			ID:        account.ID,
			FirstName: account.FirstName,
			LastName:  account.LastName,
		})
	}
}

// Profile returns the authenticated account with a role-specific field
// set; coaches additionally get their sport name.
func (ac AuthController) Profile(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, _ := middleware.Principal(r)

		profile := map[string]interface{}{"role": principal.Role}
		var err error

		switch principal.Role {
		case models.RoleAdmin:
			var id int
			var firstName, lastName, login string
			err = db.QueryRow(
				"SELECT id, first_name, last_name, login FROM admins WHERE id = ?", principal.ID,
			).Scan(&id, &firstName, &lastName, &login)
			profile["id"] = id
			profile["first_name"] = firstName
			profile["last_name"] = lastName
			profile["login"] = login
		case models.RoleCoach:
			var id int
			var firstName, lastName, login string
			var birthDate, phone, sportName sql.NullString
			err = db.QueryRow(`
				SELECT c.id, c.first_name, c.last_name, c.birth_date, c.phone, c.login, s.name
				FROM coaches c
				LEFT JOIN sport_types s ON c.sport_type_id = s.id
				WHERE c.id = ?`, principal.ID,
			).Scan(&id, &firstName, &lastName, &birthDate, &phone, &login, &sportName)
			profile["id"] = id
			profile["first_name"] = firstName
			profile["last_name"] = lastName
			profile["birth_date"] = utils.NullStringToString(birthDate)
			profile["phone"] = utils.NullStringToString(phone)
			profile["login"] = login
			profile["sport_name"] = utils.NullStringToString(sportName)
		case models.RoleStudent:
			var id int
			var firstName, lastName, login string
			var phone sql.NullString
			err = db.QueryRow(
				"SELECT id, first_name, last_name, phone, login FROM students WHERE id = ?", principal.ID,
			).Scan(&id, &firstName, &lastName, &phone, &login)
			profile["id"] = id
			profile["first_name"] = firstName
			profile["last_name"] = lastName
			profile["phone"] = utils.NullStringToString(phone)
			profile["login"] = login
		}

		if errors.Is(err, sql.ErrNoRows) {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "User not found"})
			return
		}
		if err != nil {
			respondServerError(w, err, "profile lookup failed")
			return
		}

		utils.ResponseJSON(w, profile)
	}
}

// UpdatePassword verifies the current password before storing a new hash
// in the caller's own role table.
func (ac AuthController) UpdatePassword(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, _ := middleware.Principal(r)

		var change models.PasswordChange
		if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}
		if err := validate.Struct(change); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Current and new passwords are required"})
			return
		}

		table, ok := roleTable(principal.Role)
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Token is invalid"})
			return
		}

		var currentHash string
		err := db.QueryRow("SELECT password FROM "+table+" WHERE id = ?", principal.ID).Scan(&currentHash)
		if errors.Is(err, sql.ErrNoRows) {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "User not found"})
			return
		}
		if err != nil {
			respondServerError(w, err, "password lookup failed")
			return
		}

		if !utils.ComparePasswords(currentHash, []byte(change.CurrentPassword)) {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Current password is incorrect"})
			return
		}

		newHash, err := utils.HashPassword(change.NewPassword)
		if err != nil {
			respondServerError(w, err, "password hashing failed")
			return
		}
		if _, err := db.Exec("UPDATE "+table+" SET password = ? WHERE id = ?", newHash, principal.ID); err != nil {
			respondServerError(w, err, "password update failed")
			return
		}

		utils.ResponseJSON(w, map[string]string{"message": "Password updated successfully"})
	}
}

func roleTable(role string) (string, bool) {
	switch role {
	case models.RoleAdmin:
		return "admins", true
	case models.RoleCoach:
		return "coaches", true
	case models.RoleStudent:
		return "students", true
	}
	return "", false
}

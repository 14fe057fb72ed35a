package controllers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"sports-school/models"
	"sports-school/repository"
	"sports-school/utils"
)

type CoachController struct{}

const coachListQuery = `
	SELECT c.id, c.first_name, c.last_name, c.birth_date, c.phone, c.sport_type_id, s.name, c.login, c.created_at
	FROM coaches c
	LEFT JOIN sport_types s ON c.sport_type_id = s.id`

func (cc CoachController) GetCoaches(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		where, args := repository.SearchWhere(coachDesc, r.URL.Query().Get("search"))
		rows, err := db.Query(coachListQuery+where, args...)
		if err != nil {
			respondServerError(w, err, "failed to query coaches")
			return
		}
		defer rows.Close()

		coaches := []models.Coach{}
		for rows.Next() {
			var coach models.Coach
			var birthDate, phone, sportName sql.NullString
			var sportTypeID sql.NullInt64
			if err := rows.Scan(&coach.ID, &coach.FirstName, &coach.LastName, &birthDate, &phone,
				&sportTypeID, &sportName, &coach.Login, &coach.CreatedAt); err != nil {
				respondServerError(w, err, "failed to scan coach")
				return
			}
			coach.BirthDate = utils.NullStringToString(birthDate)
			coach.Phone = utils.NullStringToString(phone)
			coach.SportName = utils.NullStringToString(sportName)
			coach.SportTypeID = utils.NullInt64ToPtr(sportTypeID)
			coaches = append(coaches, coach)
		}

		utils.ResponseJSON(w, coaches)
	}
}

// GetCoachesView lists coaches for any authenticated role, without login
// or timestamps.
func (cc CoachController) GetCoachesView(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query(`
			SELECT c.id, c.first_name, c.last_name, c.birth_date, c.phone, s.name
			FROM coaches c
			LEFT JOIN sport_types s ON c.sport_type_id = s.id`)
		if err != nil {
			respondServerError(w, err, "failed to query coaches")
			return
		}
		defer rows.Close()

		coaches := []models.CoachView{}
		for rows.Next() {
			var coach models.CoachView
			var birthDate, phone, sportName sql.NullString
			if err := rows.Scan(&coach.ID, &coach.FirstName, &coach.LastName, &birthDate, &phone, &sportName); err != nil {
				respondServerError(w, err, "failed to scan coach")
				return
			}
			coach.BirthDate = utils.NullStringToString(birthDate)
			coach.Phone = utils.NullStringToString(phone)
			coach.SportName = utils.NullStringToString(sportName)
			coaches = append(coaches, coach)
		}

		utils.ResponseJSON(w, coaches)
	}
}

func (cc CoachController) AddCoach(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.CoachCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}

		firstName, lastName := payload.FirstName, payload.LastName
		if payload.FullName != "" {
			firstName, lastName = splitFullName(payload.FullName)
		}
		if firstName == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Name is required"})
			return
		}

		// The admin UI may omit credentials; fall back the way the
		// original system did.
		login := payload.Login
		if login == "" {
			login = strings.ToLower(firstName) + strings.ToLower(lastName)
		}
		password := payload.Password
		if password == "" {
			password = "default123"
		}

		hash, err := utils.HashPassword(password)
		if err != nil {
			respondServerError(w, err, "password hashing failed")
			return
		}

		fields := &repository.Fields{}
		fields.Set("first_name", firstName)
		fields.Set("last_name", lastName)
		fields.Set("birth_date", payload.BirthDate)
		fields.Set("phone", payload.Phone)
		fields.Set("sport_type_id", nullableInt(payload.SportTypeID))
		fields.Set("login", login)
		fields.Set("password", hash)

		id, err := repository.Create(db, coachDesc, fields)
		if err != nil {
			respondRepoError(w, err, "Coach")
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"message": "Coach added successfully", "id": id})
	}
}

func (cc CoachController) UpdateCoach(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid id"})
			return
		}

		var payload models.CoachUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}

		fields := &repository.Fields{}
		if payload.FirstName != nil {
			fields.Set("first_name", *payload.FirstName)
		}
		if payload.LastName != nil {
			fields.Set("last_name", *payload.LastName)
		}
		if payload.BirthDate != nil {
			fields.Set("birth_date", *payload.BirthDate)
		}
		if payload.Phone != nil {
			fields.Set("phone", *payload.Phone)
		}
		if payload.SportTypeID != nil {
			fields.Set("sport_type_id", *payload.SportTypeID)
		}
		if payload.Login != nil {
			fields.Set("login", *payload.Login)
		}
		if payload.Password != nil {
			hash, err := utils.HashPassword(*payload.Password)
			if err != nil {
				respondServerError(w, err, "password hashing failed")
				return
			}
			fields.Set("password", hash)
		}

		if err := repository.Update(db, coachDesc, id, fields); err != nil {
			respondRepoError(w, err, "Coach")
			return
		}

		utils.ResponseJSON(w, map[string]string{"message": "Coach updated successfully"})
	}
}

func (cc CoachController) DeleteCoach(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid id"})
			return
		}

		if err := repository.Delete(db, coachDesc, id); err != nil {
			respondRepoError(w, err, "Coach")
			return
		}

		utils.ResponseJSON(w, map[string]string{"message": "Coach deleted successfully"})
	}
}

func splitFullName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) < 2 {
		return fullName, ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

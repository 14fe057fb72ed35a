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

type ScheduleController struct{}

func (shc ScheduleController) GetSchedule(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := `
			SELECT ts.id, ts.date, ts.time, ts.sport_type_id, st.name, ts.coach_id,
			       c.first_name, c.last_name, ts.room, ts.created_at
			FROM training_schedule ts
			LEFT JOIN coaches c ON ts.coach_id = c.id
			LEFT JOIN sport_types st ON ts.sport_type_id = st.id
			ORDER BY ts.date, ts.time`
		rows, err := db.Query(query)
		if err != nil {
			respondServerError(w, err, "failed to query training schedule")
			return
		}
		defer rows.Close()

		entries := []models.ScheduleEntry{}
		for rows.Next() {
			var entry models.ScheduleEntry
			var sportTypeID, coachID sql.NullInt64
			var sportName, coachFirst, coachLast, room sql.NullString
			if err := rows.Scan(&entry.ID, &entry.Date, &entry.Time, &sportTypeID, &sportName,
				&coachID, &coachFirst, &coachLast, &room, &entry.CreatedAt); err != nil {
				respondServerError(w, err, "failed to scan schedule entry")
				return
			}
			entry.SportTypeID = utils.NullInt64ToPtr(sportTypeID)
			entry.SportName = utils.NullStringToString(sportName)
			entry.CoachID = utils.NullInt64ToPtr(coachID)
			entry.CoachName = strings.TrimSpace(utils.NullStringToString(coachFirst) + " " + utils.NullStringToString(coachLast))
			entry.Room = utils.NullStringToString(room)
			entries = append(entries, entry)
		}

		utils.ResponseJSON(w, entries)
	}
}

func (shc ScheduleController) AddSchedule(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.ScheduleCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}
		if err := validate.Struct(payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Date and time are required"})
			return
		}

		fields := &repository.Fields{}
		fields.Set("date", payload.Date)
		fields.Set("time", payload.Time)
		fields.Set("sport_type_id", nullableInt(payload.SportTypeID))
		fields.Set("coach_id", nullableInt(payload.CoachID))
		fields.Set("room", payload.Room)

		id, err := repository.Create(db, scheduleDesc, fields)
		if err != nil {
			respondRepoError(w, err, "Training schedule")
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"message": "Training schedule added successfully", "id": id})
	}
}

func (shc ScheduleController) UpdateSchedule(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid id"})
			return
		}

		var payload models.ScheduleUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}

		fields := &repository.Fields{}
		if payload.Date != nil {
			fields.Set("date", *payload.Date)
		}
		if payload.Time != nil {
			fields.Set("time", *payload.Time)
		}
		if payload.SportTypeID != nil {
			fields.Set("sport_type_id", *payload.SportTypeID)
		}
		if payload.CoachID != nil {
			fields.Set("coach_id", *payload.CoachID)
		}
		if payload.Room != nil {
			fields.Set("room", *payload.Room)
		}

		if err := repository.Update(db, scheduleDesc, id, fields); err != nil {
			respondRepoError(w, err, "Training schedule")
			return
		}

		utils.ResponseJSON(w, map[string]string{"message": "Training schedule updated successfully"})
	}
}

func (shc ScheduleController) DeleteSchedule(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid id"})
			return
		}

		if err := repository.Delete(db, scheduleDesc, id); err != nil {
			respondRepoError(w, err, "Training schedule")
			return
		}

		utils.ResponseJSON(w, map[string]string{"message": "Training schedule deleted successfully"})
	}
}

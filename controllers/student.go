package controllers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"sports-school/models"
	"sports-school/repository"
	"sports-school/utils"
)

type StudentController struct{}

func (sc StudentController) GetStudents(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		where, args := repository.SearchWhere(studentDesc, r.URL.Query().Get("search"))
		rows, err := db.Query("SELECT id, first_name, last_name, phone, login, created_at FROM students"+where, args...)
		if err != nil {
			respondServerError(w, err, "failed to query students")
			return
		}
		defer rows.Close()

		students := []models.Student{}
		for rows.Next() {
			var student models.Student
			var phone sql.NullString
			if err := rows.Scan(&student.ID, &student.FirstName, &student.LastName, &phone, &student.Login, &student.CreatedAt); err != nil {
				respondServerError(w, err, "failed to scan student")
				return
			}
			student.Phone = utils.NullStringToString(phone)
			students = append(students, student)
		}

		utils.ResponseJSON(w, students)
	}
}

// GetStudentsView is the reduced listing for coaches: no login, no
// timestamps.
func (sc StudentController) GetStudentsView(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		where, args := repository.SearchWhere(studentViewDesc, r.URL.Query().Get("search"))
		rows, err := db.Query("SELECT id, first_name, last_name, phone FROM students"+where, args...)
		if err != nil {
			respondServerError(w, err, "failed to query students")
			return
		}
		defer rows.Close()

		students := []models.StudentView{}
		for rows.Next() {
			var student models.StudentView
			var phone sql.NullString
			if err := rows.Scan(&student.ID, &student.FirstName, &student.LastName, &phone); err != nil {
				respondServerError(w, err, "failed to scan student")
				return
			}
			student.Phone = utils.NullStringToString(phone)
			students = append(students, student)
		}

		utils.ResponseJSON(w, students)
	}
}

func (sc StudentController) AddStudent(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.StudentCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}
		if err := validate.Struct(payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Required fields are missing"})
			return
		}

		hash, err := utils.HashPassword(payload.Password)
		if err != nil {
			respondServerError(w, err, "password hashing failed")
			return
		}

		fields := &repository.Fields{}
		fields.Set("first_name", payload.FirstName)
		fields.Set("last_name", payload.LastName)
		fields.Set("phone", payload.Phone)
		fields.Set("login", payload.Login)
		fields.Set("password", hash)

		id, err := repository.Create(db, studentDesc, fields)
		if err != nil {
			respondRepoError(w, err, "Student")
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"message": "Student added successfully", "id": id})
	}
}

func (sc StudentController) UpdateStudent(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid id"})
			return
		}

		var payload models.StudentUpdate
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
		if payload.Phone != nil {
			fields.Set("phone", *payload.Phone)
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

		if err := repository.Update(db, studentDesc, id, fields); err != nil {
			respondRepoError(w, err, "Student")
			return
		}

		utils.ResponseJSON(w, map[string]string{"message": "Student updated successfully"})
	}
}

func (sc StudentController) DeleteStudent(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid id"})
			return
		}

		if err := repository.Delete(db, studentDesc, id); err != nil {
			respondRepoError(w, err, "Student")
			return
		}

		utils.ResponseJSON(w, map[string]string{"message": "Student deleted successfully"})
	}
}

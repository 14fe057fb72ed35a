package controllers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sports-school/auth"
	"sports-school/driver"
	"sports-school/middleware"
	"sports-school/models"
	"sports-school/storage"
)

type testEnv struct {
	router    http.Handler
	db        *sql.DB
	mgr       *auth.Manager
	mediaRoot string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := driver.ConnectDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, driver.Migrate(db))
	require.NoError(t, driver.SeedAdmin(db, "admin123"))

	mediaRoot := t.TempDir()
	media, err := storage.New(mediaRoot)
	require.NoError(t, err)

	mgr := auth.NewManager("test-secret", 7*24*time.Hour)

	authController := AuthController{}
	studentController := StudentController{}
	coachController := CoachController{}
	sliderController := SliderController{}
	newsController := NewsController{}
	sportTypeController := SportTypeController{}
	scheduleController := ScheduleController{}
	resultController := ResultController{}
	uploadController := UploadController{}

	authn := middleware.Authenticate(mgr)
	adminOnly := middleware.RequireRole(models.RoleAdmin)
	adminOrCoach := middleware.RequireRole(models.RoleAdmin, models.RoleCoach)

	router := mux.NewRouter()
	router.HandleFunc("/login", authController.Login(db, mgr)).Methods("POST")
	router.Handle("/profile", authn(authController.Profile(db))).Methods("GET")
	router.Handle("/profile/update-password", authn(authController.UpdatePassword(db))).Methods("PUT")
	router.Handle("/students", authn(adminOnly(studentController.GetStudents(db)))).Methods("GET")
	router.Handle("/students", authn(adminOnly(studentController.AddStudent(db)))).Methods("POST")
	router.Handle("/students/view", authn(adminOrCoach(studentController.GetStudentsView(db)))).Methods("GET")
	router.Handle("/students/{id:[0-9]+}", authn(adminOnly(studentController.UpdateStudent(db)))).Methods("PUT")
	router.Handle("/students/{id:[0-9]+}", authn(adminOnly(studentController.DeleteStudent(db)))).Methods("DELETE")
	router.Handle("/coaches", authn(adminOnly(coachController.GetCoaches(db)))).Methods("GET")
	router.Handle("/coaches", authn(adminOnly(coachController.AddCoach(db)))).Methods("POST")
	router.Handle("/coaches/view", authn(coachController.GetCoachesView(db))).Methods("GET")
	router.Handle("/coaches/{id:[0-9]+}", authn(adminOnly(coachController.UpdateCoach(db)))).Methods("PUT")
	router.Handle("/coaches/{id:[0-9]+}", authn(adminOnly(coachController.DeleteCoach(db)))).Methods("DELETE")
	router.Handle("/sliders", authn(sliderController.GetSliders(db))).Methods("GET")
	router.Handle("/sliders", authn(adminOnly(sliderController.AddSlider(db, media)))).Methods("POST")
	router.Handle("/sliders/{id:[0-9]+}", authn(adminOnly(sliderController.UpdateSlider(db, media)))).Methods("PUT")
	router.Handle("/sliders/{id:[0-9]+}", authn(adminOnly(sliderController.DeleteSlider(db, media)))).Methods("DELETE")
	router.Handle("/news", authn(newsController.GetNews(db))).Methods("GET")
	router.Handle("/news", authn(adminOnly(newsController.AddNews(db, media)))).Methods("POST")
	router.Handle("/news/{id:[0-9]+}", authn(adminOnly(newsController.UpdateNews(db, media)))).Methods("PUT")
	router.Handle("/news/{id:[0-9]+}", authn(adminOnly(newsController.DeleteNews(db, media)))).Methods("DELETE")
	router.Handle("/sport-types", authn(sportTypeController.GetSportTypes(db))).Methods("GET")
	router.Handle("/sport-types", authn(adminOnly(sportTypeController.AddSportType(db, media)))).Methods("POST")
	router.Handle("/sport-types/{id:[0-9]+}", authn(adminOnly(sportTypeController.UpdateSportType(db, media)))).Methods("PUT")
	router.Handle("/sport-types/{id:[0-9]+}", authn(adminOnly(sportTypeController.DeleteSportType(db, media)))).Methods("DELETE")
	router.Handle("/training-schedule", authn(scheduleController.GetSchedule(db))).Methods("GET")
	router.Handle("/training-schedule", authn(adminOnly(scheduleController.AddSchedule(db)))).Methods("POST")
	router.Handle("/training-schedule/{id:[0-9]+}", authn(adminOnly(scheduleController.UpdateSchedule(db)))).Methods("PUT")
	router.Handle("/training-schedule/{id:[0-9]+}", authn(adminOnly(scheduleController.DeleteSchedule(db)))).Methods("DELETE")
	router.Handle("/results", authn(resultController.GetResults(db))).Methods("GET")
	router.Handle("/results", authn(adminOnly(resultController.AddResult(db, media)))).Methods("POST")
	router.Handle("/results/{id:[0-9]+}", authn(adminOnly(resultController.UpdateResult(db, media)))).Methods("PUT")
	router.Handle("/results/{id:[0-9]+}", authn(adminOnly(resultController.DeleteResult(db, media)))).Methods("DELETE")
	router.HandleFunc("/uploads/{path:.*}", uploadController.ServeFile(media)).Methods("GET")

	return &testEnv{router: router, db: db, mgr: mgr, mediaRoot: mediaRoot}
}

func (e *testEnv) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, r)
	return w
}

type filePart struct {
	field    string
	filename string
	content  string
}

func (e *testEnv) doMultipart(t *testing.T, method, path, token string, values map[string]string, files []filePart) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range values {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.field, file.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(file.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	r := httptest.NewRequest(method, path, &buf)
	r.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, r)
	return w
}

func (e *testEnv) login(t *testing.T, login, password string) models.LoginResponse {
	t.Helper()
	w := e.doJSON(t, http.MethodPost, "/login", "", map[string]string{"login": login, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}

func (e *testEnv) fileExists(relPath string) bool {
	_, err := os.Stat(filepath.Join(e.mediaRoot, filepath.FromSlash(relPath)))
	return err == nil
}

func TestLoginDefaultAdmin(t *testing.T) {
	env := newTestEnv(t)

	resp := env.login(t, "admin", "admin123")
	assert.Equal(t, models.RoleAdmin, resp.Role)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Admin", resp.FirstName)
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/login", "", map[string]string{"login": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodPost, "/login", "", map[string]string{"login": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.doJSON(t, http.MethodPost, "/login", "", map[string]string{"login": "ghost", "password": "whatever"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStudentsRequireToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/students", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStudentCRUD(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	// Missing password is rejected before any write.
	w := env.doJSON(t, http.MethodPost, "/students", admin.Token, map[string]string{
		"first_name": "Alina", "last_name": "Kim", "login": "akim",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodPost, "/students", admin.Token, map[string]string{
		"first_name": "Alina", "last_name": "Kim", "phone": "555-0101", "login": "akim", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.doJSON(t, http.MethodPost, "/students", admin.Token, map[string]string{
		"first_name": "Bolat", "last_name": "Kim", "login": "akim", "password": "secret2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.doJSON(t, http.MethodGet, "/students", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	students := decodeList(t, w)
	require.Len(t, students, 1)
	assert.Equal(t, "akim", students[0]["login"])
	id := int(students[0]["id"].(float64))

	// Partial update touches only the provided field.
	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/students/%d", id), admin.Token, map[string]string{"phone": "555-0202"})
	require.Equal(t, http.StatusOK, w.Code)

	var firstName, phone string
	require.NoError(t, env.db.QueryRow("SELECT first_name, phone FROM students WHERE id = ?", id).Scan(&firstName, &phone))
	assert.Equal(t, "Alina", firstName)
	assert.Equal(t, "555-0202", phone)

	// Empty partial update is an error, not a silent success.
	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/students/%d", id), admin.Token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/students/%d", id), admin.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/students/%d", id), admin.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentsViewAsCoach(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	w := env.doJSON(t, http.MethodPost, "/students", admin.Token, map[string]string{
		"first_name": "Alina", "last_name": "Kim", "login": "akim", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.doJSON(t, http.MethodPost, "/coaches", admin.Token, map[string]string{
		"first_name": "Sergey", "last_name": "Petrov", "login": "spetrov", "password": "coachpass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	coach := env.login(t, "spetrov", "coachpass")
	require.Equal(t, models.RoleCoach, coach.Role)

	// Full student management stays admin-only.
	w = env.doJSON(t, http.MethodGet, "/students", coach.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.doJSON(t, http.MethodGet, "/students/view?search=Ali", coach.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	students := decodeList(t, w)
	require.Len(t, students, 1)
	assert.Equal(t, "Alina", students[0]["first_name"])
	assert.NotContains(t, students[0], "login")
	assert.NotContains(t, students[0], "password")
}

func TestCoachPartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	w := env.doJSON(t, http.MethodPost, "/coaches", admin.Token, map[string]string{
		"full_name": "Sergey Petrov", "phone": "555-0303", "login": "spetrov", "password": "coachpass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.doJSON(t, http.MethodGet, "/coaches", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	coaches := decodeList(t, w)
	require.Len(t, coaches, 1)
	assert.Equal(t, "Sergey", coaches[0]["first_name"])
	assert.Equal(t, "Petrov", coaches[0]["last_name"])
	id := int(coaches[0]["id"].(float64))

	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/coaches/%d", id), admin.Token, map[string]string{"phone": "555-1111"})
	require.Equal(t, http.StatusOK, w.Code)

	var firstName, login, phone string
	require.NoError(t, env.db.QueryRow("SELECT first_name, login, phone FROM coaches WHERE id = ?", id).Scan(&firstName, &login, &phone))
	assert.Equal(t, "555-1111", phone)
	assert.Equal(t, "Sergey", firstName)
	assert.Equal(t, "spetrov", login)
}

func TestSliderLifecycle(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	// Image is mandatory on create.
	w := env.doMultipart(t, http.MethodPost, "/sliders", admin.Token,
		map[string]string{"school_name": "Olympic Reserve"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doMultipart(t, http.MethodPost, "/sliders", admin.Token,
		map[string]string{"school_name": "Olympic Reserve", "description": "Main hall"},
		[]filePart{{field: "image", filename: "hall.jpg", content: "jpeg bytes"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var id int
	var firstImage string
	require.NoError(t, env.db.QueryRow("SELECT id, image_path FROM sliders").Scan(&id, &firstImage))
	assert.True(t, env.fileExists(firstImage))

	// Replacing the image stores the new file and removes the old one.
	w = env.doMultipart(t, http.MethodPut, fmt.Sprintf("/sliders/%d", id), admin.Token,
		nil, []filePart{{field: "image", filename: "new.jpg", content: "new bytes"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var secondImage string
	require.NoError(t, env.db.QueryRow("SELECT image_path FROM sliders WHERE id = ?", id).Scan(&secondImage))
	assert.NotEqual(t, firstImage, secondImage)
	assert.False(t, env.fileExists(firstImage))
	assert.True(t, env.fileExists(secondImage))

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/sliders/%d", id), admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, env.fileExists(secondImage))

	w = env.doJSON(t, http.MethodDelete, "/sliders/9999", admin.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewsCascadeDelete(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	w := env.doMultipart(t, http.MethodPost, "/news", admin.Token,
		map[string]string{"title": "Season opening", "content": "We won"},
		[]filePart{
			{field: "images", filename: "one.jpg", content: "first"},
			{field: "images", filename: "two.jpg", content: "second"},
		})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.doJSON(t, http.MethodGet, "/news", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	posts := decodeList(t, w)
	require.Len(t, posts, 1)
	images := posts[0]["images"].([]interface{})
	require.Len(t, images, 2)
	for _, image := range images {
		assert.True(t, env.fileExists(image.(string)))
	}
	id := int(posts[0]["id"].(float64))

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/news/%d", id), admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int
	require.NoError(t, env.db.QueryRow("SELECT COUNT(*) FROM news_images WHERE news_id = ?", id).Scan(&count))
	assert.Equal(t, 0, count)
	for _, image := range images {
		assert.False(t, env.fileExists(image.(string)))
	}
}

func TestNewsReplaceImages(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	w := env.doMultipart(t, http.MethodPost, "/news", admin.Token,
		map[string]string{"title": "Tournament"},
		[]filePart{{field: "images", filename: "old.jpg", content: "old"}})
	require.Equal(t, http.StatusOK, w.Code)

	var id int
	var oldImage string
	require.NoError(t, env.db.QueryRow("SELECT news_id, image_path FROM news_images").Scan(&id, &oldImage))

	w = env.doMultipart(t, http.MethodPut, fmt.Sprintf("/news/%d", id), admin.Token,
		map[string]string{"replace_images": "true"},
		[]filePart{{field: "images", filename: "new.jpg", content: "new"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	images, err := newsImagePaths(env.db, id)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.False(t, env.fileExists(oldImage))
	assert.True(t, env.fileExists(images[0]))
}

func TestScheduleCRUD(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	w := env.doJSON(t, http.MethodPost, "/training-schedule", admin.Token, map[string]string{"date": "2026-09-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Sport and coach references may be null; the listing renders them
	// as unresolved.
	w = env.doJSON(t, http.MethodPost, "/training-schedule", admin.Token, map[string]interface{}{
		"date": "2026-09-01", "time": "18:00", "room": "A1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = env.doJSON(t, http.MethodPost, "/training-schedule", admin.Token, map[string]interface{}{
		"date": "2026-08-30", "time": "10:00", "room": "B2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodGet, "/training-schedule", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries := decodeList(t, w)
	require.Len(t, entries, 2)
	assert.Equal(t, "2026-08-30", entries[0]["date"])
	assert.Equal(t, "2026-09-01", entries[1]["date"])
	assert.Nil(t, entries[0]["coach_id"])
	assert.Equal(t, "", entries[0]["coach_name"])

	id := int(entries[0]["id"].(float64))
	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/training-schedule/%d", id), admin.Token, map[string]string{"room": "C3"})
	require.Equal(t, http.StatusOK, w.Code)

	var date, room string
	require.NoError(t, env.db.QueryRow("SELECT date, room FROM training_schedule WHERE id = ?", id).Scan(&date, &room))
	assert.Equal(t, "2026-08-30", date)
	assert.Equal(t, "C3", room)
}

func TestResultsOrderedByDateDesc(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	w := env.doMultipart(t, http.MethodPost, "/results", admin.Token,
		map[string]string{"competition_name": "Spring Cup", "date": "2026-04-01"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.doMultipart(t, http.MethodPost, "/results", admin.Token,
		map[string]string{"competition_name": "Autumn Cup", "date": "2026-10-01"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodGet, "/results", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	results := decodeList(t, w)
	require.Len(t, results, 2)
	assert.Equal(t, "Autumn Cup", results[0]["competition_name"])
	assert.Equal(t, "Spring Cup", results[1]["competition_name"])
}

func TestSportTypeDeleteRemovesImage(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	// Image is optional for sport types.
	w := env.doMultipart(t, http.MethodPost, "/sport-types", admin.Token,
		map[string]string{"name": "Chess"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.doMultipart(t, http.MethodPost, "/sport-types", admin.Token,
		map[string]string{"name": "Boxing"},
		[]filePart{{field: "image", filename: "ring.jpg", content: "ring"}})
	require.Equal(t, http.StatusOK, w.Code)

	var id int
	var imagePath string
	require.NoError(t, env.db.QueryRow("SELECT id, image_path FROM sport_types WHERE name = ?", "Boxing").Scan(&id, &imagePath))
	require.True(t, env.fileExists(imagePath))

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/sport-types/%d", id), admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, env.fileExists(imagePath))

	// Deleting the record without an image never errors.
	require.NoError(t, env.db.QueryRow("SELECT id FROM sport_types WHERE name = ?", "Chess").Scan(&id))
	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/sport-types/%d", id), admin.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProfileAndPasswordChange(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	w := env.doJSON(t, http.MethodGet, "/profile", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, models.RoleAdmin, profile["role"])
	assert.Equal(t, "admin", profile["login"])

	w = env.doJSON(t, http.MethodPut, "/profile/update-password", admin.Token, map[string]string{
		"current_password": "wrong", "new_password": "newpass1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.doJSON(t, http.MethodPut, "/profile/update-password", admin.Token, map[string]string{
		"current_password": "admin123", "new_password": "newpass1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := env.login(t, "admin", "newpass1")
	assert.Equal(t, models.RoleAdmin, resp.Role)
}

func TestServeUploadedFile(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	w := env.doMultipart(t, http.MethodPost, "/sliders", admin.Token,
		map[string]string{"school_name": "Olympic Reserve"},
		[]filePart{{field: "image", filename: "hall.jpg", content: "jpeg bytes"}})
	require.Equal(t, http.StatusOK, w.Code)

	var relPath string
	require.NoError(t, env.db.QueryRow("SELECT image_path FROM sliders").Scan(&relPath))

	r := httptest.NewRequest(http.MethodGet, "/uploads/"+relPath, nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(body))

	r = httptest.NewRequest(http.MethodGet, "/uploads/sliders/missing.jpg", nil)
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchIsSubstringMatch(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin", "admin123")

	for _, s := range []struct{ first, login string }{
		{"Alina", "akim"},
		{"Galina", "gkim"},
		{"Boris", "bkim"},
	} {
		w := env.doJSON(t, http.MethodPost, "/students", admin.Token, map[string]string{
			"first_name": s.first, "last_name": "Kim", "login": s.login, "password": "pass",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := env.doJSON(t, http.MethodGet, "/students?search=lina", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	students := decodeList(t, w)
	names := []string{}
	for _, student := range students {
		names = append(names, student["first_name"].(string))
	}
	assert.ElementsMatch(t, []string{"Alina", "Galina"}, names)
}

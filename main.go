package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"sports-school/auth"
	"sports-school/config"
	"sports-school/controllers"
	"sports-school/driver"
	"sports-school/middleware"
	"sports-school/models"
	"sports-school/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	db, err := driver.ConnectDB(cfg.DatabasePath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	if err := driver.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}
	if err := driver.SeedAdmin(db, cfg.DefaultAdminPassword); err != nil {
		logrus.WithError(err).Fatal("failed to seed default admin")
	}

	media, err := storage.New(cfg.UploadDir)
	if err != nil {
		logrus.WithError(err).Fatal("failed to prepare upload directories")
	}

	mgr := auth.NewManager(cfg.Secret, cfg.TokenTTL)

	authController := controllers.AuthController{}
	studentController := controllers.StudentController{}
	coachController := controllers.CoachController{}
	sliderController := controllers.SliderController{}
	newsController := controllers.NewsController{}
	sportTypeController := controllers.SportTypeController{}
	scheduleController := controllers.ScheduleController{}
	resultController := controllers.ResultController{}
	uploadController := controllers.UploadController{}

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

	logrus.WithField("addr", cfg.Addr).Info("server started")
	logrus.Fatal(http.ListenAndServe(cfg.Addr, middleware.CORS(router)))
}

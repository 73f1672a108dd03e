package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/peoplehub/hr-backend-go/internal/config"
	appHTTP "github.com/peoplehub/hr-backend-go/internal/handler/http"
	"github.com/peoplehub/hr-backend-go/internal/pkg/database"
	"github.com/peoplehub/hr-backend-go/internal/pkg/jwt"
	"github.com/peoplehub/hr-backend-go/internal/pkg/oauth"
	"github.com/peoplehub/hr-backend-go/internal/pkg/storage"
	"github.com/peoplehub/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peoplehub/hr-backend-go/internal/service/attendance"
	serviceAuth "github.com/peoplehub/hr-backend-go/internal/service/auth"
	employeeService "github.com/peoplehub/hr-backend-go/internal/service/employee"
	"github.com/peoplehub/hr-backend-go/internal/service/file"
	timeoffService "github.com/peoplehub/hr-backend-go/internal/service/timeoff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	requestRepo := postgresql.NewTimeOffRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRecordRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	authService := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	ledger := timeoffService.NewBalanceLedger(requestRepo)
	requestService := timeoffService.NewRequestService(requestRepo, userRepo, ledger)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo)
	employeeSvc := employeeService.NewEmployeeService(userRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL)
	timeOffHandler := appHTTP.NewTimeOffHandler(requestService, fileService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		timeOffHandler,
		attendanceHandler,
		employeeHandler,
		cfg.App.FrontendURL,
		cfg.Storage.BasePath,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

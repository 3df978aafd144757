package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/chiliososada/ems-backend-go/internal/config"
	appHTTP "github.com/chiliososada/ems-backend-go/internal/handler/http"
	"github.com/chiliososada/ems-backend-go/internal/pkg/database"
	"github.com/chiliososada/ems-backend-go/internal/pkg/jwt"
	"github.com/chiliososada/ems-backend-go/internal/pkg/storage"
	"github.com/chiliososada/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/chiliososada/ems-backend-go/internal/service/attendance"
	"github.com/chiliososada/ems-backend-go/internal/service/file"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, fileService)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, fileService)

	router := appHTTP.NewRouter(jwtService, attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

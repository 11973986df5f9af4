package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"api/auth"
	"api/database"
	"api/handlers"
	"api/logger"
	"api/repositories"
	"api/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Println("No .env file found, using system environment variables.")
	}

	logger.InitLogger()

	if err := auth.InitJWTSecret(); err != nil {
		logrus.Fatal(err)
	}

	db, err := database.New(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
	)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db.DB); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db.DB)
	messageRepo := repositories.NewMessageRepository(db.DB)

	userHandler := handlers.NewUserHandler(userRepo, messageRepo)
	messageHandler := handlers.NewMessageHandler(messageRepo, userRepo)
	healthHandler := handlers.NewHealthHandler()

	router := routes.SetupRoutes(userHandler, messageHandler, healthHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}

	logrus.Println("Server running on port", port)
	logrus.Fatal(http.ListenAndServe(":"+port, router))
}

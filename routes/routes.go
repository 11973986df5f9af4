package routes

import (
	"api/handlers"
	"api/monitoring"

	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(userHandler *handlers.UserHandler, messageHandler *handlers.MessageHandler, healthHandler *handlers.HealthHandler) http.Handler {
	router := mux.NewRouter()

	// Auth routes
	router.HandleFunc("/register", userHandler.Register).Methods("POST")
	router.HandleFunc("/login", userHandler.Login).Methods("POST")

	// User routes
	router.HandleFunc("/users", userHandler.ListUsers).Methods("GET")
	router.HandleFunc("/users/follow/{followID}", userHandler.FollowUser).Methods("POST")
	router.HandleFunc("/users/unfollow/{followID}", userHandler.UnfollowUser).Methods("POST")
	router.HandleFunc("/users/{userID}", userHandler.GetProfile).Methods("GET")
	router.HandleFunc("/users/{userID}/followers", userHandler.GetFollowers).Methods("GET")
	router.HandleFunc("/users/{userID}/following", userHandler.GetFollowing).Methods("GET")
	router.HandleFunc("/users/{userID}/update", userHandler.UpdateProfile).Methods("POST")
	router.HandleFunc("/users/{userID}/delete", userHandler.DeleteUser).Methods("POST")
	router.HandleFunc("/users/{userID}/messages", messageHandler.CreateMessage).Methods("POST")

	// Message routes
	router.HandleFunc("/messages/{messageID}", messageHandler.GetMessage).Methods("GET")
	router.HandleFunc("/messages/{messageID}/delete", messageHandler.DeleteMessage).Methods("POST")
	router.HandleFunc("/messages/{messageID}/like", messageHandler.LikeMessage).Methods("POST")
	router.HandleFunc("/messages/{messageID}/unlike", messageHandler.UnlikeMessage).Methods("POST")
	router.HandleFunc("/messages/{messageID}/comments", messageHandler.GetComments).Methods("GET")
	router.HandleFunc("/messages/{messageID}/comments", messageHandler.CreateComment).Methods("POST")

	// System routes
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")

	// Add metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return monitoring.InstrumentHandler(router)
}

package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/friendlink/friendlink/internal/config"
	"github.com/friendlink/friendlink/internal/database"
	"github.com/friendlink/friendlink/internal/handlers"
	"github.com/friendlink/friendlink/internal/repository"
	"github.com/friendlink/friendlink/internal/services"
	"github.com/friendlink/friendlink/pkg/logger"
	"github.com/friendlink/friendlink/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Load configuration from .env file
	cfg := config.LoadConfig()

	// Connect to MongoDB; the connection is shared by all handlers and held
	// for the lifetime of the process.
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewFriendRequestRepository(db)
	listRepo := repository.NewFriendListRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo)
	friendService := services.NewFriendService(requestRepo, listRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService)
	friendHandler := handlers.NewFriendHandler(friendService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	router.HandleFunc("/users", userHandler.GetUsersHandler).Methods("GET")

	// Friend request routes
	router.HandleFunc("/friend-requests", friendHandler.CreateRequestHandler).Methods("POST")
	router.HandleFunc("/friend-requests/accept", friendHandler.AcceptRequestHandler).Methods("POST")
	router.HandleFunc("/friend-requests/reject", friendHandler.RejectRequestHandler).Methods("POST")
	router.HandleFunc("/friend-requests/{email}", friendHandler.GetRequestsHandler).Methods("GET")

	// Friend list routes
	router.HandleFunc("/friend-list", friendHandler.GetFriendListHandler).Methods("GET")
	router.HandleFunc("/unfriend/{id}", friendHandler.UnfriendHandler).Methods("DELETE")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

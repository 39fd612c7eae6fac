package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/dstanic/tasknest/internal/config"
	"github.com/dstanic/tasknest/internal/database"
	mongorepo "github.com/dstanic/tasknest/internal/repository/mongodb"
	"github.com/dstanic/tasknest/internal/service"
	"github.com/dstanic/tasknest/internal/transport/http/handlers"
	"github.com/dstanic/tasknest/internal/transport/http/middleware"
	"github.com/dstanic/tasknest/internal/transport/ws"
	"github.com/dstanic/tasknest/pkg/eventlog"
)

func main() {
	cfg := config.Load()

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Client().Disconnect(context.Background())
	log.Println("Connected to database")

	// File-backed request/error logs
	evl := eventlog.New(cfg.LogDir)

	// Change feed
	hub := ws.NewHub()
	go hub.Run()
	notifier := ws.NewHubNotifier(hub)

	// Repositories
	userRepo := mongorepo.NewUserRepo(db)
	taskRepo := mongorepo.NewTaskRepo(db)

	// Services
	userService := service.NewUserService(userRepo, taskRepo, notifier)
	taskService := service.NewTaskService(taskRepo, userRepo, notifier)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)

	// Handlers
	userHandler := handlers.NewUserHandler(userService, evl)
	taskHandler := handlers.NewTaskHandler(taskService, evl)
	authHandler := handlers.NewAuthHandler(authService, evl)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	mux.HandleFunc("POST /auth/login", authHandler.Login)

	mux.HandleFunc("GET /users", userHandler.List)
	mux.HandleFunc("POST /users", userHandler.Create)
	mux.HandleFunc("PATCH /users", userHandler.Update)
	mux.HandleFunc("DELETE /users", userHandler.Delete)

	mux.HandleFunc("GET /tasks", taskHandler.List)
	mux.HandleFunc("POST /tasks", taskHandler.Create)
	mux.HandleFunc("PATCH /tasks", taskHandler.Update)
	mux.HandleFunc("DELETE /tasks", taskHandler.Delete)

	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret))

	// Request log runs first, then the CORS gate, then the panic guard.
	handler := middleware.RequestLog(evl)(middleware.CORS(cfg.AllowedOrigins)(middleware.Recover(evl)(mux)))

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

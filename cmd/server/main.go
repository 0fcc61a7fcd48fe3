package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/skillpassport/backend/internal/chatbot"
	"github.com/skillpassport/backend/internal/config"
	"github.com/skillpassport/backend/internal/database"
	postgresrepo "github.com/skillpassport/backend/internal/repository/postgres"
	redisrepo "github.com/skillpassport/backend/internal/repository/redis"
	"github.com/skillpassport/backend/internal/service"
	"github.com/skillpassport/backend/internal/storage"
	"github.com/skillpassport/backend/internal/transport/http/handlers"
	"github.com/skillpassport/backend/internal/transport/http/middleware"
	"github.com/skillpassport/backend/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Redis
	redisClient, err := redisrepo.Connect(cfg.RedisURL)
	if err != nil {
		log.Fatal(err)
	}
	defer redisClient.Close()
	log.Println("Connected to redis")

	// File storage
	store, err := storage.NewDiskStore(cfg.StorageDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	profileRepo := postgresrepo.NewProfileRepo(pool)
	credentialRepo := postgresrepo.NewCredentialRepo(pool)
	connectionRepo := postgresrepo.NewConnectionRepo(pool)
	draftStore := redisrepo.NewDraftStore(redisClient)
	prefStore := redisrepo.NewPrefStore(redisClient)

	// WebSocket hub for connection notifications
	hub := ws.NewHub()
	go hub.Run()
	notifier := ws.NewHubNotifier(hub)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	profileService := service.NewProfileService(profileRepo, userRepo, store)
	credentialService := service.NewCredentialService(credentialRepo, connectionRepo, store)
	connectionService := service.NewConnectionService(connectionRepo, userRepo, notifier)
	wizardService := service.NewWizardService(draftStore, credentialRepo, store)
	prefsService := service.NewPrefsService(prefStore, profileRepo)
	conversations := chatbot.NewConversations()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService, connectionService)
	credentialHandler := handlers.NewCredentialHandler(credentialService)
	connectionHandler := handlers.NewConnectionHandler(connectionService)
	wizardHandler := handlers.NewWizardHandler(wizardService)
	prefsHandler := handlers.NewPrefsHandler(prefsService)
	chatbotHandler := handlers.NewChatbotHandler(conversations)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/themes", prefsHandler.Themes)
	mux.Handle("GET /files/", store.Handler())

	// Protected - Auth
	mux.Handle("GET /api/v1/auth/me", auth(http.HandlerFunc(authHandler.Me)))
	mux.Handle("PUT /api/v1/auth/password", auth(http.HandlerFunc(authHandler.ChangePassword)))

	// Protected - Profiles
	mux.Handle("GET /api/v1/profile", auth(http.HandlerFunc(profileHandler.GetMine)))
	mux.Handle("PATCH /api/v1/profile", auth(http.HandlerFunc(profileHandler.Update)))
	mux.Handle("POST /api/v1/profile/avatar", auth(http.HandlerFunc(profileHandler.UploadAvatar)))
	mux.Handle("GET /api/v1/profiles/{id}", auth(http.HandlerFunc(profileHandler.GetByID)))

	// Protected - Credentials
	mux.Handle("GET /api/v1/credentials", auth(http.HandlerFunc(credentialHandler.List)))
	mux.Handle("POST /api/v1/credentials", auth(http.HandlerFunc(credentialHandler.Create)))
	mux.Handle("POST /api/v1/credentials/evidence", auth(http.HandlerFunc(credentialHandler.UploadEvidence)))
	mux.Handle("DELETE /api/v1/credentials/{id}", auth(http.HandlerFunc(credentialHandler.Delete)))
	mux.Handle("GET /api/v1/stats", auth(http.HandlerFunc(credentialHandler.Stats)))

	// Protected - Credential wizard
	mux.Handle("POST /api/v1/credentials/wizard", auth(http.HandlerFunc(wizardHandler.Start)))
	mux.Handle("GET /api/v1/credentials/wizard/meta", auth(http.HandlerFunc(credentialHandler.Meta)))
	mux.Handle("GET /api/v1/credentials/wizard/{id}", auth(http.HandlerFunc(wizardHandler.Get)))
	mux.Handle("PUT /api/v1/credentials/wizard/{id}/step", auth(http.HandlerFunc(wizardHandler.SubmitStep)))
	mux.Handle("PUT /api/v1/credentials/wizard/{id}/back", auth(http.HandlerFunc(wizardHandler.Back)))
	mux.Handle("PUT /api/v1/credentials/wizard/{id}/file", auth(http.HandlerFunc(wizardHandler.StageFile)))
	mux.Handle("POST /api/v1/credentials/wizard/{id}/submit", auth(http.HandlerFunc(wizardHandler.Submit)))

	// Protected - Connections
	mux.Handle("GET /api/v1/connections", auth(http.HandlerFunc(connectionHandler.ListAccepted)))
	mux.Handle("GET /api/v1/connections/requests", auth(http.HandlerFunc(connectionHandler.ListRequestsReceived)))
	mux.Handle("GET /api/v1/connections/sent", auth(http.HandlerFunc(connectionHandler.ListRequestsSent)))
	mux.Handle("GET /api/v1/connections/discover", auth(http.HandlerFunc(connectionHandler.ListDiscoverable)))
	mux.Handle("POST /api/v1/connections", auth(http.HandlerFunc(connectionHandler.SendRequest)))
	mux.Handle("PUT /api/v1/connections/{id}/accept", auth(http.HandlerFunc(connectionHandler.Accept)))
	mux.Handle("PUT /api/v1/connections/{id}/reject", auth(http.HandlerFunc(connectionHandler.Reject)))
	mux.Handle("DELETE /api/v1/connections/{id}", auth(http.HandlerFunc(connectionHandler.Disconnect)))

	// Protected - Client prefs
	mux.Handle("GET /api/v1/prefs", auth(http.HandlerFunc(prefsHandler.Get)))
	mux.Handle("PUT /api/v1/prefs", auth(http.HandlerFunc(prefsHandler.Set)))

	// Protected - Chatbot
	mux.Handle("POST /api/v1/chatbot/conversations", auth(http.HandlerFunc(chatbotHandler.Open)))
	mux.Handle("POST /api/v1/chatbot/conversations/{id}/messages", auth(http.HandlerFunc(chatbotHandler.Send)))
	mux.Handle("GET /api/v1/chatbot/conversations/{id}/messages", auth(http.HandlerFunc(chatbotHandler.Messages)))
	mux.Handle("DELETE /api/v1/chatbot/conversations/{id}", auth(http.HandlerFunc(chatbotHandler.Close)))

	// WebSocket (token auth via query param)
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}

// internal/agent/routes.go

package agent

import (
	"github.com/gorilla/mux"

	"github.com/tundeajayi/sparkmatch-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, hub *Hub, authMiddleware *auth.Middleware) {
	router.HandleFunc("/health", handler.Health).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authMiddleware.Authenticate)

	// Users
	api.HandleFunc("/users", handler.CreateUser).Methods("POST")
	api.HandleFunc("/users/{id}", handler.GetUser).Methods("GET")
	api.HandleFunc("/users/{id}/preferences", handler.GetPreferences).Methods("GET")

	// Matching
	api.HandleFunc("/matches/analyze", handler.AnalyzeMatches).Methods("POST")

	// Conversations
	api.HandleFunc("/conversations", handler.StartConversation).Methods("POST")
	api.HandleFunc("/conversations/{id}", handler.GetConversation).Methods("GET")
	api.HandleFunc("/conversations/{id}/messages", handler.GetMessages).Methods("GET")
	api.HandleFunc("/conversations/{id}/analysis", handler.GetAnalysis).Methods("GET")
	api.HandleFunc("/conversations/{id}/starters", handler.Starters).Methods("POST")
	api.HandleFunc("/chat", handler.Chat).Methods("POST")

	// Preference analysis
	api.HandleFunc("/preferences/analyze-behavior", handler.AnalyzeBehavior).Methods("POST")

	// Live chat stream
	api.HandleFunc("/ws", hub.HandleWebSocket).Methods("GET")
}

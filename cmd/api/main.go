// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	// Internal packages
	"github.com/tundeajayi/sparkmatch-backend/internal/agent"
	"github.com/tundeajayi/sparkmatch-backend/internal/auth"
	"github.com/tundeajayi/sparkmatch-backend/internal/common/database"
	"github.com/tundeajayi/sparkmatch-backend/internal/config"
	"github.com/tundeajayi/sparkmatch-backend/internal/conversation"
	"github.com/tundeajayi/sparkmatch-backend/internal/generation"
	"github.com/tundeajayi/sparkmatch-backend/internal/matching"
	"github.com/tundeajayi/sparkmatch-backend/internal/profile"
)

func main() {
	// Enable detailed logging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting SparkMatch Dating Agent API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg := config.Load()
	log.Println("✅ Configuration loaded")

	// 3. Validate configuration
	log.Println("\n✔️  Step 3: Validating configuration...")
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed:", err)
	}
	log.Println("✅ Configuration is valid")

	// 4. Connect to PostgreSQL (optional; falls back to in-memory storage)
	log.Println("\n🗄️  Step 4: Connecting to PostgreSQL...")
	var profileRepo profile.Repository

	if cfg.DatabaseURL != "" {
		db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("❌ Failed to connect to PostgreSQL:", err)
		}
		defer db.Close()

		if err := runMigrations(db); err != nil {
			log.Fatal("❌ Failed to run migrations:", err)
		}

		profileRepo = profile.NewPostgresRepository(sqlx.NewDb(db, "postgres"))
		log.Println("✅ Connected to PostgreSQL successfully")
	} else {
		profileRepo = profile.NewMemoryRepository()
		log.Println("⚠️  DATABASE_URL not configured, using in-memory profile storage")
	}

	// 5. Connect to Redis (optional)
	log.Println("\n📮 Step 5: Connecting to Redis...")
	var store conversation.Store

	if cfg.UseRedis {
		redisClient, err := database.NewRedisClientFromURL(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable (%v), using in-memory conversations", err)
			store = conversation.NewMemoryStore(cfg.HistoryLimit)
		} else {
			defer redisClient.Close()
			store = conversation.NewRedisStore(redisClient, cfg.HistoryLimit, cfg.ConversationTTL)
			log.Println("✅ Connected to Redis successfully")
		}
	} else {
		store = conversation.NewMemoryStore(cfg.HistoryLimit)
		log.Println("⚠️  Redis disabled, using in-memory conversations")
	}

	// 6. Initialize AI generation
	log.Println("\n🤖 Step 6: Initializing message generation...")
	var generator generation.Generator

	if cfg.GeminiAPIKey != "" {
		gemini, err := generation.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("⚠️  Gemini init failed (%v), using fallback messages only", err)
		} else {
			generator = gemini
			log.Printf("✅ Gemini generator ready (model: %s)", gemini.Model())
		}
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set, using fallback messages only")
	}
	fallback := generation.NewFallbackGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))

	// 7. Build services
	log.Println("\n🧩 Step 7: Building services...")
	profileService := profile.NewService(profileRepo)
	engine := matching.NewEngine(
		matching.WithMinScore(cfg.MinMatchScore),
		matching.WithScoreWorkers(cfg.ScoreWorkers),
	)
	analyzer := conversation.NewAnalyzer()
	agentService := agent.NewService(profileService, engine, store, analyzer, generator, fallback, cfg.MatchLimit)
	log.Println("✅ Services ready")

	// 8. Auth
	log.Println("\n🔐 Step 8: Setting up auth...")
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry)
	authMiddleware := auth.NewMiddleware(tokens)
	log.Println("✅ Auth ready")

	// 9. Routes
	log.Println("\n🛣️  Step 9: Registering routes...")
	router := mux.NewRouter()

	hub := agent.NewHub(agentService)
	go hub.Run()

	handler := agent.NewHandler(agentService)
	agent.RegisterRoutes(router, handler, hub, authMiddleware)
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	log.Println("✅ Routes registered")

	// Add middleware
	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)

	// 10. Start conversation cleanup scheduler
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	scheduler := conversation.NewScheduler(store, cfg.CleanupInterval, cfg.InactivityCutoff)
	scheduler.Start(schedulerCtx)

	// 11. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("\n========================================")
		log.Printf("🚀 Server starting on http://localhost%s", srv.Addr)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Println("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n⚠️  Shutdown signal received...")

	hub.Stop()
	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

// Middleware functions

// loggingMiddleware logs all requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log.Printf("→ %s %s from %s", r.Method, r.RequestURI, r.RemoteAddr)

		// Wrap response writer to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		log.Printf("← %s %s [%d] %v", r.Method, r.RequestURI, wrapped.statusCode, duration)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// runMigrations executes database migrations
func runMigrations(db *sql.DB) error {
	log.Println("   - Creating/updating tables...")

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id UUID PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			age INTEGER NOT NULL,
			location VARCHAR(200),
			bio TEXT,
			photos TEXT[] DEFAULT '{}',
			hobbies TEXT[] DEFAULT '{}',
			music_genres TEXT[] DEFAULT '{}',
			personality_types TEXT[] DEFAULT '{}',
			behavior_signals TEXT[] DEFAULT '{}',
			lifestyle TEXT[] DEFAULT '{}',
			deal_breakers TEXT[] DEFAULT '{}',
			must_haves TEXT[] DEFAULT '{}',
			age_range_min INTEGER DEFAULT 0,
			age_range_max INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_profiles_updated_at ON profiles(updated_at DESC)`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("   ✅ Tables ready")
	return nil
}

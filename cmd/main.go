package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"IrisCare/config"
	"IrisCare/database"
	"IrisCare/jobs"
	"IrisCare/repositories"
	"IrisCare/routes"
	"IrisCare/services"
	"IrisCare/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	kv, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	// Postgres is optional. Without DB_URL all collections live in the
	// key-value store, which is the default single-machine setup.
	var db *gorm.DB
	if cfg.DBURL != "" {
		db, err = database.InitDB(context.Background(), cfg.DBURL)
		if err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
	}

	patientRepo, professionalRepo, _ := repositories.NewRepositories(kv, db)

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		services.SeedSampleData(context.Background(), patientRepo, professionalRepo)
	}

	scheduler := jobs.StartDailyScheduler(patientRepo)
	defer scheduler.Stop()

	handler := routes.SetupRoutes(kv, cfg, db)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Printf("Starting server on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait()
	log.Println("Server exited gracefully")
}

// openStorage picks the session/record store backend. REDIS_URL selects Redis;
// otherwise records live in a local JSON file.
func openStorage(cfg *config.AppConfig) (storage.KV, error) {
	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client)
	}
	return storage.NewFileStore(cfg.StoragePath)
}

// loadConfig reads configuration from environment variables. Everything has a
// workable default for a single-machine install; only hardened deployments
// need to set the token and session key.
func loadConfig() (*config.AppConfig, error) {
	sessionKey := getEnv("SESSION_KEY", "iriscare.default.session.key.32b")
	if len(sessionKey) != 32 {
		return nil, errors.New("SESSION_KEY must be exactly 32 bytes")
	}

	sessionTTL := config.DefaultSessionTTL
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.New("invalid SESSION_TTL duration")
		}
		sessionTTL = parsed
	}

	return &config.AppConfig{
		Port:           getEnv("PORT", "8930"),
		StoragePath:    getEnv("STORAGE_PATH", "data/iriscare.json"),
		RedisURL:       os.Getenv("REDIS_URL"),
		DBURL:          os.Getenv("DB_URL"),
		BearerToken:    os.Getenv("BEARER_TOKEN"),
		AdminUsername:  getEnv("ADMIN_USERNAME", "irisaves"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "iris123Aa"),
		SessionKey:     []byte(sessionKey),
		SessionTTL:     sessionTTL,
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting, read once at boot.
type Config struct {
	MongoURI     string
	MongoDB      string
	JWTSecret    string
	JWTExpire    time.Duration
	CookieExpire time.Duration
	ClientURL    string
	Port         string
	UploadDir    string
	Env          string
}

// Load reads .env (if present) and the process environment.
// Missing required values are fatal: the server cannot run without them.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := Config{
		MongoURI:     os.Getenv("MONGO_URI"),
		MongoDB:      getEnv("MONGO_DB", "intranet"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpire:    durationEnv("JWT_EXPIRE", 24*time.Hour),
		CookieExpire: time.Duration(intEnv("JWT_COOKIE_EXPIRE", 1)) * 24 * time.Hour,
		ClientURL:    getEnv("CLIENT_URL", "http://localhost:3000"),
		Port:         getEnv("PORT", "5000"),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		Env:          getEnv("APP_ENV", "development"),
	}

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}

// Production reports whether the server runs in production mode.
// Error responses omit stack details when it does.
func (c Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, v)
	}
	return n
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("%s must be a duration such as 24h, got %q", key, v)
	}
	return d
}

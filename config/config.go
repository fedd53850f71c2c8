package config

import (
	"crypto/rand"
	"log"
	"os"
)

// Config carries everything the frontend needs from the environment:
// where the API backend and push server live, the public Razorpay key,
// Google OAuth credentials, and the session signing secret.
type Config struct {
	Port          string
	BackendURL    string
	PushURL       string
	RazorpayKeyID string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	SessionSecret []byte
	RedisAddr     string

	UploadDir string
	BaseURL   string
}

func Load() *Config {
	cfg := &Config{
		Port:               getEnv("PORT", ":8080"),
		BackendURL:         getEnv("BACKEND_URL", "http://localhost:4000"),
		PushURL:            getEnv("PUSH_URL", "ws://localhost:4000/ws"),
		RazorpayKeyID:      os.Getenv("RAZORPAY_KEY_ID"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		UploadDir:          getEnv("UPLOAD_DIR", "./static/uploads"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:8080"),
	}

	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}
	cfg.GoogleRedirectURL = getEnv("GOOGLE_REDIRECT_URL", cfg.BaseURL+"/auth/google/callback")

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Println("SESSION_SECRET not set; generating a throwaway key, sessions will not survive restarts")
		cfg.SessionSecret = randomBytes(32)
	} else {
		cfg.SessionSecret = []byte(secret)
	}

	if cfg.RazorpayKeyID == "" {
		log.Println("RAZORPAY_KEY_ID not set; checkout overlay will fail to open")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("failed to read random bytes: %v", err)
	}
	return b
}

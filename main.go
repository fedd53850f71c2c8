package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"stytchup/auth"
	"stytchup/backend"
	"stytchup/config"
	"stytchup/designers"
	"stytchup/designs"
	"stytchup/home"
	"stytchup/inbox"
	"stytchup/middleware"
	"stytchup/orders"
	"stytchup/payments"
	"stytchup/profile"
	"stytchup/ratelim"
	"stytchup/realtime"
	"stytchup/routes"
	"stytchup/session"
	"stytchup/uploads"
	"stytchup/web"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s - %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg := config.Load()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	sessions := session.NewManager(cfg.SessionSecret, rdb, strings.HasPrefix(cfg.BaseURL, "https://"))
	guard := middleware.NewAuth(sessions)
	api := backend.New(cfg.BackendURL)
	rateLimiter := ratelim.NewRateLimiter()

	views := web.NewTemplates()
	if err := views.Load("templates"); err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}

	// one upstream push connection, fanned out to browser viewers
	hub := realtime.NewHub()
	upstream := realtime.NewUpstream(cfg.PushURL, hub)
	go hub.Run()
	go upstream.Run()

	app := &routes.App{
		Auth: &auth.Handlers{
			Backend:  api,
			Sessions: sessions,
			Views:    views,
			Google: auth.GoogleConfig{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				RedirectURL:  cfg.GoogleRedirectURL,
			},
		},
		Home:      &home.Handlers{Backend: api, Views: views},
		Designs:   &designs.Handlers{Backend: api, Views: views, RazorpayKeyID: cfg.RazorpayKeyID},
		Designers: &designers.Handlers{Backend: api, Views: views},
		Orders:    &orders.Handlers{Backend: api, Views: views},
		Inbox:     &inbox.Handlers{Backend: api, Views: views, Hub: hub, RazorpayKeyID: cfg.RazorpayKeyID},
		Payments:  &payments.Handlers{Backend: api},
		Profile:   &profile.Handlers{Backend: api, Views: views},
		Uploads:   &uploads.Handlers{Dir: cfg.UploadDir},
		Guard:     guard,
		Hub:       hub,
		Limiter:   rateLimiter,
		UploadDir: cfg.UploadDir,
	}

	router := httprouter.New()
	router.GET("/health", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.Write([]byte("200"))
	})
	routes.Register(router, app)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.BaseURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("Shutting down realtime bridge...")
		upstream.Stop()
		hub.Stop()
	})

	go func() {
		log.Printf("StytchUp listening on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
	if err := rdb.Close(); err != nil {
		log.Printf("Redis close: %v", err)
	}
	log.Println("Server stopped")
}

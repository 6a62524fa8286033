package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/courtside/booking-engine/internal/config"
	"github.com/courtside/booking-engine/internal/handler"
	"github.com/courtside/booking-engine/internal/repository"
	"github.com/courtside/booking-engine/internal/service"
	"github.com/courtside/booking-engine/pkg/response"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize repositories
	policyRepo := repository.NewPolicyRepository(db)
	debtRepo := repository.NewDebtRepository(db)
	discountRepo := repository.NewDiscountRepository(db)

	// Initialize service and handlers
	paymentService := service.NewPaymentService(policyRepo, debtRepo, discountRepo, redisClient, cfg)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	policyHandler := handler.NewPolicyHandler(paymentService)
	healthHandler := handler.NewHealthHandler(db, redisClient, cfg.GetHealthTimeout())

	// Setup routes
	router := setupRoutes(paymentHandler, policyHandler, healthHandler)

	// Start server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}

	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(paymentHandler *handler.PaymentHandler, policyHandler *handler.PolicyHandler, healthHandler *handler.HealthHandler) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.LoggingMiddleware)
	router.Use(response.CORSMiddleware)

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/bookings/quote", paymentHandler.Quote).Methods("POST")
	api.HandleFunc("/bookings/validate-window", paymentHandler.ValidateWindow).Methods("POST")
	api.HandleFunc("/bookings/cancellation-preview", paymentHandler.CancellationPreview).Methods("POST")
	api.HandleFunc("/bookings/no-show", paymentHandler.NoShow).Methods("POST")

	api.HandleFunc("/establishments/{establishmentId}/policy", policyHandler.Get).Methods("GET")
	api.HandleFunc("/establishments/{establishmentId}/policy", policyHandler.Update).Methods("PUT")

	api.HandleFunc("/clients/{clientId}/establishments/{establishmentId}/debts", paymentHandler.Debts).Methods("GET")
	api.HandleFunc("/debts/settle", paymentHandler.SettleDebts).Methods("POST")

	return router
}

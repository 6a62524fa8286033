package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/courtside/booking-engine/internal/config"
	"github.com/courtside/booking-engine/internal/repository"
	"github.com/courtside/booking-engine/internal/service"
)

func main() {
	log.Println("Starting booking-engine scheduler...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	policyRepo := repository.NewPolicyRepository(db)
	debtRepo := repository.NewDebtRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	paymentService := service.NewPaymentService(policyRepo, debtRepo, discountRepo, redisClient, cfg)

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		log.Fatalf("Invalid scheduler timezone %q: %v", cfg.Scheduler.Timezone, err)
	}

	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))
	setupCronJobs(c, cfg, paymentService)

	c.Start()
	log.Println("Scheduler started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	c.Stop()
	log.Println("Scheduler stopped")
}

func setupCronJobs(c *cron.Cron, cfg *config.Config, paymentService *service.PaymentService) {
	// Daily pass over clients with unsettled debt
	_, err := c.AddFunc(cfg.Scheduler.DebtReminderSpec, func() {
		log.Println("Running outstanding-debt reminder job...")
		remindOutstandingDebtors(paymentService)
	})
	if err != nil {
		log.Printf("Error scheduling debt reminder job: %v", err)
	}

	// Periodic policy cache warm-up so quote latency stays flat after expiry
	_, err = c.AddFunc(cfg.Scheduler.CacheRefreshSpec, func() {
		log.Println("Running policy cache refresh job...")
		refreshPolicyCache(paymentService)
	})
	if err != nil {
		log.Printf("Error scheduling cache refresh job: %v", err)
	}

	log.Println("Cron jobs scheduled successfully")
}

func remindOutstandingDebtors(paymentService *service.PaymentService) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	debtors, err := paymentService.OutstandingDebtors(ctx)
	if err != nil {
		log.Printf("Debt reminder pass failed: %v", err)
		return
	}

	for _, debtor := range debtors {
		// notification delivery belongs to the messaging platform; this job
		// only surfaces the ledger
		log.Printf("Outstanding debt: client %s owes %s at establishment %s",
			debtor.ClientID, debtor.TotalDebt, debtor.EstablishmentID)
	}
	log.Printf("Debt reminder pass complete, %d debtors", len(debtors))
}

func refreshPolicyCache(paymentService *service.PaymentService) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := paymentService.RefreshPolicyCache(ctx); err != nil {
		log.Printf("Policy cache refresh failed: %v", err)
		return
	}
	log.Println("Policy cache refresh complete")
}

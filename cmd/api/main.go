package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bank-mobile-api/internal/config"
	"github.com/bank-mobile-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/bank-mobile-api/internal/infrastructure/jwt"
	"github.com/bank-mobile-api/internal/infrastructure/smtp"
	"github.com/bank-mobile-api/internal/infrastructure/sns"
	"github.com/bank-mobile-api/internal/otp"
	"github.com/bank-mobile-api/internal/pkg/handle"
	transporthttp "github.com/bank-mobile-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// Both secrets gate customer data; refuse to start without them.
	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatalf("JWT provider: %v", err)
	}
	codec, err := handle.NewCodec([]byte(cfg.HandleSecret))
	if err != nil {
		log.Fatalf("account handle codec: %v", err)
	}

	// SNS SMS sender (optional — email fallback covers delivery).
	var smsSender sns.SMSSender
	if sender, err := sns.NewSender(cfg); err == nil {
		smsSender = sender
	} else {
		log.Printf("WARN: SNS sender not available: %v", err)
	}

	deps := &transporthttp.Deps{
		Customers:    dynamo.NewCustomerRepo(dynamoClient, cfg.DynamoTables.Customers),
		Accounts:     dynamo.NewAccountRepo(dynamoClient, cfg.DynamoTables.Accounts),
		Transactions: dynamo.NewTransactionRepo(dynamoClient, cfg.DynamoTables.Transactions),
		OTPs:         otp.NewStore(),
		Codec:        codec,
		JWTProvider:  jwtProvider,
		SMS:          smsSender,
		Mailer:       smtp.NewMailer(cfg),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}

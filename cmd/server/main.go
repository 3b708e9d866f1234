package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shopcore/customer-service/internal/config"
	"github.com/shopcore/customer-service/internal/controller"
	"github.com/shopcore/customer-service/internal/db"
	"github.com/shopcore/customer-service/internal/events"
	"github.com/shopcore/customer-service/internal/logging"
	"github.com/shopcore/customer-service/internal/messages"
	"github.com/shopcore/customer-service/internal/repository"
	"github.com/shopcore/customer-service/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on OS environment variables")
	}
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	catalog, err := messages.Load(cfg.MessagesFile)
	if err != nil {
		logger.Fatal("failed to load message catalog", zap.Error(err))
	}
	// A missing key is a deployment defect; fail at boot, not per request.
	if err := catalog.Require(messages.EndpointKeys()...); err != nil {
		logger.Fatal("message catalog incomplete", zap.Error(err))
	}

	conn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer conn.Close()

	var publisher events.Publisher
	if cfg.AMQPURL != "" {
		amqpPub, err := events.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			logger.Fatal("failed to connect to broker", zap.Error(err))
		}
		defer amqpPub.Close()
		publisher = amqpPub
	} else {
		logger.Info("AMQP_URL not set, using in-process event publisher")
		publisher = events.NewMemory(logger)
	}

	customerRepo := &repository.CustomerRepository{DB: conn}
	customerService := service.NewCustomerService(customerRepo, publisher, logger)
	customerController := controller.NewCustomerController(customerService, catalog, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	customerController.Routes(r)

	logger.Info("server running", zap.String("addr", cfg.HTTPAddr))
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

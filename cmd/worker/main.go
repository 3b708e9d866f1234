package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/joho/godotenv"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/shopcore/customer-service/internal/config"
	"github.com/shopcore/customer-service/internal/db"
	"github.com/shopcore/customer-service/internal/events"
	"github.com/shopcore/customer-service/internal/logging"
	"github.com/shopcore/customer-service/internal/repository"
)

// The worker drains the customer events queue and records each event
// into the customer_audit table.
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

	conn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer conn.Close()
	auditRepo := &repository.AuditRepository{DB: conn}

	amqpConn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		logger.Fatal("failed to connect to broker", zap.Error(err))
	}
	defer amqpConn.Close()

	ch, err := amqpConn.Channel()
	if err != nil {
		logger.Fatal("failed to open channel", zap.Error(err))
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		events.QueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		logger.Fatal("failed to declare queue", zap.Error(err))
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Fatal("failed to register consumer", zap.Error(err))
	}

	logger.Info("worker running, waiting for customer events")
	for d := range msgs {
		var ev events.CustomerEvent
		if err := json.Unmarshal(d.Body, &ev); err != nil {
			logger.Error("dropping malformed event", zap.Error(err))
			d.Ack(false)
			continue
		}

		if err := auditRepo.Record(context.Background(), ev); err != nil {
			logger.Error("failed to record event",
				zap.String("action", ev.Action),
				zap.String("customer_id", ev.CustomerID),
				zap.Error(err))
			// One redelivery, then drop rather than loop forever.
			if !d.Redelivered {
				d.Nack(false, true)
			} else {
				d.Ack(false)
			}
			continue
		}

		logger.Info("recorded customer event",
			zap.String("action", ev.Action),
			zap.String("customer_id", ev.CustomerID))
		d.Ack(false)
	}
}

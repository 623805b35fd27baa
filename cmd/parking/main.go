package main

import (
	"parkgate/internal/parking/handler"
	"parkgate/internal/parking/ledger"
	"parkgate/internal/parking/service"
	"parkgate/internal/parking/validator"
	"parkgate/pkg/app"
	"parkgate/pkg/clock"
	"parkgate/pkg/config"
	"parkgate/pkg/kafka"
)

const ServiceName = "parking"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Parking service")
	serverApp := app.NewApplication(cfg)

	parkingService := initServices(cfg, serverApp)
	serverApp.SetApp(handler.NewParkingHandler(parkingService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config, serverApp *app.Application) service.ParkingService {
	clk := clock.System(cfg.Location())
	ldg := ledger.New(cfg.TotalSlots, cfg.HourlyRate, clk)
	requestValidator := validator.NewRequestValidator(cfg.Log)

	var events service.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(kafka.Config{
			Brokers: cfg.KafkaBrokers,
		}, cfg.KafkaTicketEventTopic)
		if err != nil {
			cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
		}
		serverApp.OnShutdown("kafka-producer", producer.Close)
		events = producer
		cfg.Log.Info("Ticket event stream enabled",
			"brokers", cfg.KafkaBrokers,
			"topic", cfg.KafkaTicketEventTopic,
		)
	} else {
		cfg.Log.Info("Ticket event stream disabled, no Kafka brokers configured")
	}

	if cfg.SeedDemoData {
		service.SeedDemoData(ldg, cfg)
	}

	parkingService := service.NewParkingService(ldg, requestValidator, events, cfg)
	cfg.Log.Info("Parking service initialized",
		"total_slots", cfg.TotalSlots,
		"hourly_rate", cfg.HourlyRate,
		"timezone", cfg.ParkingTimezone,
	)
	return parkingService
}

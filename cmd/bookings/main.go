package main

import (
	availabilityhandler "pawbook/internal/availability/handler"
	availabilityrepo "pawbook/internal/availability/repository"
	availabilityservice "pawbook/internal/availability/service"
	"pawbook/internal/bookings/handler"
	"pawbook/internal/bookings/repository"
	"pawbook/internal/bookings/service"
	"pawbook/internal/bookings/validator"
	"pawbook/pkg/app"
	"pawbook/pkg/config"
	"pawbook/pkg/kafka"
	kafka_config "pawbook/pkg/kafka/config"
	"pawbook/pkg/sealer"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Bookings service")

	dayRepo := availabilityrepo.NewMongoDayRepository(cfg)
	availabilitySvc := availabilityservice.NewAvailabilityService(cfg, dayRepo)
	bookingSvc := initBookingService(cfg, dayRepo)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
		availabilityhandler.NewAvailabilityHandler(availabilitySvc, cfg.Log, cfg.DefaultServiceDurationMin, cfg.SlotBufferMin),
		handler.NewBookingHandler(bookingSvc, initSealer(cfg), cfg.Log),
	)
	serverApp.Run()
}

func initBookingService(cfg *config.Config, dayRepo availabilityrepo.DayRepository) service.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	lockRepo := repository.NewSlotLockRepository(cfg)

	bookingService := service.NewBookingService(
		bookingRepo,
		lockRepo,
		dayRepo,
		bookingValidator,
		initPublisher(cfg),
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService
}

func initPublisher(cfg *config.Config) service.EventPublisher {
	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka publishing disabled")
		return nil
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	producer, err := kafka.NewProducer(kafkaCfg, cfg.KafkaBookingsTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "topic", cfg.KafkaBookingsTopic, "error", err)
	}

	cfg.Log.Info("Kafka producer initialized", "topic", cfg.KafkaBookingsTopic)
	return producer
}

func initSealer(cfg *config.Config) *sealer.Sealer {
	if cfg.ReceiptSealerKey == "" {
		cfg.Log.Info("Receipt sealer disabled, no key configured")
		return nil
	}

	s, err := sealer.New(cfg.ReceiptSealerKey)
	if err != nil {
		cfg.Log.Fatal("Invalid receipt sealer key", "error", err)
	}
	return s
}

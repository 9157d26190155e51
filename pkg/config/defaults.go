package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "pawbook"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Salon working window. Slots are generated inside it.
	DefaultDayStart = "09:30"
	DefaultDayEnd   = "20:00"

	DefaultDefaultServiceDurationMin = 90
	DefaultSlotBufferMin             = 15

	DefaultSlotLockTTL          = 10 * time.Second
	DefaultReferenceMaxAttempts = 3

	DefaultKafkaBookingsTopic = "pawbook.bookings.confirmed"

	DefaultPaginationLimit = 50
)

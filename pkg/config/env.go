package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort = "PORT"

	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvDayStart                  = "DAY_START"
	EnvDayEnd                    = "DAY_END"
	EnvDefaultServiceDurationMin = "DEFAULT_SERVICE_DURATION_MIN"
	EnvSlotBufferMin             = "SLOT_BUFFER_MIN"

	EnvSlotLockTTL          = "SLOT_LOCK_TTL"
	EnvReferenceMaxAttempts = "REFERENCE_MAX_ATTEMPTS"

	EnvReceiptSealerKey = "RECEIPT_SEALER_KEY"

	EnvKafkaEnabled       = "KAFKA_ENABLED"
	EnvKafkaBookingsTopic = "KAFKA_BOOKINGS_TOPIC"
)

package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvTotalSlots      = "TOTAL_SLOTS"
	EnvHourlyRate      = "HOURLY_RATE"
	EnvParkingTimezone = "PARKING_TIMEZONE"
	EnvSeedDemoData    = "PARKING_SEED_DEMO_DATA"

	EnvKafkaBrokers          = "KAFKA_BROKERS"
	EnvKafkaTicketEventTopic = "KAFKA_TICKET_EVENTS_TOPIC"

	EnvJWTSecret = "JWT_SECRET"
	EnvJWTExpiry = "JWT_EXPIRY"

	EnvDemoUserEmail    = "DEMO_USER_EMAIL"
	EnvDemoUserPassword = "DEMO_USER_PASSWORD"
	EnvDemoUserName     = "DEMO_USER_NAME"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

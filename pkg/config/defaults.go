package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultTotalSlots      = 5
	DefaultHourlyRate      = 3000
	DefaultParkingTimezone = "Asia/Jakarta"
	DefaultSeedDemoData    = false

	DefaultKafkaTicketEventTopic = "parking.ticket-events"

	DefaultJWTExpiry = 15 * time.Minute

	DefaultDemoUserEmail    = "demo@parkgate.local"
	DefaultDemoUserPassword = "demo-password"
	DefaultDemoUserName     = "demo"

	DefaultRequestTimeout = 10 * time.Second
	DefaultMaxRequestSize = 1 << 20

	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
)

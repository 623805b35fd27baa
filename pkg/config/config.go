package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"parkgate/pkg/logger"
)

type Config struct {
	Port string

	TotalSlots      int
	HourlyRate      int
	ParkingTimezone string
	SeedDemoData    bool

	KafkaBrokers          []string
	KafkaTicketEventTopic string

	JWTSecret string
	JWTExpiry time.Duration

	DemoUserEmail    string
	DemoUserPassword string
	DemoUserName     string

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log *logger.Logger

	location *time.Location
}

func Load(serviceName string) *Config {
	cfg := &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		TotalSlots:      getEnvNum(EnvTotalSlots, DefaultTotalSlots),
		HourlyRate:      getEnvNum(EnvHourlyRate, DefaultHourlyRate),
		ParkingTimezone: getEnvStr(EnvParkingTimezone, DefaultParkingTimezone),
		SeedDemoData:    getEnvBool(EnvSeedDemoData, DefaultSeedDemoData),

		KafkaBrokers:          getEnvStrSlice(EnvKafkaBrokers),
		KafkaTicketEventTopic: getEnvStr(EnvKafkaTicketEventTopic, DefaultKafkaTicketEventTopic),

		JWTSecret: getEnvStr(EnvJWTSecret, ""),
		JWTExpiry: getEnvDuration(EnvJWTExpiry, DefaultJWTExpiry),

		DemoUserEmail:    getEnvStr(EnvDemoUserEmail, DefaultDemoUserEmail),
		DemoUserPassword: getEnvStr(EnvDemoUserPassword, DefaultDemoUserPassword),
		DemoUserName:     getEnvStr(EnvDemoUserName, DefaultDemoUserName),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.TotalSlots <= 0 {
		errs = append(errs, fmt.Sprintf("TotalSlots must be positive, got: %d", cfg.TotalSlots))
	}
	if cfg.HourlyRate <= 0 {
		errs = append(errs, fmt.Sprintf("HourlyRate must be positive, got: %d", cfg.HourlyRate))
	}

	loc, err := time.LoadLocation(cfg.ParkingTimezone)
	if err != nil {
		errs = append(errs, fmt.Sprintf("ParkingTimezone must be a valid IANA zone name, got: %s", cfg.ParkingTimezone))
	} else {
		cfg.location = loc
	}

	if cfg.JWTExpiry <= 0 {
		errs = append(errs, fmt.Sprintf("JWTExpiry must be positive, got: %s", cfg.JWTExpiry))
	}
	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, e := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

// Location returns the resolved parking time zone. Validate must have run
// first; Load takes care of that.
func (cfg *Config) Location() *time.Location {
	if cfg.location == nil {
		return time.UTC
	}
	return cfg.location
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"total_slots", cfg.TotalSlots,
		"hourly_rate", cfg.HourlyRate,
		"parking_timezone", cfg.ParkingTimezone,
		"seed_demo_data", cfg.SeedDemoData,
		"kafka_brokers", cfg.KafkaBrokers,
		"kafka_ticket_event_topic", cfg.KafkaTicketEventTopic,
		"jwt_secret_set", cfg.JWTSecret != "",
		"jwt_expiry", cfg.JWTExpiry,
		"demo_user_email", cfg.DemoUserEmail,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvStrSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

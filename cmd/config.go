package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const ServiceName = "arka"

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBTimeout  time.Duration

	LogLevel string

	// An empty RabbitMQURL disables the RabbitMQ notification sink.
	RabbitMQURL      string
	RabbitMQExchange string

	RestockReportSchedule string
}

// LoadConfig reads the environment, after loading .env when one exists.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "arka"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimeout:  getEnvDuration("DB_TIMEOUT", 10*time.Second),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		RabbitMQURL:      os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange: getEnv("RABBITMQ_EXCHANGE", "arka.notifications"),

		RestockReportSchedule: getEnv("RESTOCK_REPORT_SCHEDULE", "0 0 8 * * *"),
	}
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("15s") or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if d, err := time.ParseDuration(value + "s"); err == nil {
		return d
	}
	return defaultValue
}

package config

import "os"

// DBConfig holds the Postgres connection settings.
type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
}

// Config is the process configuration, read from the environment.
type Config struct {
	HTTPAddr     string
	AMQPURL      string
	MessagesFile string
	LogLevel     string
	DB           DBConfig
}

// Load reads the configuration from environment variables, applying
// defaults for anything unset. Callers load .env beforehand if they
// want file-based overrides.
func Load() Config {
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		AMQPURL:      os.Getenv("AMQP_URL"),
		MessagesFile: os.Getenv("MESSAGES_FILE"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		DB: DBConfig{
			User:     getenv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			Name:     getenv("DB_NAME", "customers"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

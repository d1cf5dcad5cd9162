package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr   string // empty disables the order-list cache
	KafkaBroker string // empty disables the order-event stream
	KafkaTopic  string

	BillTitle string
}

func LoadConfig() *Config {
	// .env is optional; plain environment variables win either way.
	_ = godotenv.Load()

	return &Config{
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBSource:    getEnv("DB_SOURCE", "orderly.db"),
		Port:        getEnv("PORT", "8000"),
		JWTSecret:   getEnv("JWT_SECRET", "changeme"),
		JWTTTL:      time.Duration(24) * time.Hour,
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "order-events"),
		BillTitle:   getEnv("BILL_TITLE", "FOOD ORDERLY"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

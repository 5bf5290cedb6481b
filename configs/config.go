package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	StoreDriver   string // "sqlite" | "redis"
	DBSource      string
	RedisAddr     string
	SessionSecret string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		StoreDriver:   getEnv("STORE_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "mp-fishnchips.db"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		SessionSecret: getEnv("SESSION_SECRET", "changeme"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

package config

import (
	"encoding/base64"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port                  string
	MongoURI              string
	PasetoSecret          string
	WorkweekRule          string
	AllowPaidSalaryCancel bool
}

// LoadConfig loads configuration from the environment, with a .env file as
// fallback for local development.
func LoadConfig() *AppConfig {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: error loading .env file (might not exist in production): %v", err)
	}

	secretBase64 := getEnv("PASETO_SECRET", "")
	if secretBase64 == "" {
		log.Fatal("PASETO_SECRET is not set")
	}

	secretBytes, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		log.Fatalf("PASETO_SECRET is not a valid Base64 URL-encoded string: %v", err)
	}
	if len(secretBytes) != 32 {
		log.Fatalf("PASETO_SECRET (decoded) must be exactly 32 bytes long, got %d", len(secretBytes))
	}

	allowCancel, err := strconv.ParseBool(getEnv("ALLOW_PAID_SALARY_CANCEL", "true"))
	if err != nil {
		log.Fatalf("ALLOW_PAID_SALARY_CANCEL must be a boolean: %v", err)
	}

	return &AppConfig{
		Port:                  getEnv("PORT", "3000"),
		MongoURI:              getEnv("MONGOSTRING", ""),
		PasetoSecret:          secretBase64,
		WorkweekRule:          getEnv("WORKWEEK_RRULE", "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"),
		AllowPaidSalaryCancel: allowCancel,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	ServerPort string
	// AllowedEmailDomains restricts sign-up to company addresses; empty means
	// any domain is accepted.
	AllowedEmailDomains []string
	// AdminEmails may call the admin repair endpoints.
	AdminEmails []string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "training_portal"),
		JWTSecret:           getEnv("JWT_SECRET", "secret"),
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		AllowedEmailDomains: getEnvList("ALLOWED_EMAIL_DOMAINS", "finitestate.io"),
		AdminEmails:         getEnvList("ADMIN_EMAILS", ""),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	if raw == "" {
		return nil
	}
	var values []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(strings.ToLower(v)); v != "" {
			values = append(values, v)
		}
	}
	return values
}

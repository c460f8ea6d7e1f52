package config

import (
	"os"
	"strconv"
	"time"
)

// Config is read once from the environment at startup.
type Config struct {
	Port  string
	DBURL string

	// Artificial latency applied to every form submission, mirroring the
	// network round-trip the dashboard simulates. Zero disables it.
	SubmitLatency time.Duration

	RelanceCron string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string

	AllowedOrigins []string
}

func Load() Config {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		DBURL:            os.Getenv("DB_URL"),
		SubmitLatency:    time.Duration(getEnvInt("SUBMIT_LATENCY_MS", 1000)) * time.Millisecond,
		RelanceCron:      getEnv("RELANCE_CRON", "0 9 * * *"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFrom:       os.Getenv("TWILIO_PHONE_NUMBER"),
		AllowedOrigins:   []string{getEnv("FRONTEND_ORIGIN", "http://localhost:3000")},
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

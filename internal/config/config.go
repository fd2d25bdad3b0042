package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// InferenceURL returns the base URL of the hosted inference API.
// Model names are appended to this prefix.
func InferenceURL() string {
	return GetEnv("HF_API_URL", "https://api-inference.huggingface.co/models/")
}

// InferenceToken returns the hosted inference API token, if configured.
// An empty token means requests are sent unauthenticated.
func InferenceToken() string {
	return GetEnv("HF_API_TOKEN", "")
}

// AnomalyModelPath returns the path to the serialized anomaly model artifact.
func AnomalyModelPath() string {
	return GetEnv("ANOMALY_MODEL_PATH", "fraud_isolation_forest.json")
}

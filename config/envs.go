package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values. Every key is
// optional: the game must run with no environment at all.
type Config struct {
	LogLevel   string // Log level for the application logger
	Difficulty string // Default difficulty level for generated mazes
	Seed       int64  // Seed for deterministic generation; only valid when HasSeed is set
	HasSeed    bool   // Whether SEED was provided
}

// Envs holds the application's configuration loaded from environment
// variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file when one is present.
func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg := Config{
		LogLevel:   getEnvWithDefault("LOG_LEVEL", "info"),
		Difficulty: getEnvWithDefault("DIFFICULTY", "easy"),
	}

	if seed, ok := getEnvAsInt64("SEED"); ok {
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	return cfg
}

// getEnvWithDefault retrieves the value of an environment variable or returns
// a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 retrieves the value of an environment variable as an int64,
// reporting whether it was set and parseable.
func getEnvAsInt64(key string) (int64, bool) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return 0, false
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("[APP] [INFO] Environment variable %s is not an integer, ignoring: %v", key, err)
		return 0, false
	}
	return value, true
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Deployment selects which catalog variant this process serves. The engine is
// the same in both; the flag only changes the auth policy and which extra
// field createUser accepts.
const (
	DeploymentPhonebook = "phonebook"
	DeploymentLibrary   = "library"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	Driver string // "sqlite" or "memory"
	Path   string
}

type AuthConfig struct {
	Secret        string
	Deployment    string
	RequireWrites bool // addPerson/addBook need a current user
	Seed          bool
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	deployment := getEnv("DEPLOYMENT", DeploymentLibrary)

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "sqlite"),
			Path:   getEnv("DB_PATH", "./catalog.db"),
		},
		Auth: AuthConfig{
			Secret:        getEnv("TOKEN_SECRET", "default-secret-key"),
			Deployment:    deployment,
			RequireWrites: deployment == DeploymentLibrary,
			Seed:          getEnvAsBool("SEED", false),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

package config

import (
	"fmt"     // For DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For cache TTL

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application configuration
type Config struct {
	AppPort    string        // Application port
	DBDriver   string        // Database driver: mysql, postgres or sqlite
	DBUser     string        // Database user
	DBPassword string        // Database password
	DBHost     string        // Database host
	DBPort     string        // Database port
	DBName     string        // Database name
	DBPath     string        // SQLite file path (sqlite driver only)
	RedisAddr  string        // Redis server address, empty disables caching
	RedisPass  string        // Redis password
	RedisDB    int           // Redis database number
	CacheTTL   time.Duration // Lifetime of cached read projections
	IsProd     bool          // Is production environment
	LogLevel   string        // logrus level name
	LogFormat  string        // "json" or "text"
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		ttl = 60 * time.Second // Fall back to the default TTL
	}
	return &Config{
		AppPort:    getEnv("APP_PORT", "8080"),          // Application port
		DBDriver:   getEnv("DB_DRIVER", DriverMySQL),    // Database driver
		DBUser:     os.Getenv("DB_USER"),                // Database user
		DBPassword: os.Getenv("DB_PASSWORD"),            // Database password
		DBHost:     getEnv("DB_HOST", "localhost"),      // Database host
		DBPort:     os.Getenv("DB_PORT"),                // Database port
		DBName:     getEnv("DB_NAME", "back_office"),    // Database name
		DBPath:     getEnv("DB_PATH", "back_office.db"), // SQLite file path
		RedisAddr:  os.Getenv("REDIS_ADDR"),             // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),             // Redis password
		RedisDB:    redisDB,                             // Redis database number
		CacheTTL:   ttl,                                 // Cache TTL
		IsProd:     os.Getenv("IS_PROD") == "true",      // Is production environment
		LogLevel:   getEnv("LOG_LEVEL", "info"),         // Log level
		LogFormat:  getEnv("LOG_FORMAT", "text"),        // Log format
	}
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverPostgres:
		port := c.DBPort
		if port == "" {
			port = "5432" // Default PostgreSQL port
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, port)
	case DriverSQLite:
		return c.DBPath // SQLite only needs a file path
	default:
		port := c.DBPort
		if port == "" {
			port = "3306" // Default MySQL port
		}
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + port + ")/" + c.DBName + "?parseTime=true"
	}
}

// getEnv returns the environment value for key or fallback when unset
func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	SQLite    SQLiteConfig
	RateLimit RateLimitConfig
	Assets    AssetsConfig
	Wedding   WeddingConfig
	Jobs      JobsConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Env         string
	CORSOrigins string
	AdminToken  string // empty disables the admin endpoints
}

type LogConfig struct {
	Dir     string
	Console bool
}

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type StorageConfig struct {
	Driver  string
	DataDir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	KeyPrefix string
}

type SQLiteConfig struct {
	Path string
}

type RateLimitConfig struct {
	Enabled           bool
	MaxRequests       int
	WindowSeconds     int
	RSVPMaxRequests   int
	RSVPWindowSeconds int
}

type AssetsConfig struct {
	Dir       string // holds images/thumbnails, images/large, maps and music
	ThumbDir  string
	LargeDir  string
	ThumbSize int
}

type WeddingConfig struct {
	DetailsFile string
}

// JobsConfig holds cron expressions for background jobs, evaluated in UTC.
type JobsConfig struct {
	GalleryPruneCron string
}

func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	assetsDir := getEnv("ASSETS_DIR", "public")

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Wedding Invitation"),
			Port:        getEnv("APP_PORT", "3000"),
			Env:         getEnv("APP_ENV", "development"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
			AdminToken:  getEnv("ADMIN_TOKEN", ""),
		},
		Log: LogConfig{
			Dir:     getEnv("LOG_DIR", "logs"),
			Console: getEnvBool("LOG_CONSOLE", true),
		},
		Storage: StorageConfig{
			Driver:  strings.ToLower(getEnv("STORAGE_DRIVER", DriverFile)),
			DataDir: getEnv("DATA_DIR", "data"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "wedding"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Host:      getEnv("REDIS_HOST", "localhost"),
			Port:      getEnv("REDIS_PORT", "6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "wedding:"),
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_PATH", "data/wedding.db"),
		},
		RateLimit: RateLimitConfig{
			Enabled:           getEnvBool("RATE_LIMIT_ENABLED", true),
			MaxRequests:       getEnvInt("RATE_LIMIT_MAX", 300),
			WindowSeconds:     getEnvInt("RATE_LIMIT_WINDOW", 60),
			RSVPMaxRequests:   getEnvInt("RATE_LIMIT_RSVP_MAX", 5),
			RSVPWindowSeconds: getEnvInt("RATE_LIMIT_RSVP_WINDOW", 60),
		},
		Assets: AssetsConfig{
			Dir:       assetsDir,
			ThumbDir:  getEnv("THUMB_DIR", "images/thumbnails"),
			LargeDir:  getEnv("LARGE_DIR", "images/large"),
			ThumbSize: getEnvInt("THUMB_SIZE", 480),
		},
		Wedding: WeddingConfig{
			DetailsFile: getEnv("WEDDING_DETAILS_FILE", "wedding.yaml"),
		},
		Jobs: JobsConfig{
			GalleryPruneCron: getEnv("GALLERY_PRUNE_CRON", "*/10 * * * *"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return b
}

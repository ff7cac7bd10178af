package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var AppConfig Config

type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

type WeatherConfig struct {
	BaseURL string        `json:"base_url"`
	APIKey  string        `json:"-"`
	Timeout time.Duration `json:"timeout"`
	// City used when /predict-disease is called without ?city=
	DefaultCity string `json:"default_city"`
}

// SeedUserConfig describes an account registered at startup.
// Nothing is seeded unless Password is set.
type SeedUserConfig struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type Config struct {
	Environment    string         `json:"environment"`
	ServerPort     string         `json:"server_port"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
	SentryDSN      string         `json:"-"`
	DBDriver       string         `json:"db_driver"`
	DBPath         string         `json:"db_path"`
	DBHost         string         `json:"db_host"`
	DBPort         string         `json:"db_port"`
	DBUser         string         `json:"db_user"`
	DBPassword     string         `json:"-"`
	DBName         string         `json:"db_name"`
	DBSSLMode      string         `json:"db_ssl_mode"`
	DBMaxIdleConns int            `json:"db_max_idle_conns"`
	DBMaxOpenConns int            `json:"db_max_open_conns"`
	AllowedOrigins []string       `json:"allowed_origins"`
	AuthRateLimit  int            `json:"auth_rate_limit"`
	BcryptCost     int            `json:"bcrypt_cost"`
	Redis          RedisConfig    `json:"redis"`
	Weather        WeatherConfig  `json:"weather"`
	SeedUser       SeedUserConfig `json:"seed_user"`
}

func init() {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()
}

func LoadConfig() error {
	AppConfig = Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		ServerPort:     getEnv("SERVER_PORT", "4000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:         getEnv("DB_PATH", "./db.sqlite3"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "ekrishi"),
		DBSSLMode:      getEnv("DB_SSL_MODE", "disable"),
		DBMaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		AuthRateLimit:  getEnvAsInt("AUTH_RATE_LIMIT", 20),
		BcryptCost:     getEnvAsInt("BCRYPT_COST", 10),
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Weather: WeatherConfig{
			BaseURL:     getEnv("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather"),
			APIKey:      getEnv("WEATHER_API_KEY", ""),
			Timeout:     getEnvAsDuration("WEATHER_TIMEOUT", 10*time.Second),
			DefaultCity: getEnv("DEFAULT_CITY", "Hyderabad"),
		},
		SeedUser: SeedUserConfig{
			Name:     getEnv("SEED_USER_NAME", "John Doe"),
			Email:    getEnv("SEED_USER_EMAIL", "user@example.com"),
			Password: getEnv("SEED_USER_PASSWORD", ""),
		},
	}

	if err := AppConfig.Validate(); err != nil {
		return err
	}

	logConfig()
	return nil
}

// Validate checks settings that would otherwise fail later at connect time.
func (c Config) Validate() error {
	switch c.DBDriver {
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case "postgres":
		if c.DBPassword == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.Weather.Timeout <= 0 {
		return fmt.Errorf("WEATHER_TIMEOUT must be positive")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	if c.Environment == "production" && c.Weather.APIKey == "" {
		return fmt.Errorf("WEATHER_API_KEY is required in production")
	}
	return nil
}

// ConnectDB opens the team database with the configured driver.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	logrus.Info("Attempting to connect to database...")

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBSSLMode,
		)
		logrus.WithField("dsn", maskPassword(dsn)).Info("Using postgres connection string")
		dialector = postgres.Open(dsn)
	default:
		logrus.WithField("path", cfg.DBPath).Info("Using sqlite database file")
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get DB instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	logrus.Info("✅ Successfully connected to the database")
	return db, nil
}

// Helper functions
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func maskPassword(dsn string) string {
	const passwordMarker = "password="
	startIdx := strings.Index(dsn, passwordMarker)
	if startIdx == -1 {
		return dsn
	}

	startIdx += len(passwordMarker)
	endIdx := strings.IndexAny(dsn[startIdx:], " ")
	if endIdx == -1 {
		return dsn[:startIdx] + "*****"
	}
	return dsn[:startIdx] + "*****" + dsn[startIdx+endIdx:]
}

func logConfig() {
	logrus.WithFields(logrus.Fields{
		"environment":  AppConfig.Environment,
		"server_port":  AppConfig.ServerPort,
		"db_driver":    AppConfig.DBDriver,
		"redis":        AppConfig.Redis.Enabled,
		"weather_key":  AppConfig.Weather.APIKey != "",
		"default_city": AppConfig.Weather.DefaultCity,
	}).Info("🔧 Loaded configuration")
}

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	KafkaHost             string
	KafkaTransitionsTopic string

	RedisAddr      string
	ReportCacheTTL time.Duration

	StatisticsCron string

	LogLevel string
	AppEnv   string
}

var defaults = map[string]string{
	"HTTP_PORT":                "8080",
	"DB_HOST":                  "localhost",
	"DB_PORT":                  "5432",
	"DB_USER":                  "postgres",
	"DB_NAME":                  "logistics",
	"DB_SSLMODE":               "disable",
	"KAFKA_TRANSITIONS_TOPIC":  "logistics.transitions",
	"REPORT_CACHE_TTL_SECONDS": "300",
	"STATISTICS_CRON":          "0 5 0 * * *",
	"LOG_LEVEL":                "info",
	"APP_ENV":                  "production",
}

// LoadConfig reads the environment, first seeding it from envFile when that
// file exists. Variables already set in the environment win over the file.
// An empty KAFKA_HOST or REDIS_ADDR disables that adapter.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	ttl, err := strconv.Atoi(env("REPORT_CACHE_TTL_SECONDS"))
	if err != nil || ttl < 0 {
		return Config{}, fmt.Errorf("REPORT_CACHE_TTL_SECONDS must be a non-negative integer, got %q", env("REPORT_CACHE_TTL_SECONDS"))
	}

	cfg := Config{
		HTTPPort:              env("HTTP_PORT"),
		DBHost:                env("DB_HOST"),
		DBPort:                env("DB_PORT"),
		DBUser:                env("DB_USER"),
		DBPassword:            env("DB_PASSWORD"),
		DBName:                env("DB_NAME"),
		DBSslMode:             env("DB_SSLMODE"),
		JWTSecret:             env("JWT_SECRET"),
		KafkaHost:             env("KAFKA_HOST"),
		KafkaTransitionsTopic: env("KAFKA_TRANSITIONS_TOPIC"),
		RedisAddr:             env("REDIS_ADDR"),
		ReportCacheTTL:        time.Duration(ttl) * time.Second,
		StatisticsCron:        env("STATISTICS_CRON"),
		LogLevel:              env("LOG_LEVEL"),
		AppEnv:                env("APP_ENV"),
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func env(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaults[key]
}

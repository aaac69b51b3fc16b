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
	HTTPPort               string
	LogLevel               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	MongoURI               string
	MongoDatabase          string
	RedisAddr              string
	CatalogCacheTTL        time.Duration
	KafkaHost              string
	KafkaOrderChangedTopic string
	OutboxBatchSize        int
	PendingOrderTTL        time.Duration
	CORSOrigins            []string
	OtelEndpoint           string
}

// DSN builds the PostgreSQL connection string shared by GORM and the migrator.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads the environment, after loading envFile when it exists.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var errList []error
	duration := func(key string, def time.Duration) time.Duration {
		d, err := envDuration(key, def)
		errList = append(errList, err)
		return d
	}
	integer := func(key string, def int) int {
		n, err := envInt(key, def)
		errList = append(errList, err)
		return n
	}

	config := Config{
		HTTPPort:               envString("HTTP_PORT", "8080"),
		LogLevel:               envString("LOG_LEVEL", "info"),
		DBHost:                 envString("DB_HOST", "localhost"),
		DBPort:                 envString("DB_PORT", "5432"),
		DBUser:                 envString("DB_USER", "postgres"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 envString("DB_NAME", "checkout"),
		DBSslMode:              envString("DB_SSLMODE", "disable"),
		MongoURI:               envString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:          envString("MONGO_DATABASE", "shop"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		CatalogCacheTTL:        duration("CATALOG_CACHE_TTL", 10*time.Minute),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: envString("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		OutboxBatchSize:        integer("OUTBOX_BATCH_SIZE", 100),
		PendingOrderTTL:        duration("PENDING_ORDER_TTL", 0),
		CORSOrigins:            envList("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		OtelEndpoint:           os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return config, nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// envDuration accepts Go durations ("45m") and, as a fallback, whole seconds.
func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a duration", key, v)
	}
	return time.Duration(secs) * time.Second, nil
}

func envList(key, def string) []string {
	var out []string
	for _, item := range strings.Split(envString(key, def), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	Server     ServerConfig
	Worker     WorkerConfig
	Database   DatabaseConfig
	MinIO      MinIOConfig
	RabbitMQ   RabbitMQConfig
	Kafka      KafkaConfig
	Events     EventsConfig
	Redis      RedisConfig
	Auth       AuthConfig
	Pagination PaginationConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"API_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"API_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"API_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"API_SHUTDOWN_TIMEOUT" default:"10s"`
	MaxUploadBytes  int64         `envconfig:"API_MAX_UPLOAD_BYTES" default:"1073741824"`
}

type WorkerConfig struct {
	ShutdownTimeout time.Duration `envconfig:"WORKER_SHUTDOWN_TIMEOUT" default:"30s"`
}

type DatabaseConfig struct {
	Host        string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port        int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User        string `envconfig:"POSTGRES_USER" default:"catalog"`
	Password    string `envconfig:"POSTGRES_PASSWORD" default:"catalog"`
	DBName      string `envconfig:"POSTGRES_DB" default:"catalog"`
	SSLMode     string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
	MaxConns    int32  `envconfig:"POSTGRES_MAX_CONNS" default:"25"`
	MinConns    int32  `envconfig:"POSTGRES_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"POSTGRES_AUTO_MIGRATE" default:"true"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

type MinIOConfig struct {
	Endpoint     string `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	AccessKey    string `envconfig:"MINIO_ACCESS_KEY" default:"minioadmin"`
	SecretKey    string `envconfig:"MINIO_SECRET_KEY" default:"minioadmin"`
	Bucket       string `envconfig:"MINIO_BUCKET" default:"catalog"`
	UseSSL       bool   `envconfig:"MINIO_USE_SSL" default:"false"`
	CreateBucket bool   `envconfig:"MINIO_CREATE_BUCKET" default:"true"`
}

type RabbitMQConfig struct {
	Host         string `envconfig:"RABBITMQ_HOST" default:"localhost"`
	Port         int    `envconfig:"RABBITMQ_PORT" default:"5672"`
	User         string `envconfig:"RABBITMQ_USER" default:"guest"`
	Password     string `envconfig:"RABBITMQ_PASSWORD" default:"guest"`
	VHost        string `envconfig:"RABBITMQ_VHOST" default:"/"`
	Exchange     string `envconfig:"RABBITMQ_EXCHANGE" default:"amq.direct"`
	PublishQueue string `envconfig:"RABBITMQ_PUBLISH_QUEUE" default:"videos.new"`
	ConsumeQueue string `envconfig:"RABBITMQ_CONSUME_QUEUE" default:"videos.converted"`
	Prefetch     int    `envconfig:"RABBITMQ_PREFETCH" default:"1"`
}

func (c RabbitMQConfig) URL() string {
	return fmt.Sprintf(
		"amqp://%s:%s@%s:%d%s",
		c.User, c.Password, c.Host, c.Port, c.VHost,
	)
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"videos.new"`
}

// Event drivers accepted by EVENTS_DRIVER.
const (
	EventsDriverRabbitMQ = "rabbitmq"
	EventsDriverKafka    = "kafka"
)

type EventsConfig struct {
	Driver string `envconfig:"EVENTS_DRIVER" default:"rabbitmq"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"5m"`
	// Enabled turns the video read cache on.
	Enabled bool `envconfig:"REDIS_ENABLED" default:"true"`
}

type AuthConfig struct {
	Enabled      bool   `envconfig:"AUTH_ENABLED" default:"true"`
	PublicKey    string `envconfig:"AUTH_PUBLIC_KEY"`
	Issuer       string `envconfig:"AUTH_ISSUER"`
	RequiredRole string `envconfig:"AUTH_REQUIRED_ROLE" default:"admin"`
}

type PaginationConfig struct {
	PageSize int `envconfig:"PAGE_SIZE" default:"10"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Events.Driver {
	case EventsDriverRabbitMQ, EventsDriverKafka:
	default:
		return fmt.Errorf("invalid EVENTS_DRIVER %q: must be %s or %s", c.Events.Driver, EventsDriverRabbitMQ, EventsDriverKafka)
	}
	if c.Auth.Enabled && c.Auth.PublicKey == "" {
		return fmt.Errorf("AUTH_PUBLIC_KEY is required when AUTH_ENABLED is true")
	}
	if c.Pagination.PageSize <= 0 {
		return fmt.Errorf("invalid PAGE_SIZE %d: must be positive", c.Pagination.PageSize)
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

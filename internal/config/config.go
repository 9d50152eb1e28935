package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Redis Redis `validate:"required"`

	Cache Cache

	Inventory Inventory

	Notifier Notifier

	Payment Payment
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`

	// Топик с результатами оплаты от платёжного шлюза.
	PaymentTopic string `validate:"required"`
	// Топик, в который уходят уведомления о заказах.
	NotificationTopic string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int           `validate:"gte=0"`
	CartTTL  time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Inventory struct {
	RetryAttempts     int           `validate:"gte=1"`
	RetryInitialDelay time.Duration `validate:"gt=0"`
	RetryMaxDelay     time.Duration `validate:"gte=0"`
}

type Notifier struct {
	Workers     int           `validate:"gte=1"`
	QueueSize   int           `validate:"gte=1"`
	SendTimeout time.Duration `validate:"gt=0"`
}

type Payment struct {
	// Симулятор шлюза одобряет платежи, если true.
	AutoApprove bool
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:           env("KAFKA_GROUP_ID", "order-fulfillment"),
			Brokers:           strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			PaymentTopic:      env("KAFKA_PAYMENT_TOPIC", "payments"),
			NotificationTopic: env("KAFKA_NOTIFICATION_TOPIC", "order-notifications"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "orders"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
			CartTTL:  envDuration("REDIS_CART_TTL", 15*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("ORDER_CACHE_CAPACITY", 1000),
			TTL:      envDuration("ORDER_CACHE_TTL", 10*time.Minute),
		},

		Inventory: Inventory{
			RetryAttempts:     envInt("STOCK_RETRY_ATTEMPTS", 5),
			RetryInitialDelay: envDuration("STOCK_RETRY_INITIAL_DELAY", 10*time.Millisecond),
			RetryMaxDelay:     envDuration("STOCK_RETRY_MAX_DELAY", 200*time.Millisecond),
		},

		Notifier: Notifier{
			Workers:     envInt("NOTIFIER_WORKERS", 4),
			QueueSize:   envInt("NOTIFIER_QUEUE_SIZE", 256),
			SendTimeout: envDuration("NOTIFIER_SEND_TIMEOUT", 5*time.Second),
		},

		Payment: Payment{
			AutoApprove: envBool("PAYMENT_AUTO_APPROVE", true),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Validate проверяет только секцию Postgres, её достаточно для миграций.
func (p Postgres) Validate() error {
	return validator.New().Struct(p)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   supplier credentials), security settings
// - default: Values common across all environments (timeouts, TTLs, retry
//   budgets), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Supplier SupplierConfig
	Cache    CacheConfig
	Webhook  WebhookConfig
	Booking  BookingConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

// SupplierConfig holds the hotel supplier API connection settings. KeyID and
// APIKey form the Basic auth credential pair; missing credentials fail client
// construction at startup, not the first call.
type SupplierConfig struct {
	BaseURL        string        `envconfig:"SUPPLIER_API_BASE" default:"https://api.worldota.net"`
	KeyID          string        `envconfig:"SUPPLIER_API_KEY_ID" required:"true"`
	APIKey         string        `envconfig:"SUPPLIER_API_KEY" required:"true"`
	DefaultTimeout time.Duration `envconfig:"SUPPLIER_DEFAULT_TIMEOUT" default:"60s"`
	MaxAttempts    int           `envconfig:"SUPPLIER_MAX_ATTEMPTS" default:"3"`
	RetryBase      time.Duration `envconfig:"SUPPLIER_RETRY_BASE" default:"500ms"`
}

// CacheConfig configures the tiered response cache. An empty RedisAddr leaves
// only the in-process tier active.
type CacheConfig struct {
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:""`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	DefaultTTL    time.Duration `envconfig:"CACHE_DEFAULT_TTL" default:"1800s"`
	CatalogTTL    time.Duration `envconfig:"CACHE_CATALOG_TTL" default:"6h"`
}

// WebhookConfig configures the payment notification receiver. An empty Secret
// disables signature verification; unsigned mode is for providers that do not
// sign their webhooks and should not be used where the secret is available.
type WebhookConfig struct {
	Secret string `envconfig:"PAYMENT_WEBHOOK_SECRET" default:""`
}

// BookingConfig tunes the background reconciliation sweep over reservations
// stuck in booking_processing. Interval 0 disables the sweep; the per-id
// reconcile endpoint still works.
type BookingConfig struct {
	ReconcileInterval time.Duration `envconfig:"BOOKING_RECONCILE_INTERVAL" default:"5m"`
	ReconcileAge      time.Duration `envconfig:"BOOKING_RECONCILE_AGE" default:"10m"`
	ReconcileBatch    int32         `envconfig:"BOOKING_RECONCILE_BATCH" default:"50"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Supplier: SupplierConfig{
			BaseURL:        "http://localhost:18080",
			KeyID:          "test-key-id",
			APIKey:         "test-api-key",
			DefaultTimeout: 5 * time.Second,
			MaxAttempts:    3,
			RetryBase:      time.Millisecond,
		},
		Cache: CacheConfig{
			DefaultTTL: 30 * time.Minute,
			CatalogTTL: 6 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}

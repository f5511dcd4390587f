package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the service reads at start-up.
// It is built once in main and passed by reference to the components that need it.
type Config struct {
	// Application
	AppHost     string   `env:"APP_HOST" envDefault:"localhost"`
	AppPort     string   `env:"APP_PORT" envDefault:"8080"`
	LogLevel    string   `env:"APP_LOG_LEVEL" envDefault:"info"`
	APIPrefix   string   `env:"API_PREFIX" envDefault:"/api/v1"`
	UploadDir   string   `env:"UPLOAD_DIR" envDefault:"./uploads"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// PostgreSQL
	PostgresHost         string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort         int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser         string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPassword     string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB           string `env:"POSTGRES_DB" envDefault:"soulsync"`
	PostgresMaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
	PostgresMaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`

	// Redis track cache, disabled when RedisHost is empty
	RedisHost         string        `env:"REDIS_HOST"`
	RedisPort         int           `env:"REDIS_PORT" envDefault:"6379"`
	RedisDB           int           `env:"REDIS_DB" envDefault:"0"`
	RedisPassword     string        `env:"REDIS_PASSWORD"`
	RedisPoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	TrackCacheTTL     time.Duration `env:"TRACK_CACHE_TTL" envDefault:"5m"`

	// Kafka like events, disabled when KafkaBrokers is empty
	KafkaBrokers    []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaLikesTopic string   `env:"KAFKA_LIKES_TOPIC" envDefault:"likes"`

	// Auth
	JWTSecretKey       string  `env:"JWT_SECRET_KEY" envDefault:"my_super_secret_key"`
	JWTAccessExpSecond int     `env:"JWT_ACCESS_EXP_SECOND" envDefault:"604800"`
	BcryptCost         int     `env:"BCRYPT_COST" envDefault:"10"`
	AuthRateLimit      float64 `env:"AUTH_RATE_LIMIT" envDefault:"5"`
	AuthRateBurst      int     `env:"AUTH_RATE_BURST" envDefault:"10"`
}

// Load reads the optional env file at path into the process environment
// and parses the environment into a Config.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// PostgresDSN returns the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// AccessTokenTTL returns the configured access token lifetime.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.JWTAccessExpSecond) * time.Second
}

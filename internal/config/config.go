package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	Worker   WorkerConfig
	OpenVeo  OpenVeoConfig
	Database DatabaseConfig
	RabbitMQ RabbitMQConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"API_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"API_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"API_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"API_SHUTDOWN_TIMEOUT" default:"10s"`
}

type WorkerConfig struct {
	ShutdownTimeout time.Duration `envconfig:"WORKER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// OpenVeoConfig holds the connection settings of the OpenVeo web service
// and the CDN serving the published videos.
type OpenVeoConfig struct {
	WebServiceURL   string        `envconfig:"OPENVEO_WEB_SERVICE_URL"`
	ClientID        string        `envconfig:"OPENVEO_CLIENT_ID"`
	ClientSecret    string        `envconfig:"OPENVEO_CLIENT_SECRET"`
	CertificateFile string        `envconfig:"OPENVEO_CERTIFICATE_FILE"`
	CDNURL          string        `envconfig:"OPENVEO_CDN_URL"`
	RequestTimeout  time.Duration `envconfig:"OPENVEO_REQUEST_TIMEOUT" default:"10s"`

	// SupportedExtensions is ordered: the first entry wins when the
	// host field accepts any file type.
	SupportedExtensions []string `envconfig:"OPENVEO_SUPPORTED_EXTENSIONS" default:".mp4,.mov"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER" default:"moodle"`
	Password string `envconfig:"POSTGRES_PASSWORD" default:"moodle"`
	DBName   string `envconfig:"POSTGRES_DB" default:"moodle"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

type RabbitMQConfig struct {
	Enabled  bool   `envconfig:"RABBITMQ_ENABLED" default:"true"`
	Host     string `envconfig:"RABBITMQ_HOST" default:"localhost"`
	Port     int    `envconfig:"RABBITMQ_PORT" default:"5672"`
	User     string `envconfig:"RABBITMQ_USER" default:"guest"`
	Password string `envconfig:"RABBITMQ_PASSWORD" default:"guest"`
	VHost    string `envconfig:"RABBITMQ_VHOST" default:"/"`
}

func (c RabbitMQConfig) URL() string {
	return fmt.Sprintf(
		"amqp://%s:%s@%s:%d%s",
		c.User, c.Password, c.Host, c.Port, c.VHost,
	)
}

type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"true"`
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int           `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"1m"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set
// in the environment take precedence over it.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// loadDotEnv loads filename into the environment. A missing file is not
// an error, an unreadable or malformed one is.
func loadDotEnv(filename string) error {
	err := godotenv.Load(filename)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", filename, err)
	}
	return nil
}

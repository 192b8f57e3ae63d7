package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Flights  FlightsConfig  `yaml:"flights"`
	Search   SearchConfig   `yaml:"search"`
	Orders   OrdersConfig   `yaml:"orders"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type HTTPConfig struct {
	Address    string `yaml:"address" env:"HTTP_ADDRESS"`
	SwaggerDir string `yaml:"swagger_dir" env:"HTTP_SWAGGER_DIR"`
}

type GRPCConfig struct {
	Address string `yaml:"address" env:"GRPC_ADDRESS"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST"`
	Port     int    `yaml:"port" env:"POSTGRES_PORT"`
	User     string `yaml:"user" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	Name     string `yaml:"name" env:"POSTGRES_DB"`
	SSLMode  string `yaml:"ssl_mode" env:"POSTGRES_SSL_MODE"`
	Migrate  bool   `yaml:"migrate" env:"POSTGRES_MIGRATE"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	OrdersTopic        string   `yaml:"orders_topic" env:"KAFKA_ORDERS_TOPIC"`
	FlightsTopic       string   `yaml:"flights_topic" env:"KAFKA_FLIGHTS_TOPIC"`
	NotificationsTopic string   `yaml:"notifications_topic" env:"KAFKA_NOTIFICATIONS_TOPIC"`
	GroupID            string   `yaml:"group_id" env:"KAFKA_GROUP_ID"`
}

type FlightsConfig struct {
	CacheTTLSeconds int `yaml:"cache_ttl_seconds" env:"FLIGHTS_CACHE_TTL_SECONDS"`
}

type SearchConfig struct {
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SEARCH_RATE_LIMIT_PER_MINUTE"`
}

type OrdersConfig struct {
	SeatLockSeconds int `yaml:"seat_lock_seconds" env:"ORDERS_SEAT_LOCK_SECONDS"`
}

type WorkerConfig struct {
	CompletionSweepMinutes int    `yaml:"completion_sweep_minutes" env:"WORKER_COMPLETION_SWEEP_MINUTES"`
	MetricsAddress         string `yaml:"metrics_address" env:"WORKER_METRICS_ADDRESS"`
}

// LoadConfig reads the YAML file at path, applies environment overrides
// and fills defaults for everything left unset.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}
	cfg.setDefaults()

	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = ":9090"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Flights.CacheTTLSeconds == 0 {
		c.Flights.CacheTTLSeconds = 30
	}
	if c.Search.RateLimitPerMinute == 0 {
		c.Search.RateLimitPerMinute = 10
	}
	if c.Orders.SeatLockSeconds == 0 {
		c.Orders.SeatLockSeconds = 30
	}
	if c.Worker.CompletionSweepMinutes == 0 {
		c.Worker.CompletionSweepMinutes = 5
	}
	if c.Worker.MetricsAddress == "" {
		c.Worker.MetricsAddress = ":9091"
	}
}

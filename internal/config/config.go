package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const dotEnvFile = ".env"

var ErrDatabaseURLIsEmpty = errors.New("DATABASE_URL is not set")

var (
	configPathFlag string
	flagOnce       sync.Once
)

type Config struct {
	App        `yaml:"app"`
	Logger     `yaml:"log"`
	Database   `yaml:"database"`
	Storage    `yaml:"storage"`
	Redis      `yaml:"redis"`
	HTTPServer `yaml:"http_server"`
	Kafka      `yaml:"kafka"`
}

type App struct {
	ServiceName string `yaml:"service_name" env:"APP_SERVICE_NAME" env-default:"frame-inbox"`
	Version     string `yaml:"version" env:"APP_VERSION" env-default:"0.1.0"`
}

type Logger struct {
	Level      string   `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	FormatJSON bool     `yaml:"format_json" env:"LOG_FORMAT_JSON" env-default:"false"`
	Rotation   Rotation `yaml:"rotation"`
}

type Rotation struct {
	File       string `yaml:"file" env:"LOG_FILE"`
	MaxSize    int    `yaml:"max_size" env:"LOG_MAX_SIZE" env-default:"100"`
	MaxBackups int    `yaml:"max_backups" env:"LOG_MAX_BACKUPS" env-default:"3"`
	MaxAge     int    `yaml:"max_age" env:"LOG_MAX_AGE" env-default:"7"`
}

type Database struct {
	URL             string        `yaml:"url" env:"DATABASE_URL"`
	MaxConns        int32         `yaml:"max_conns" env:"DATABASE_MAX_CONNS" env-default:"10"`
	MinConns        int32         `yaml:"min_conns" env:"DATABASE_MIN_CONNS" env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"DATABASE_MAX_CONN_LIFETIME" env-default:"30m"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"10m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"DATABASE_CONNECT_TIMEOUT" env-default:"10s"`
	Migration       Migration     `yaml:"migration"`
}

type Migration struct {
	AutoApply bool `yaml:"auto_apply" env:"DATABASE_MIGRATION_AUTO_APPLY" env-default:"true"`
}

type Storage struct {
	Root     string `yaml:"root" env:"STORAGE_ROOT" env-default:"data"`
	Timezone string `yaml:"timezone" env:"STORAGE_TIMEZONE" env-default:"Local"`
}

type Redis struct {
	Enable   bool          `yaml:"enable" env:"REDIS_ENABLE" env-default:"false"`
	Host     string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     uint16        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	TTL      time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"5m"`
}

type HTTPServer struct {
	Host               string    `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port               uint16    `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	BasePath           string    `yaml:"base_path" env:"HTTP_BASE_PATH" env-default:"/"`
	MaxMultipartMemory int64     `yaml:"max_multipart_memory" env:"HTTP_MAX_MULTIPART_MEMORY" env-default:"33554432"`
	Timeout            Timeout   `yaml:"timeout"`
	CORS               CORS      `yaml:"cors"`
	RateLimit          RateLimit `yaml:"rate_limit"`
}

type Timeout struct {
	Request time.Duration `yaml:"request" env:"HTTP_TIMEOUT_REQUEST" env-default:"30s"`
	Read    time.Duration `yaml:"read" env:"HTTP_TIMEOUT_READ" env-default:"60s"`
	Write   time.Duration `yaml:"write" env:"HTTP_TIMEOUT_WRITE" env-default:"60s"`
	Idle    time.Duration `yaml:"idle" env:"HTTP_TIMEOUT_IDLE" env-default:"120s"`
}

type CORS struct {
	Enabled          bool          `yaml:"enabled" env:"CORS_ENABLED" env-default:"false"`
	AllowAllOrigins  bool          `yaml:"allow_all_origins" env:"CORS_ALLOW_ALL_ORIGINS" env-default:"false"`
	AllowOrigins     []string      `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS" env-separator:","`
	AllowMethods     []string      `yaml:"allow_methods" env:"CORS_ALLOW_METHODS" env-separator:"," env-default:"GET,PUT,DELETE"`
	AllowHeaders     []string      `yaml:"allow_headers" env:"CORS_ALLOW_HEADERS" env-separator:","`
	ExposeHeaders    []string      `yaml:"expose_headers" env:"CORS_EXPOSE_HEADERS" env-separator:","`
	AllowCredentials bool          `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           time.Duration `yaml:"max_age" env:"CORS_MAX_AGE" env-default:"12h"`
}

// RateLimit PerMinute = 0 disables the limiter.
type RateLimit struct {
	PerMinute int `yaml:"per_minute" env:"RATE_LIMIT_PER_MINUTE" env-default:"0"`
	Burst     int `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"0"`
}

type Kafka struct {
	Enable   bool     `yaml:"enable" env:"KAFKA_ENABLE" env-default:"false"`
	Brokers  []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topics   Topics   `yaml:"topics"`
	Producer Producer `yaml:"producer"`
}

type Topics struct {
	Uploaded string `yaml:"uploaded" env:"KAFKA_TOPIC_UPLOADED" env-default:"frames.uploaded"`
	Deleted  string `yaml:"deleted" env:"KAFKA_TOPIC_DELETED" env-default:"frames.deleted"`
}

type Producer struct {
	Name         string        `yaml:"name" env:"KAFKA_PRODUCER_NAME" env-default:"frame-inbox"`
	WorkerCount  int           `yaml:"worker_count" env:"KAFKA_PRODUCER_WORKER_COUNT" env-default:"2"`
	PollInterval time.Duration `yaml:"poll_interval" env:"KAFKA_PRODUCER_POLL_INTERVAL" env-default:"1s"`
	BatchSize    int           `yaml:"batch_size" env:"KAFKA_PRODUCER_BATCH_SIZE" env-default:"100"`
}

// Location resolves Storage.Timezone, "Local" and "" mean the process zone.
func (s Storage) Location() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}

	return time.LoadLocation(s.Timezone)
}

func MustLoadConfig() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}

	return cfg
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(fetchConfigPath())
}

// LoadConfigFrom reads path when set, otherwise .env if present, otherwise
// the environment alone. Environment variables override file values.
func LoadConfigFrom(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if _, err := os.Stat(dotEnvFile); err == nil {
			path = dotEnvFile
		}
	}

	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}

		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return ErrDatabaseURLIsEmpty
	}

	if _, err := c.Storage.Location(); err != nil {
		return fmt.Errorf("invalid storage timezone %q: %w", c.Storage.Timezone, err)
	}

	if c.Kafka.Enable && len(c.Kafka.Brokers) == 0 {
		return errors.New("kafka is enabled but no brokers are set")
	}

	return nil
}

func MustPrintConfig(cfg *Config) {
	if err := PrintConfig(cfg); err != nil {
		panic(err)
	}
}

func PrintConfig(cfg *Config) error {
	masked := *cfg
	masked.Database.URL = maskURL(cfg.Database.URL)
	masked.Redis.Password = mask(cfg.Redis.Password)

	data, err := yaml.Marshal(masked)
	if err != nil {
		return err
	}

	println(string(data))

	return nil
}

func maskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}

	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "***")
	}

	return u.String()
}

func mask(s string) string {
	if s == "" {
		return ""
	}

	return "***"
}

func fetchConfigPath() string {
	flagOnce.Do(func() {
		flag.StringVar(&configPathFlag, "config", "", "Path to config file")
	})

	if !flag.Parsed() {
		flag.Parse()
	}

	if configPathFlag != "" {
		return configPathFlag
	}

	return os.Getenv("CONFIG_PATH")
}

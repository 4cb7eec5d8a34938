package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Database   Database
	Limiter    Limiter
	Auth       AuthConfig
	Broker     Broker
}

type HttpServer struct {
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout         time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	SwaggerEnabled  bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
}

type Database struct {
	Host              string        `env:"POSTGRES_HOST" env-required:"true"`
	Port              int           `env:"POSTGRES_PORT" env-default:"5432"`
	User              string        `env:"POSTGRES_USER" env-required:"true"`
	Password          string        `env:"POSTGRES_PASSWORD" env-required:"true"`
	DBName            string        `env:"POSTGRES_DATABASE_NAME" env-required:"true"`
	SSLMode           string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	Timeout           time.Duration `env:"POSTGRES_TIMEOUT" env-default:"2s"`
	MinConnections    int32         `env:"POSTGRES_MIN_CONNECTION" env-default:"1"`
	MaxConnections    int32         `env:"POSTGRES_MAX_CONNECTION" env-default:"16"`
	MigrationsEnabled bool          `env:"POSTGRES_MIGRATIONS_ENABLED" env-default:"true"`
}

// DSN builds a postgres URL understood by pgx.
func (d Database) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	q.Set("connect_timeout", strconv.Itoa(int(d.Timeout.Seconds())))
	u.RawQuery = q.Encode()
	return u.String()
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type AuthConfig struct {
	APIToken string `env:"API_X_API_TOKEN" env-required:"true" env-description:"static bearer token for protected routes"`
}

type Broker struct {
	Type  string `env:"REDIS_TYPE" env-default:"redis" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"localhost:6379" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes: ['172.27.29.90:7000','172.27.29.91:7001']"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	BidQueue        string        `env:"BROKER_BID_QUEUE_NAME" env-default:"bid"`
	BidQueueSecond  string        `env:"BROKER_BID_QUEUE_NAME_SECOND" env-default:"bid_second"`
	Concurrency     int           `env:"BROKER_CONSUMER_CONCURRENCY" env-default:"4"`
	ShutdownTimeout time.Duration `env:"BROKER_SHUTDOWN_TIMEOUT" env-default:"8s"`
}

// Load reads the environment, or the file named by CONFIG_PATH with environment
// overrides when it is set.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config from %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read config from environment: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("%s", err)
	}

	return cfg
}

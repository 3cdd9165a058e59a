package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverSQLite   = "sqlite"
)

// Config is the service configuration. Values come from defaults, then an
// optional TOML file, then environment variables.
type Config struct {
	HTTP     HTTPConfig     `toml:"http"`
	Store    StoreConfig    `toml:"store"`
	DynamoDB DynamoDBConfig `toml:"dynamodb"`
	Auth     AuthConfig     `toml:"auth"`
	Redis    RedisConfig    `toml:"redis"`
	Sales    SalesConfig    `toml:"sales"`
	Log      LogConfig      `toml:"log"`
}

type HTTPConfig struct {
	Port string `toml:"port"`
}

type StoreConfig struct {
	Driver     string `toml:"driver"`
	SQLitePath string `toml:"sqlite_path"`
}

type DynamoDBConfig struct {
	Region          string `toml:"region"`
	Endpoint        string `toml:"endpoint"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
	SalesTable      string `toml:"sales_table"`
	ProjectsTable   string `toml:"projects_table"`
	AuditTable      string `toml:"audit_table"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// RedisConfig enables the add-payment idempotency guard when Addr is set.
type RedisConfig struct {
	Addr           string   `toml:"addr"`
	Password       string   `toml:"password"`
	DB             int      `toml:"db"`
	IdempotencyTTL Duration `toml:"idempotency_ttl"`
}

type SalesConfig struct {
	// RevertClearsPayment drops payment data when a sale is reverted to prospect.
	RevertClearsPayment bool `toml:"revert_clears_payment"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Duration decodes TOML strings such as "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func Default() Config {
	return Config{
		HTTP:  HTTPConfig{Port: "8080"},
		Store: StoreConfig{Driver: DriverDynamoDB, SQLitePath: "salesops.db"},
		DynamoDB: DynamoDBConfig{
			Region:          "us-east-1",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
			SalesTable:      "sales",
			ProjectsTable:   "projects",
			AuditTable:      "audit_logs",
		},
		Redis: RedisConfig{IdempotencyTTL: Duration{24 * time.Hour}},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads path (when not empty) and overlays environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.HTTP.Port = getenvDefault("HTTP_PORT", cfg.HTTP.Port)
	cfg.Store.Driver = strings.ToLower(getenvDefault("STORE_DRIVER", cfg.Store.Driver))
	cfg.Store.SQLitePath = getenvDefault("SQLITE_PATH", cfg.Store.SQLitePath)

	cfg.DynamoDB.Region = getenvDefault("AWS_REGION", cfg.DynamoDB.Region)
	cfg.DynamoDB.Endpoint = getenvDefault("DYNAMODB_ENDPOINT", cfg.DynamoDB.Endpoint)
	cfg.DynamoDB.AccessKeyID = getenvDefault("AWS_ACCESS_KEY_ID", cfg.DynamoDB.AccessKeyID)
	cfg.DynamoDB.SecretAccessKey = getenvDefault("AWS_SECRET_ACCESS_KEY", cfg.DynamoDB.SecretAccessKey)
	cfg.DynamoDB.SalesTable = getenvDefault("SALES_TABLE", cfg.DynamoDB.SalesTable)
	cfg.DynamoDB.ProjectsTable = getenvDefault("PROJECTS_TABLE", cfg.DynamoDB.ProjectsTable)
	cfg.DynamoDB.AuditTable = getenvDefault("AUDIT_TABLE", cfg.DynamoDB.AuditTable)

	cfg.Auth.JWTSecret = getenvDefault("JWT_SECRET", cfg.Auth.JWTSecret)

	cfg.Redis.Addr = getenvDefault("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getenvDefault("REDIS_PASSWORD", cfg.Redis.Password)
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		cfg.Redis.DB = db
	}
	if v := os.Getenv("IDEMPOTENCY_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("IDEMPOTENCY_TTL: %w", err)
		}
		cfg.Redis.IdempotencyTTL = Duration{ttl}
	}

	if v := os.Getenv("REVERT_CLEARS_PAYMENT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("REVERT_CLEARS_PAYMENT: %w", err)
		}
		cfg.Sales.RevertClearsPayment = b
	}

	cfg.Log.Level = getenvDefault("LOG_LEVEL", cfg.Log.Level)
	if v := os.Getenv("LOG_DEVELOPMENT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LOG_DEVELOPMENT: %w", err)
		}
		cfg.Log.Development = b
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverDynamoDB:
		if c.DynamoDB.SalesTable == "" || c.DynamoDB.ProjectsTable == "" || c.DynamoDB.AuditTable == "" {
			return errors.New("dynamodb table names are required")
		}
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return errors.New("sqlite path is required")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.HTTP.Port == "" {
		return errors.New("http port is required")
	}
	if c.Redis.Addr != "" && c.Redis.IdempotencyTTL.Duration <= 0 {
		return errors.New("idempotency ttl must be positive")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

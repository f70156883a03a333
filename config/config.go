package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Configuration struct {
	ApiPort     string `json:"api_port" mapstructure:"api_port"`
	Environment string `json:"environment" mapstructure:"environment"`

	Database string `json:"database" mapstructure:"database"` // "postgres" or "sqlite3"
	DbHost   string `json:"db_host" mapstructure:"db_host"`
	DbPort   string `json:"db_port" mapstructure:"db_port"`
	DbUser   string `json:"db_user" mapstructure:"db_user"`
	DbName   string `json:"db_name" mapstructure:"db_name"`
	DbPass   string `json:"db_pass" mapstructure:"db_pass"`
	DbSSL    string `json:"db_sslmode" mapstructure:"db_sslmode"`
	DbPath   string `json:"db_path" mapstructure:"db_path"`

	// BackendURL is where the web proxy forwards /api/permits requests.
	BackendURL   string        `json:"backend_url" mapstructure:"backend_url"`
	ProxyTimeout time.Duration `json:"proxy_timeout" mapstructure:"proxy_timeout"`

	Logging struct {
		Level  string `json:"level" mapstructure:"level"`
		Format string `json:"format" mapstructure:"format"`
	} `json:"logging" mapstructure:"logging"`
}

// IsDevelopment reports whether schema auto-migration and SQL logging should be on.
func (c Configuration) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// DSN builds the connection string handed to gorm.Open for the configured driver.
func (c Configuration) DSN() string {
	if c.Database == "sqlite3" {
		return c.DbPath
	}
	path := "host=" + c.DbHost + " port=" + c.DbPort
	path += " user=" + c.DbUser + " dbname=" + c.DbName
	path += " password=" + c.DbPass + " sslmode=" + c.DbSSL
	return path
}

var envKeys = map[string][]string{
	"api_port":       {"PORT"},
	"environment":    {"APP_ENV", "NODE_ENV"},
	"database":       {"DB_DRIVER"},
	"db_host":        {"DB_HOST"},
	"db_port":        {"DB_PORT"},
	"db_user":        {"DB_USER"},
	"db_name":        {"DB_NAME"},
	"db_pass":        {"DB_PASSWORD"},
	"db_sslmode":     {"DB_SSLMODE"},
	"db_path":        {"DB_PATH"},
	"backend_url":    {"BACKEND_URL"},
	"proxy_timeout":  {"PROXY_TIMEOUT"},
	"logging.level":  {"LOG_LEVEL"},
	"logging.format": {"LOG_FORMAT"},
}

// Load reads the optional JSON config file at path (empty path skips it), then .env,
// then the process environment. Later sources win. defaultPort is used when neither
// the file nor PORT set one, so each binary keeps its own default.
func Load(path, defaultPort string) (Configuration, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("json")

	for key, names := range envKeys {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return Configuration{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return Configuration{}, fmt.Errorf("error reading config %s: %w", path, err)
			}
		}
	}

	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return Configuration{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&c, defaultPort)

	if err := validate(c); err != nil {
		return Configuration{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func applyDefaults(c *Configuration, defaultPort string) {
	if c.ApiPort == "" {
		c.ApiPort = defaultPort
	}
	if c.Environment == "" {
		c.Environment = EnvDevelopment
	}
	if c.Database == "" {
		c.Database = "postgres"
	}
	if c.Database == "postgresql" {
		c.Database = "postgres"
	}
	if c.DbHost == "" {
		c.DbHost = "localhost"
	}
	if c.DbPort == "" {
		c.DbPort = "5432"
	}
	if c.DbUser == "" {
		c.DbUser = "permit_user"
	}
	if c.DbPass == "" {
		c.DbPass = "permit_password"
	}
	if c.DbName == "" {
		c.DbName = "permit_db"
	}
	if c.DbSSL == "" {
		c.DbSSL = "disable"
	}
	if c.DbPath == "" {
		c.DbPath = "db/database.db"
	}
	if c.BackendURL == "" {
		c.BackendURL = "http://localhost:3001"
	}
	c.BackendURL = strings.TrimRight(c.BackendURL, "/")
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
}

func validate(c Configuration) error {
	if c.Database != "postgres" && c.Database != "sqlite3" {
		return fmt.Errorf("database must be postgres or sqlite3, got %q", c.Database)
	}
	if c.ProxyTimeout < 0 {
		return fmt.Errorf("proxy_timeout must not be negative")
	}
	return nil
}

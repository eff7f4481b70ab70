package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Notify    NotifyConfig    `yaml:"notify"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Storage   StorageConfig   `yaml:"storage"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Timezone used to decide the current month, e.g. "Asia/Kolkata".
	Timezone string `yaml:"timezone"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	SSLMode      string `yaml:"ssl_mode"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	AutoMigrate  bool   `yaml:"auto_migrate"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// NotifyConfig selects how the operator receives dues digests.
type NotifyConfig struct {
	Provider      string         `yaml:"provider"` // "smtp", "sendgrid" or "log"
	OperatorEmail string         `yaml:"operator_email"`
	OperatorName  string         `yaml:"operator_name"`
	From          string         `yaml:"from"`
	FromName      string         `yaml:"from_name"`
	SMTP          SMTPConfig     `yaml:"smtp"`
	SendGrid      SendGridConfig `yaml:"sendgrid"`
}

// SMTPConfig contains email service settings
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type SendGridConfig struct {
	APIKey string `yaml:"api_key"`
}

// SchedulerConfig contains cron schedule settings (six fields, seconds first)
type SchedulerConfig struct {
	SendDuesDigest      string `yaml:"send_dues_digest"`
	TakeMonthlySnapshot string `yaml:"take_monthly_snapshot"`
}

// StorageConfig controls where generated reports are archived. An empty
// ReportDir disables archiving.
type StorageConfig struct {
	ReportDir string `yaml:"report_dir"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies environment overrides and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("TZ_NAME"); val != "" {
		c.Server.Timezone = val
	}

	// Notify
	if val := os.Getenv("NOTIFY_PROVIDER"); val != "" {
		c.Notify.Provider = val
	}
	if val := os.Getenv("OPERATOR_EMAIL"); val != "" {
		c.Notify.OperatorEmail = val
	}
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.Notify.SMTP.Host = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Notify.SMTP.Port)
	}
	if val := os.Getenv("SMTP_USER"); val != "" {
		c.Notify.SMTP.User = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.Notify.SMTP.Password = val
	}
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Notify.SendGrid.APIKey = val
	}

	// Storage
	if val := os.Getenv("REPORT_DIR"); val != "" {
		c.Storage.ReportDir = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.Timezone == "" {
		c.Server.Timezone = "UTC"
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	c.Notify.Provider = strings.ToLower(c.Notify.Provider)
	switch c.Notify.Provider {
	case "":
		c.Notify.Provider = "log"
	case "log":
	case "smtp":
		if c.Notify.SMTP.Host == "" {
			return fmt.Errorf("SMTP host is required for the smtp provider")
		}
		if c.Notify.SMTP.Port <= 0 || c.Notify.SMTP.Port > 65535 {
			return fmt.Errorf("invalid SMTP port: %d", c.Notify.SMTP.Port)
		}
	case "sendgrid":
		if c.Notify.SendGrid.APIKey == "" {
			return fmt.Errorf("SendGrid API key is required for the sendgrid provider")
		}
	default:
		return fmt.Errorf("unknown notify provider: %q", c.Notify.Provider)
	}
	if c.Notify.Provider != "log" {
		if c.Notify.OperatorEmail == "" {
			return fmt.Errorf("operator email is required")
		}
		if c.Notify.From == "" {
			return fmt.Errorf("notify from address is required")
		}
	}
	if c.Notify.FromName == "" {
		c.Notify.FromName = "Hostel Ledger"
	}

	if c.Scheduler.SendDuesDigest == "" {
		c.Scheduler.SendDuesDigest = "0 0 9 5 * *" // 5th of month at 9 AM
	}
	if c.Scheduler.TakeMonthlySnapshot == "" {
		c.Scheduler.TakeMonthlySnapshot = "0 5 0 1 * *" // 1st of month at 12:05 AM
	}

	return nil
}

// Location returns the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

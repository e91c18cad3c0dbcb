package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// StorageConfig locates the payment-screenshot store. BaseURL is the public
// prefix under which stored objects are served.
type StorageConfig struct {
	Dir     string `mapstructure:"dir"`
	BaseURL string `mapstructure:"base_url"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// NotificationConfig is the relay's static operator contact plus the
// optional email delivery credential. An empty SMTP password disables the
// email sub-step without being an error.
type NotificationConfig struct {
	AdminPhone  string     `mapstructure:"admin_phone"`
	AdminEmail  string     `mapstructure:"admin_email"`
	FromName    string     `mapstructure:"from_name"`
	FromAddress string     `mapstructure:"from_address"`
	SMTP        SMTPConfig `mapstructure:"smtp"`
}

// EmailEnabled reports whether a delivery credential is configured.
func (c NotificationConfig) EmailEnabled() bool {
	return c.SMTP.Password != ""
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type SecurityConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type MonitoringConfig struct {
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Storage      StorageConfig      `mapstructure:"storage"`
	Notification NotificationConfig `mapstructure:"notification"`
	RateLimit    RateLimitConfig    `mapstructure:"rate_limit"`
	Security     SecurityConfig     `mapstructure:"security"`
	Monitoring   MonitoringConfig   `mapstructure:"monitoring"`
	Log          LogConfig          `mapstructure:"log"`
}

// secrets are read from the environment at startup and override file
// values. The SMTP password is the relay's one optional delivery credential.
type secrets struct {
	DBPassword   string `envconfig:"DB_PASSWORD"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
}

// Load reads config.yaml and applies environment overrides. The result is
// immutable after startup and injected into services at construction time.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 15*time.Second)
	viper.SetDefault("server.write_timeout", 15*time.Second)
	viper.SetDefault("storage.dir", "./uploads")
	viper.SetDefault("storage.base_url", "/uploads")
	viper.SetDefault("rate_limit.rps", 20)
	viper.SetDefault("rate_limit.burst", 40)
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var sec secrets
	if err := envconfig.Process("cosmoracle", &sec); err != nil {
		return nil, fmt.Errorf("failed to read environment secrets: %w", err)
	}
	if sec.DBPassword != "" {
		cfg.Database.Password = sec.DBPassword
	}
	if sec.SMTPPassword != "" {
		cfg.Notification.SMTP.Password = sec.SMTPPassword
	}
	if sec.SentryDSN != "" {
		cfg.Monitoring.SentryDSN = sec.SentryDSN
	}

	return &cfg, nil
}

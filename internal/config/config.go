// Package config loads server settings from the environment and an optional
// YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Relay names accepted by CONTACT_RELAY.
const (
	RelayLog        = "log"
	RelayFormSubmit = "formsubmit"
	RelaySMTP       = "smtp"
)

type SMTP struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
}

type Admin struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Config is the full server configuration.
type Config struct {
	Port             int           `mapstructure:"port"`
	GinMode          string        `mapstructure:"gin_mode"`
	LogLevel         string        `mapstructure:"log_level"`
	DBPath           string        `mapstructure:"db_path"`
	StaticDir        string        `mapstructure:"static_dir"`
	VisitorRetention time.Duration `mapstructure:"visitor_retention"`

	ContactRelay       string `mapstructure:"contact_relay"`
	FormSubmitEndpoint string `mapstructure:"formsubmit_endpoint"`
	ToEmail            string `mapstructure:"to_email"`
	SMTP               SMTP   `mapstructure:"smtp"`

	Admin Admin `mapstructure:"admin"`
}

// Debug reports whether the server runs in gin debug mode.
func (c Config) Debug() bool {
	return c.GinMode == "debug"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("log_level", "info")
	v.SetDefault("db_path", "portfolio.db")
	v.SetDefault("static_dir", "static")
	v.SetDefault("visitor_retention", "8760h")

	v.SetDefault("contact_relay", RelayLog)
	v.SetDefault("formsubmit_endpoint", "https://formsubmit.co/ajax/")
	v.SetDefault("to_email", "")
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.pass", "")

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin123")
}

// Load reads defaults, then file (when not empty), then the environment.
// Env names are the upper-cased keys with "." replaced by "_", e.g.
// SMTP_HOST.
func Load(file string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.ContactRelay = strings.ToLower(strings.TrimSpace(cfg.ContactRelay))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail at request time.
func (c Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.VisitorRetention <= 0 {
		errs = append(errs, fmt.Errorf("visitor_retention must be positive"))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("unknown gin_mode %q", c.GinMode))
	}
	switch c.ContactRelay {
	case RelayLog:
	case RelayFormSubmit:
		if c.ToEmail == "" {
			errs = append(errs, fmt.Errorf("to_email is required for the formsubmit relay"))
		}
	case RelaySMTP:
		if c.SMTP.Host == "" || c.ToEmail == "" {
			errs = append(errs, fmt.Errorf("smtp.host and to_email are required for the smtp relay"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown contact_relay %q", c.ContactRelay))
	}
	return errors.Join(errs...)
}

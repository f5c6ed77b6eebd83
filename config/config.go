// Package config loads the server configuration from a YAML file and
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the VerdeTech server.
type Config struct {
	// Listen is the address the server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// DatabasePath is the path to the SQLite database file.
	DatabasePath string `yaml:"database_path" mapstructure:"database_path"`
	// SessionKey is the key used to encrypt session cookies.
	SessionKey string `yaml:"session_key" mapstructure:"session_key"`
	// SessionMaxAge is the maximum age of a session in seconds.
	SessionMaxAge int `yaml:"session_max_age" mapstructure:"session_max_age"`
	// AdminEmail identifies the single account allowed to use the admin
	// endpoints. Compared against the case-normalized login identifier.
	AdminEmail string `yaml:"admin_email" mapstructure:"admin_email"`
	// Debug enables gin debug mode and verbose request logging.
	Debug bool `yaml:"debug" mapstructure:"debug"`
}

// Load reads the configuration from the specified path and returns a Config
// struct. If path is empty, it searches the default locations. Environment
// variables with the VERDETECH_ prefix override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("VERDETECH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.verdetech")
		v.AddConfigPath("/etc/verdetech")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	c.AdminEmail = strings.ToLower(strings.TrimSpace(c.AdminEmail))

	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:5000")
	v.SetDefault("database_path", "./data/verdetech.db")
	v.SetDefault("session_key", "dev-secret-key-change-in-production")
	v.SetDefault("session_max_age", 172800) // 48 hours
	v.SetDefault("admin_email", "")
	v.SetDefault("debug", false)
}

func validateConfig(c *Config) error {
	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path is required")
	}
	if c.SessionKey == "" {
		return fmt.Errorf("session key is required")
	}
	if c.AdminEmail == "" {
		log.Warn("no admin email configured, admin endpoints will be unavailable")
	}
	return nil
}

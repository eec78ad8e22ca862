package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Session  *SessionConfig  `mapstructure:"session"`
	Redis    *RedisConfig    `mapstructure:"redis"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Port               string `mapstructure:"port"`
	Environment        string `mapstructure:"environment"`
	BaseURL            string `mapstructure:"base_url"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
	TemplatesGlob      string `mapstructure:"templates_glob"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type SessionConfig struct {
	CookieName string `mapstructure:"cookie_name"`
	Secret     string `mapstructure:"secret"`
	Store      string `mapstructure:"store"` // "memory" or "redis"
	TTLMinutes int    `mapstructure:"ttl_minutes"`
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type PostgresConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// Load reads the YAML config at path. Every key can be overridden from the
// environment, e.g. API_PORT=8080 overrides api.port.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	return &conf, nil
}

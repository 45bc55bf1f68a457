package config

import (
	"fmt"
	"strings"

	"brickset/client/internal/request"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Brickset BricksetConfig `mapstructure:"brickset"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
}

// BricksetConfig holds Brickset API configuration
type BricksetConfig struct {
	BaseURL    string   `mapstructure:"base_url"`
	APIKey     string   `mapstructure:"api_key"`
	UserAgent  string   `mapstructure:"user_agent"`
	Timeout    int      `mapstructure:"timeout"`
	MaxWorkers int      `mapstructure:"max_workers"`
	PageSize   int      `mapstructure:"page_size"`
	Proxies    []string `mapstructure:"proxies"`

	// Authentication
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// DSN renders a pgx connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	Password      string `mapstructure:"password"`
	Database      int    `mapstructure:"database"`
	ConsumerGroup string `mapstructure:"consumer_group"`
	TokenTTL      int    `mapstructure:"token_ttl"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config.yaml file not found in current directory")
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.Brickset.APIKey == "" {
		return nil, fmt.Errorf("brickset.api_key is required")
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("brickset.base_url", request.Endpoint)
	v.SetDefault("brickset.api_key", "")
	v.SetDefault("brickset.user_agent", "brickset-client/1.0")
	v.SetDefault("brickset.timeout", 30)
	v.SetDefault("brickset.max_workers", 4)
	v.SetDefault("brickset.page_size", request.MaxPageSize)
	v.SetDefault("brickset.username", "")
	v.SetDefault("brickset.password", "")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "brickset")
	v.SetDefault("database.user", "brickset_user")
	v.SetDefault("database.password", "brickset_pass")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.consumer_group", "brickset_consumer")
	v.SetDefault("redis.token_ttl", 7*24*3600)

	v.SetDefault("log.level", "info")
}

package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by Load
const EnvPrefix = "SENTIMENT"

// Config holds the application configuration
type Config struct {
	Server ServerConfig `envconfig:"SERVER"`
	UI     UIConfig     `envconfig:"UI"`
	Model  ModelConfig  `envconfig:"MODEL"`
	Log    LogConfig    `envconfig:"LOG"`
}

// ServerConfig holds the API server settings
type ServerConfig struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"8000" validate:"min=1,max=65535"`
	Mode string `envconfig:"MODE" default:"release" validate:"oneof=debug release test"`
}

// UIConfig holds the demo UI server settings
type UIConfig struct {
	Enabled bool   `envconfig:"ENABLED" default:"true"`
	Host    string `envconfig:"HOST" default:"0.0.0.0"`
	Port    int    `envconfig:"PORT" default:"7860" validate:"min=1,max=65535"`
}

// ModelConfig holds the inference backend settings
type ModelConfig struct {
	ID           string        `envconfig:"ID" default:"distilbert-base-uncased-finetuned-sst-2-english" validate:"required"`
	InferenceURL string        `envconfig:"INFERENCE_URL" default:"http://localhost:8080" validate:"required,url"`
	Token        string        `envconfig:"TOKEN"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"30s" validate:"gt=0"`
	StartupWait  time.Duration `envconfig:"STARTUP_WAIT" default:"60s" validate:"gte=0"`
}

// LogConfig holds the logger settings
type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"json" validate:"oneof=json console"`
}

var validate = validator.New()

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables
// take precedence over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Addr returns the API listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Addr returns the demo UI listen address
func (c UIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env               string `yaml:"env" env:"ENV" env-default:"prod"`
	TemplatePath      string `yaml:"template_path" env:"TEMPLATE_PATH" env-default:"template.xlsx"`
	BootstrapTemplate bool   `yaml:"bootstrap_template" env:"BOOTSTRAP_TEMPLATE" env-default:"false"`
	ErrorLogPath      string `yaml:"error_log_path" env:"ERROR_LOG_PATH" env-default:"errors.log"`
	HTTPServer        `yaml:"http_server"`
	CORS              CORS `yaml:"cors"`

	// Basic auth for the smoke-test endpoint, disabled when empty.
	SmokeLogin string `yaml:"smoke_login" env:"SMOKE_LOGIN"`
	SmokePass  string `yaml:"smoke_pass" env:"SMOKE_PASS"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"0.0.0.0:10000"`
	Timeout         time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"5s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" env-default:"1048576"`
}

type CORS struct {
	AllowedOrigins   []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowCredentials bool     `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
}

func MustConfig() *Config {
	// .env is optional
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

// Load reads the YAML file at path; a missing file falls back to environment variables only.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

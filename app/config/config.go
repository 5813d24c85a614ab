package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
	Store  Store  `yaml:"store"`
	Dialog Dialog `yaml:"dialog"`
}

type Server struct {
	// Listen address of the skill webhook
	Addr string `yaml:"addr" example:":8080" validate:"required"`
}

type Store struct {
	// Attributes store backend, either "sqlite" or "file"
	Backend string `yaml:"backend" example:"sqlite" validate:"required,oneof=sqlite file"`
	// Path of the database file (sqlite) or JSON-lines file (file)
	Path string `yaml:"path" example:"data/attributes.db" validate:"required"`
}

type Dialog struct {
	// Optional path of a message catalog overriding the embedded one
	Messages string `yaml:"messages"`
}

type Log struct {
	// Minimal console log level: debug, info, warn or error
	Level string `yaml:"level" example:"debug"`
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Server.Addr == "" {
		result.Server.Addr = ":8080"
	}
	if result.Store.Backend == "" {
		result.Store.Backend = "sqlite"
	}
	if result.Store.Path == "" {
		result.Store.Path = "data/attributes.db"
	}
	if result.Log.Level == "" {
		result.Log.Level = "debug"
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}

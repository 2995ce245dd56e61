package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board   `yaml:"board"`
	Players  Players `yaml:"players"`
}

type Board struct {
	Height int `yaml:"height" env:"BOARD_HEIGHT" env-default:"6"`
	Width  int `yaml:"width" env:"BOARD_WIDTH" env-default:"7"`
}

type Players struct {
	First  int `yaml:"first" env:"PLAYER_FIRST" env-default:"1"`
	Second int `yaml:"second" env:"PLAYER_SECOND" env-default:"2"`
}

// Load - reads the yaml file at path, applying env overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// LoadEnv - builds the configuration from environment variables and defaults only.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid environment config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := entity.ValidateDimensions(that.Board.Height, that.Board.Width); err != nil {
		return err
	}

	if that.Players.First == 0 || that.Players.Second == 0 {
		return apperror.ErrInvalidPlayer
	}

	if that.Players.First == that.Players.Second {
		return apperror.ErrDuplicatePlayers
	}

	return nil
}

func (that *Players) IDs() (entity.PlayerID, entity.PlayerID) {
	return entity.PlayerID(that.First), entity.PlayerID(that.Second)
}

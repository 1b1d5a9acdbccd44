package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/rocketscienceinc/gamehub/internal/minigame"
)

const (
	StatsDriverMemory = "memory"
	StatsDriverRedis  = "redis"
)

var (
	ErrUnknownStatsDriver = errors.New("unknown stats driver")
	ErrInvalidHangmanWord = errors.New("hangman words must be letters A-Z only")
)

// Boolean switches default to false: cleanenv replaces a zero value with env-default,
// so a "true" default could never be turned off from config.yml.
type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE" env-default:""`
	NoColor  bool    `yaml:"no-color" env:"NO_COLOR"`
	Seed     uint64  `yaml:"seed" env:"SEED" env-default:"0"`
	Delays   Delays  `yaml:"delays"`
	Stats    Stats   `yaml:"stats"`
	Hangman  Hangman `yaml:"hangman"`
}

// Delays are cosmetic only; Skip turns all of them off.
type Delays struct {
	Skip    bool          `yaml:"skip" env:"DELAY_SKIP"`
	Loading time.Duration `yaml:"loading" env:"DELAY_LOADING" env-default:"600ms"`
	Roll    time.Duration `yaml:"roll" env:"DELAY_ROLL" env-default:"500ms"`
	AIThink time.Duration `yaml:"ai-think" env:"DELAY_AI_THINK" env-default:"600ms"`
	Notice  time.Duration `yaml:"notice" env:"DELAY_NOTICE" env-default:"500ms"`
}

// Effective - returns the delays to use, all zero when Skip is set.
func (that Delays) Effective() Delays {
	if that.Skip {
		return Delays{Skip: true}
	}

	return that
}

type Stats struct {
	Driver string `yaml:"driver" env:"STATS_DRIVER" env-default:"memory"`
	Redis  Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Hangman struct {
	Words []string `yaml:"words" env:"HANGMAN_WORDS" env-separator:"," env-default:"PROGRAMMING,COMPUTER,KEYBOARD,DEVELOPER,ALGORITHM,VARIABLE,POINTER"`
	Lives int      `yaml:"lives" env:"HANGMAN_LIVES" env-default:"6"`
}

// MustLoad - load all configurations in config.yml file.
// A missing file is not an error: defaults and the environment are used instead.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	// values from .env never override the real environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to read .env: %w", err)
	}

	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read config %s: %w", path, err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Stats.Driver {
	case StatsDriverMemory, StatsDriverRedis:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStatsDriver, that.Stats.Driver)
	}

	if len(that.Hangman.Words) == 0 {
		return errors.New("hangman word list is empty")
	}

	for _, word := range that.Hangman.Words {
		if !minigame.ValidWord(word) {
			return fmt.Errorf("%w: %q", ErrInvalidHangmanWord, word)
		}
	}

	if that.Hangman.Lives <= 0 {
		return fmt.Errorf("hangman lives must be positive, got %d", that.Hangman.Lives)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

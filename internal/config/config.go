package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidMarks = errors.New("marks must be two different single characters")

type Config struct {
	LogLevel       string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	MachineFirst   bool   `yaml:"machine-first" env:"TTT_MACHINE_FIRST" env-default:"false"`
	ParallelSearch bool   `yaml:"parallel-search" env:"TTT_PARALLEL_SEARCH" env-default:"false"`
	NoColor        bool   `yaml:"no-color" env:"TTT_NO_COLOR"`
	Marks          Marks  `yaml:"marks"`
}

// Marks are the symbols shown on the board, they do not change the game.
type Marks struct {
	Human   string `yaml:"human" env:"TTT_HUMAN_MARK" env-default:"O"`
	Machine string `yaml:"machine" env:"TTT_MACHINE_MARK" env-default:"X"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := config.Marks.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Marks) Validate() error {
	if utf8.RuneCountInString(that.Human) != 1 || utf8.RuneCountInString(that.Machine) != 1 || that.Human == that.Machine {
		return fmt.Errorf("%w: human %q, machine %q", ErrInvalidMarks, that.Human, that.Machine)
	}

	return nil
}

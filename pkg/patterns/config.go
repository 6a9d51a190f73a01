package patterns

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds registry settings that can be supplied through the environment.
type Config struct {
	MatchTimeout   time.Duration `env:"REGEXKIT_MATCH_TIMEOUT" envDefault:"100ms"`
	MaxInputLength int           `env:"REGEXKIT_MAX_INPUT_LENGTH" envDefault:"0"`
}

// LoadConfig parses Config from environment variables. When files are given
// they are loaded first and a missing file is an error; otherwise a .env file
// in the working directory is loaded if present. Variables already set in the
// process environment take precedence over file values.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		// The default .env file is optional.
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

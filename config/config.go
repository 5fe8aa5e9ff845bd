package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Input configuration
	Input struct {
		// Path to the #-delimited listing file
		Path string `env:"LISTINGS_FILE" envDefault:"realestates.txt"`
	}

	// Report configuration
	Report struct {
		// Path the rendered report is persisted to
		OutputPath string `env:"REPORT_FILE" envDefault:"outputRealEstate.txt"`

		// City used for the most-expensive-property statistic
		FocusCity string `env:"REPORT_CITY" envDefault:"Budapest"`
	}

	// Logging configuration
	Logging struct {
		// Logrus level name (debug, info, warn, error)
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

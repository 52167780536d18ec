package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/pricechart"
	"github.com/etnz/pricechart/transition"
	"github.com/spf13/viper"
)

// Config is the configuration of the pchart command.
type Config struct {
	Currency     string         `mapstructure:"currency"`
	Floor        float64        `mapstructure:"floor"`
	Window       string         `mapstructure:"window"`
	Width        float64        `mapstructure:"width"`
	Height       float64        `mapstructure:"height"`
	Seed         uint64         `mapstructure:"seed"`
	Points       int            `mapstructure:"points"`
	TickerPeriod time.Duration  `mapstructure:"ticker_period"`
	LogLevel     string         `mapstructure:"log_level"`
	JSONPath     JSONPathConfig `mapstructure:"jsonpath"`
}

// JSONPathConfig holds the paths used to read series out of JSON documents.
type JSONPathConfig struct {
	Dates   string `mapstructure:"dates"`
	Prices  string `mapstructure:"prices"`
	Volumes string `mapstructure:"volumes"`
}

// EnvPrefix prefixes environment variables overriding the configuration.
const EnvPrefix = "PCHART"

// LoadConfig reads the configuration.
//
// When path is empty, pchart.yaml is looked up in the current directory and is
// optional. Environment variables prefixed by PCHART_ override the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("currency", pricechart.DefaultCurrency)
	v.SetDefault("floor", pricechart.DefaultFloor)
	v.SetDefault("window", string(pricechart.DefaultWindow))
	v.SetDefault("width", 800)
	v.SetDefault("height", 400)
	v.SetDefault("seed", pricechart.DefaultSeed)
	v.SetDefault("points", 365)
	v.SetDefault("ticker_period", transition.DefaultLoopPeriod)
	v.SetDefault("log_level", "info")
	v.SetDefault("jsonpath.dates", "$.dates")
	v.SetDefault("jsonpath.prices", "$.prices")
	v.SetDefault("jsonpath.volumes", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pchart")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid config: viewport %vx%v must be positive", c.Width, c.Height)
	case c.Points <= 0:
		return fmt.Errorf("invalid config: points %d must be positive", c.Points)
	case c.TickerPeriod <= 0:
		return fmt.Errorf("invalid config: ticker_period %v must be positive", c.TickerPeriod)
	}
	return nil
}

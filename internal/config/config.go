// Package config provides run defaults, overridable by an optional
// schedgen.yaml in the working directory and by SCHEDGEN_* environment
// variables. Command-line flags take precedence over both.
package config

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/vawerekax/schedgen/pkg/model"
)

type Config struct {
	AllowedOverlap int
	MinTravelGap   int
	MinCredits     int
	OutputDir      string
	Render         bool
	Lenient        bool
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("schedgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("SCHEDGEN")
	v.AutomaticEnv()

	v.SetDefault("allowed_overlap", model.DefaultAllowedOverlap)
	v.SetDefault("min_travel_gap", model.DefaultMinTravelGap)
	v.SetDefault("min_credits", 0)
	v.SetDefault("output_dir", "schedules")
	v.SetDefault("render", false)
	v.SetDefault("lenient", false)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, the defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		AllowedOverlap: v.GetInt("allowed_overlap"),
		MinTravelGap:   v.GetInt("min_travel_gap"),
		MinCredits:     v.GetInt("min_credits"),
		OutputDir:      v.GetString("output_dir"),
		Render:         v.GetBool("render"),
		Lenient:        v.GetBool("lenient"),
	}, nil
}

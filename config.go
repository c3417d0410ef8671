package main

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	noHistory     = "none"
	sqliteHistory = "sqlite"
	boltHistory   = "boltdb"
)

type config struct {
	KFactor       int    `yaml:"k_factor" validate:"min=1"`
	InitialRating int    `yaml:"initial_rating"`
	Matchmaker    string `yaml:"matchmaker" validate:"oneof=random balanced close"`
	History       string `yaml:"history" validate:"oneof=none sqlite boltdb"`
	HistoryFile   string `yaml:"history_file" validate:"required_unless=History none"`
	OutputDir     string `yaml:"output_dir"`
	Debug         bool   `yaml:"debug"`
}

var validate = validator.New()

func defaultConfig() config {
	return config{
		KFactor:       defaultK,
		InitialRating: defaultRating,
		Matchmaker:    randomMatchmaker,
		History:       noHistory,
	}
}

// loadConfig layers the YAML file at path, when given, and then the
// environment over the defaults.
func loadConfig(path string, getenv func(string) string) (config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = getenv("RANK_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "unable to read config")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "unable to parse config %s", path)
		}
		Debugf("loaded config from %s", path)
	}

	if v := getenv("RANK_K_FACTOR"); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.Wrap(err, "invalid RANK_K_FACTOR")
		}
		cfg.KFactor = k
	}
	if v := getenv("RANK_HISTORY"); v != "" {
		cfg.History = v
	}
	if v := getenv("RANK_HISTORY_FILE"); v != "" {
		cfg.HistoryFile = v
	}

	return cfg, nil
}

func (c config) validate() error {
	return errors.Wrap(validate.Struct(c), "invalid configuration")
}

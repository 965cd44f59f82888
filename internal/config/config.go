// Package config loads application configuration from file, environment,
// and defaults, and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Inputs InputsConfig `yaml:"inputs" mapstructure:"inputs"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Run    RunConfig    `yaml:"run" mapstructure:"run"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// InputsConfig holds paths to the three input tables.
type InputsConfig struct {
	Sales    string `yaml:"sales" mapstructure:"sales"`
	Chargers string `yaml:"chargers" mapstructure:"chargers"`
	Cities   string `yaml:"cities" mapstructure:"cities"`
}

// OutputConfig configures where output tables are written.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// RunConfig holds the analytical parameters of one pipeline run. All of
// these are externally tunable; the defaults reproduce the reference
// run.
type RunConfig struct {
	TargetYear       int                `yaml:"target_year" mapstructure:"target_year"`
	GrowthRate       float64            `yaml:"growth_rate" mapstructure:"growth_rate"`
	HorizonYears     int                `yaml:"horizon_years" mapstructure:"horizon_years"`
	TargetPer10kEv   float64            `yaml:"target_per_10k_ev" mapstructure:"target_per_10k_ev"`
	GapHighThreshold float64            `yaml:"gap_high_threshold" mapstructure:"gap_high_threshold"`
	CitiesOfInterest []string           `yaml:"cities_of_interest" mapstructure:"cities_of_interest"`
	FallbackStateEv  map[string]float64 `yaml:"fallback_state_ev" mapstructure:"fallback_state_ev"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// defaultCities is the curated city-of-interest list of the reference
// run.
var defaultCities = []string{
	"mumbai", "pune", "delhi", "chennai", "kolkata", "jaipur", "surat",
	"bangalore", "hyderabad", "ahmedabad", "nagpur", "patna", "lucknow",
	"kanpur", "mirzapur", "allahabad", "raipur", "bhopal",
	"vishakhapatnam", "vijayawada", "vijayapura", "thane", "nanded",
	"aurangabad",
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("EVGAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("inputs.sales", "data/EV_Dataset_IN_sales.csv")
	v.SetDefault("inputs.chargers", "data/ev-charging-stations-india.csv")
	v.SetDefault("inputs.cities", "data/in.csv")
	v.SetDefault("output.dir", "data")
	v.SetDefault("run.target_year", 2023)
	v.SetDefault("run.growth_rate", 0.12)
	v.SetDefault("run.horizon_years", 5)
	v.SetDefault("run.target_per_10k_ev", 55)
	v.SetDefault("run.gap_high_threshold", 0.9)
	v.SetDefault("run.cities_of_interest", defaultCities)
	v.SetDefault("run.fallback_state_ev", map[string]float64{"telangana": 74714})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

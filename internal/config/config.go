// Package config loads application configuration from config.yaml and
// BUNKER_* environment variables and bootstraps the global logger.
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
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Region    RegionConfig    `yaml:"region" mapstructure:"region"`
	Registry  RegistryConfig  `yaml:"registry" mapstructure:"registry"`
	Providers ProvidersConfig `yaml:"providers" mapstructure:"providers"`
	Batch     BatchConfig     `yaml:"batch" mapstructure:"batch"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// StoreConfig configures the resolution audit log backend. An empty driver
// disables persistence.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// RegionConfig describes the expected service envelope. A zero box falls
// back to the built-in India bounds; ShapefilePath, when set, derives the
// envelope from an admin-boundary shapefile header instead.
type RegionConfig struct {
	MinLat        float64 `yaml:"min_lat" mapstructure:"min_lat"`
	MinLng        float64 `yaml:"min_lng" mapstructure:"min_lng"`
	MaxLat        float64 `yaml:"max_lat" mapstructure:"max_lat"`
	MaxLng        float64 `yaml:"max_lng" mapstructure:"max_lng"`
	ShapefilePath string  `yaml:"shapefile_path" mapstructure:"shapefile_path"`
}

// HasBox reports whether an explicit bounding box was configured.
func (r RegionConfig) HasBox() bool {
	return r.MinLat != 0 || r.MinLng != 0 || r.MaxLat != 0 || r.MaxLng != 0
}

// RegistryConfig points at optional curated-data snapshots merged over the
// embedded defaults.
type RegistryConfig struct {
	SnapshotPath string `yaml:"snapshot_path" mapstructure:"snapshot_path"`
	XLSXPath     string `yaml:"xlsx_path" mapstructure:"xlsx_path"`
}

// ProvidersConfig holds per-provider geocoding settings.
type ProvidersConfig struct {
	Mapbox    MapboxConfig    `yaml:"mapbox" mapstructure:"mapbox"`
	Nominatim NominatimConfig `yaml:"nominatim" mapstructure:"nominatim"`
}

// MapboxConfig holds primary-provider credentials and limits. An empty
// token leaves the primary stage disabled.
type MapboxConfig struct {
	Token string  `yaml:"token" mapstructure:"token"`
	RPS   float64 `yaml:"rps" mapstructure:"rps"`
	Limit int     `yaml:"limit" mapstructure:"limit"`
}

// NominatimConfig holds fallback-provider settings. The public endpoint
// allows one request per second and requires an identifying user agent.
type NominatimConfig struct {
	Enabled   bool    `yaml:"enabled" mapstructure:"enabled"`
	UserAgent string  `yaml:"user_agent" mapstructure:"user_agent"`
	RPS       float64 `yaml:"rps" mapstructure:"rps"`
	Limit     int     `yaml:"limit" mapstructure:"limit"`
}

// BatchConfig configures batch resolution.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("BUNKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("store.driver", "")
	v.SetDefault("store.max_conns", 10)
	v.SetDefault("store.min_conns", 2)
	v.SetDefault("providers.mapbox.rps", 10)
	v.SetDefault("providers.mapbox.limit", 5)
	v.SetDefault("providers.nominatim.enabled", true)
	v.SetDefault("providers.nominatim.rps", 1)
	v.SetDefault("providers.nominatim.limit", 5)
	v.SetDefault("batch.concurrency", 4)

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

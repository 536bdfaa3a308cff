// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/loganko83/realcare/internal/reality"
)

// Application identity, reported by the health endpoint and the CLI.
const (
	AppName    = "RealCare API"
	AppVersion = "1.0.0"
)

// Config holds the full application configuration.
type Config struct {
	Server  ServerConfig   `yaml:"server" mapstructure:"server"`
	Log     LogConfig      `yaml:"log" mapstructure:"log"`
	Cache   CacheConfig    `yaml:"cache" mapstructure:"cache"`
	Regions RegionsConfig  `yaml:"regions" mapstructure:"regions"`
	Reality reality.Config `yaml:"reality" mapstructure:"reality"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Host        string   `yaml:"host" mapstructure:"host"`
	Port        int      `yaml:"port" mapstructure:"port"`
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// CacheConfig configures the analysis response cache.
type CacheConfig struct {
	Driver     string `yaml:"driver" mapstructure:"driver"`
	RedisURL   string `yaml:"redis_url" mapstructure:"redis_url"`
	TTLSecs    int    `yaml:"ttl_secs" mapstructure:"ttl_secs"`
	MaxEntries int    `yaml:"max_entries" mapstructure:"max_entries"`
}

// RegionsConfig configures the regulation zone table. An empty path means
// the built-in table.
type RegionsConfig struct {
	CatalogPath string `yaml:"catalog_path" mapstructure:"catalog_path"`
}

// Cache driver names.
const (
	CacheOff    = "off"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("REALCARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8092)
	v.SetDefault("server.cors_origins", []string{
		"https://trendy.storydot.kr",
		"http://localhost:3000",
		"http://localhost:5173",
	})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("cache.driver", CacheMemory)
	v.SetDefault("cache.redis_url", "redis://localhost:6379/2")
	v.SetDefault("cache.ttl_secs", 300)
	v.SetDefault("cache.max_entries", 1024)
	v.SetDefault("regions.catalog_path", "")

	engine := reality.DefaultConfig()
	v.SetDefault("reality.ltv_weight", engine.LTVWeight)
	v.SetDefault("reality.dsr_weight", engine.DSRWeight)
	v.SetDefault("reality.cash_gap_weight", engine.CashGapWeight)
	v.SetDefault("reality.stability_weight", engine.StabilityWeight)
	v.SetDefault("reality.dsr_limit_pct", engine.DSRLimitPct)
	v.SetDefault("reality.dsr_warn_pct", engine.DSRWarnPct)
	v.SetDefault("reality.dsr_proxy_rate", engine.DSRProxyRate)
	v.SetDefault("reality.loan_rate_pct", engine.LoanRatePct)
	v.SetDefault("reality.loan_term_years", engine.LoanTermYears)
	v.SetDefault("reality.success_score", engine.SuccessScore)

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

// Validate checks the configuration for the given run mode. Mode "check"
// covers engine-only commands; mode "serve" additionally requires a usable
// server and cache setup.
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "check":
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be between 1 and 65535")
		}
		switch c.Cache.Driver {
		case CacheOff, CacheMemory, CacheRedis:
		default:
			errs = append(errs, fmt.Sprintf("cache.driver must be one of off, memory, redis; got %q", c.Cache.Driver))
		}
		if c.Cache.Driver == CacheRedis && c.Cache.RedisURL == "" {
			errs = append(errs, "cache.redis_url is required for the redis driver")
		}
		if c.Cache.TTLSecs < 0 {
			errs = append(errs, "cache.ttl_secs must be >= 0")
		}
		if c.Cache.Driver == CacheMemory && c.Cache.MaxEntries < 1 {
			errs = append(errs, "cache.max_entries must be >= 1 for the memory driver")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if err := reality.ValidateConfig(c.Reality); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return eris.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
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

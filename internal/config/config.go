package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/krobus00/refdata-service/internal/constant"
	"github.com/spf13/viper"
)

var (
	ServiceName    = ""
	ServiceVersion = ""
)

var (
	Env *EnvConfig
)

type EnvConfig struct {
	Env      string          `mapstructure:"env"`
	Log      LogConfig       `mapstructure:"log"`
	HTTP     HTTPConfig      `mapstructure:"http"`
	DataDir  string          `mapstructure:"data_dir"`
	Output   OutputConfig    `mapstructure:"output"`
	Segments []SegmentConfig `mapstructure:"segments"`
}

type LogConfig struct {
	ShowCaller bool   `mapstructure:"show_caller"`
	LogLevel   string `mapstructure:"log_level"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type OutputConfig struct {
	File      string `mapstructure:"file"`
	Delimiter string `mapstructure:"delimiter"`
	KeyField  string `mapstructure:"key_field"`
}

// SegmentConfig describes one venue segment: where its raw exchange-info
// document lives on the wire and on disk, and how its symbols are
// normalized (spot vs derivative rules).
type SegmentConfig struct {
	Name    string `mapstructure:"name"`
	Venue   string `mapstructure:"venue"`
	Kind    string `mapstructure:"kind"`
	BaseURL string `mapstructure:"base_url"`
	Path    string `mapstructure:"path"`
	File    string `mapstructure:"file"`
}

func LoadConfig(configPath string) error {
	viper.Reset()

	configPath = strings.TrimSpace(configPath)
	if configPath == "" {
		viper.SetConfigName("config")
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
	} else {
		ext := strings.ToLower(filepath.Ext(configPath))
		if ext == ".yml" || ext == ".yaml" {
			viper.SetConfigFile(configPath)
		} else {
			viper.SetConfigName(filepath.Base(configPath))
			viper.SetConfigType("yml")
			configDir := filepath.Dir(configPath)
			if configDir == "." || configDir == "" {
				viper.AddConfigPath(".")
			} else {
				viper.AddConfigPath(configDir)
			}
		}
	}

	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	err = viper.Unmarshal(&Env)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	if Env == nil {
		Env = &EnvConfig{}
	}

	applyDefaults(Env)

	return validate(Env)
}

func applyDefaults(cfg *EnvConfig) {
	if cfg.Log.LogLevel == "" {
		cfg.Log.LogLevel = "info"
	}
	if cfg.HTTP.Timeout <= 0 {
		cfg.HTTP.Timeout = 15 * time.Second
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "tmp"
	}
	if cfg.Output.File == "" {
		cfg.Output.File = filepath.Join(cfg.DataDir, "binance_assets.csv")
	}
	if cfg.Output.Delimiter == "" {
		cfg.Output.Delimiter = ","
	}
	if cfg.Output.KeyField == "" {
		cfg.Output.KeyField = "instId"
	}
	if len(cfg.Segments) == 0 {
		cfg.Segments = DefaultSegments()
	}
}

func validate(cfg *EnvConfig) error {
	for _, segment := range cfg.Segments {
		switch segment.Kind {
		case constant.SegmentKindSpot, constant.SegmentKindDerivative:
		default:
			return fmt.Errorf("segment '%s' has unknown kind '%s'", segment.Name, segment.Kind)
		}
	}

	return nil
}

// DefaultSegments returns the three modeled venue segments, merged in
// this order at parse time.
func DefaultSegments() []SegmentConfig {
	return []SegmentConfig{
		{
			Name:    "spot",
			Venue:   constant.VenueBinanceSpot,
			Kind:    constant.SegmentKindSpot,
			BaseURL: "https://api.binance.com",
			Path:    "/api/v3/exchangeInfo",
			File:    "binance_exchange-info.json",
		},
		{
			Name:    "usdfut",
			Venue:   constant.VenueBinanceUSDFut,
			Kind:    constant.SegmentKindDerivative,
			BaseURL: "https://fapi.binance.com",
			Path:    "/fapi/v1/exchangeInfo",
			File:    "binance_usdfut_exchange-info.json",
		},
		{
			Name:    "coinfut",
			Venue:   constant.VenueBinanceCoinFut,
			Kind:    constant.SegmentKindDerivative,
			BaseURL: "https://dapi.binance.com",
			Path:    "/dapi/v1/exchangeInfo",
			File:    "binance_coinfut_exchange-info.json",
		},
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	GDAL     GDALConfig     `mapstructure:"gdal"`
	Scale    ScaleConfig    `mapstructure:"scale"`
	Compress CompressConfig `mapstructure:"compress"`
	Show     ShowConfig     `mapstructure:"show"`
	Log      LogConfig      `mapstructure:"log"`
}

type GDALConfig struct {
	Mode        string `mapstructure:"mode"`
	DockerImage string `mapstructure:"docker_image"`
	WorkDir     string `mapstructure:"workdir"`
}

type ScaleConfig struct {
	Lower float64 `mapstructure:"lower"`
	Upper float64 `mapstructure:"upper"`
}

type CompressConfig struct {
	Method string `mapstructure:"method"`
}

type ShowConfig struct {
	Width     int `mapstructure:"width"`
	Threshold int `mapstructure:"threshold"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional file and environment
// variables. An explicit path must exist; otherwise satkit.yaml is looked
// up in the current directory and ~/.config/satkit.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("gdal.mode", "auto")
	v.SetDefault("gdal.docker_image", "ghcr.io/osgeo/gdal:latest")
	v.SetDefault("gdal.workdir", "")
	v.SetDefault("scale.lower", 0.0)
	v.SetDefault("scale.upper", 10000.0)
	v.SetDefault("compress.method", "JPEG")
	v.SetDefault("show.width", 64)
	v.SetDefault("show.threshold", -1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("satkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "satkit"))
		}
		_ = v.ReadInConfig() // OK if missing
	}

	// Environment variables: SATKIT_GDAL_MODE → gdal.mode
	v.SetEnvPrefix("SATKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	switch c.GDAL.Mode {
	case "auto", "local", "docker":
	default:
		errs = append(errs, fmt.Sprintf("gdal.mode must be auto, local or docker, got %q", c.GDAL.Mode))
	}
	if c.GDAL.Mode == "docker" && c.GDAL.DockerImage == "" {
		errs = append(errs, "gdal.docker_image is required in docker mode")
	}
	if c.Scale.Upper == 0 {
		errs = append(errs, "scale.upper must be non-zero")
	}
	if c.Show.Width <= 0 {
		errs = append(errs, "show.width must be positive")
	}
	if c.Show.Threshold < -1 || c.Show.Threshold > 255 {
		errs = append(errs, fmt.Sprintf("show.threshold must be -1 (auto) or 0-255, got %d", c.Show.Threshold))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

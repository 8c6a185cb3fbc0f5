package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const dirName = ".salesreport"

// Global configuration structure.
type Global struct {
	// Object store coordinates of the sales CSV.
	Bucket string `mapstructure:"bucket" yaml:"bucket"`
	Key    string `mapstructure:"key" yaml:"key"`
	Region string `mapstructure:"region" yaml:"region"`
	// Endpoint overrides the S3 endpoint (MinIO, LocalStack). Empty uses AWS.
	Endpoint     string `mapstructure:"endpoint" yaml:"endpoint"`
	UsePathStyle bool   `mapstructure:"use_path_style" yaml:"use_path_style"`
	// File reads the CSV from local disk instead of the bucket when set.
	File string `mapstructure:"file" yaml:"file"`
	// FetchTimeoutSec bounds the object download; 0 means no timeout.
	FetchTimeoutSec int `mapstructure:"fetch_timeout_sec" yaml:"fetch_timeout_sec"`

	// Report outputs
	PivotFile   string `mapstructure:"pivot_file" yaml:"pivot_file"`
	ChartFile   string `mapstructure:"chart_file" yaml:"chart_file"`
	HeatmapFile string `mapstructure:"heatmap_file" yaml:"heatmap_file"`
	OpenCharts  bool   `mapstructure:"open_charts" yaml:"open_charts"`
	SampleRows  int    `mapstructure:"sample_rows" yaml:"sample_rows"`

	// Logging
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Validate reports configuration that cannot produce a run.
func (c *Global) Validate() error {
	if c.File == "" {
		if strings.TrimSpace(c.Bucket) == "" {
			return errors.New("bucket is required when no local file is set")
		}
		if strings.TrimSpace(c.Key) == "" {
			return errors.New("key is required when no local file is set")
		}
		if strings.TrimSpace(c.Region) == "" {
			return errors.New("region is required when no local file is set")
		}
	}
	if c.SampleRows < 0 {
		return fmt.Errorf("sample_rows must be >= 0, got %d", c.SampleRows)
	}
	if c.FetchTimeoutSec < 0 {
		return fmt.Errorf("fetch_timeout_sec must be >= 0, got %d", c.FetchTimeoutSec)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log_format: %s (use text or json)", c.LogFormat)
	}
	return nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.salesreport/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, dirName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, .env and defaults.
// Precedence: env (including .env) > config file > defaults. Flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	// .env in the working directory is optional; real env vars win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SALESREPORT")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("bucket", "gatono-sales")
	v.SetDefault("key", "sales_records.csv")
	v.SetDefault("region", "us-east-1")
	v.SetDefault("endpoint", "")
	v.SetDefault("use_path_style", false)
	v.SetDefault("file", "")
	v.SetDefault("fetch_timeout_sec", 0)
	v.SetDefault("pivot_file", "sales_pivot.xlsx")
	v.SetDefault("chart_file", "sales_by_product.html")
	v.SetDefault("heatmap_file", "sales_heatmap.html")
	v.SetDefault("open_charts", true)
	v.SetDefault("sample_rows", 5)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, dirName))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit --config path must exist; the default location is optional
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

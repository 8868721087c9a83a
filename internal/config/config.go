package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Reference sources.
const (
	SourceFiles    = "files"
	SourcePostgres = "postgres"
	SourceS3       = "s3"
)

type Config struct {
	Env        string `yaml:"env"`
	ListenAddr string `yaml:"listen_addr"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`

	// ReferenceSource selects where the datasets are read from.
	ReferenceSource string `yaml:"reference_source"`
	DataDir         string `yaml:"data_dir"`
	ModelDir        string `yaml:"model_dir"`
	SEBIDataFile    string `yaml:"sebi_data_file"`
	DatabaseURL     string `yaml:"database_url"`
	DBMaxConns      int    `yaml:"db_max_conns"`
	S3              S3     `yaml:"s3"`

	// PreloadInterval is the retry period of the startup preload; zero disables it.
	PreloadInterval time.Duration `yaml:"preload_interval"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type S3 struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	UseSSL    bool   `yaml:"use_ssl"`
	CacheDir  string `yaml:"cache_dir"`
}

func defaults() Config {
	return Config{
		Env:             "development",
		ListenAddr:      ":5000",
		LogLevel:        "info",
		LogFormat:       "text",
		ReferenceSource: SourceFiles,
		DataDir:         "data",
		ModelDir:        "models",
		DBMaxConns:      4,
		PreloadInterval: 30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// CONFIG_FILE, then the environment. The returned error is soft: cfg is
// always usable for local runs and callers decide whether to stop.
func Load() (Config, error) {
	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			applyEnv(&cfg)
			return cfg, err
		}
	}
	applyEnv(&cfg)
	return cfg, cfg.validate()
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Env = getenv("APP_ENV", cfg.Env)
	cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenv("LOG_FORMAT", cfg.LogFormat)
	cfg.ReferenceSource = getenv("REFERENCE_SOURCE", cfg.ReferenceSource)
	cfg.DataDir = getenv("DATA_DIR", cfg.DataDir)
	cfg.ModelDir = getenv("MODEL_DIR", cfg.ModelDir)
	cfg.SEBIDataFile = getenv("SEBI_DATA_FILE", cfg.SEBIDataFile)
	cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
	cfg.DBMaxConns = getenvInt("DB_MAX_CONNS", cfg.DBMaxConns)
	cfg.S3.Endpoint = getenv("S3_ENDPOINT", cfg.S3.Endpoint)
	cfg.S3.AccessKey = getenv("S3_ACCESS_KEY", cfg.S3.AccessKey)
	cfg.S3.SecretKey = getenv("S3_SECRET_KEY", cfg.S3.SecretKey)
	cfg.S3.Bucket = getenv("S3_BUCKET", cfg.S3.Bucket)
	cfg.S3.Prefix = getenv("S3_PREFIX", cfg.S3.Prefix)
	cfg.S3.UseSSL = getenvBool("S3_USE_SSL", cfg.S3.UseSSL)
	cfg.S3.CacheDir = getenv("S3_CACHE_DIR", cfg.S3.CacheDir)
	cfg.PreloadInterval = getenvDuration("PRELOAD_INTERVAL", cfg.PreloadInterval)
	cfg.ShutdownTimeout = getenvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
}

func (c Config) validate() error {
	switch c.ReferenceSource {
	case SourceFiles:
		return nil
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL not set for reference source %q", c.ReferenceSource)
		}
		return nil
	case SourceS3:
		if c.S3.Endpoint == "" || c.S3.Bucket == "" {
			return fmt.Errorf("S3_ENDPOINT and S3_BUCKET are required for reference source %q", c.ReferenceSource)
		}
		return nil
	default:
		return fmt.Errorf("unknown REFERENCE_SOURCE %q", c.ReferenceSource)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// getenvDuration accepts Go durations ("45s") or a bare number of seconds.
func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/nextbus/pkg/nextrip"
	"github.com/travigo/nextbus/pkg/util"
	"gopkg.in/yaml.v3"
)

const EnvironmentPrefix = "NEXTBUS_"

// DotEnvFile is read from the working directory before the environment.
const DotEnvFile = ".env"

const defaultCacheBackend = "memory"
const defaultCacheDirectory = "data"
const defaultCacheDatabase = "data/nextbus.db"
const defaultCacheSize = 1024
const defaultLogFile = "nextbus.log"
const defaultRedisAddress = "localhost:6379"

type Config struct {
	BaseURL     string   `yaml:"base_url" validate:"required,url"`
	HTTPTimeout Duration `yaml:"http_timeout"`

	Cache CacheConfig `yaml:"cache"`
	Redis RedisConfig `yaml:"redis"`
	Log   LogConfig   `yaml:"log"`
}

type CacheConfig struct {
	Backend    string   `yaml:"backend" validate:"oneof=memory file sqlite redis"`
	Directory  string   `yaml:"directory" validate:"required_if=Backend file"`
	Database   string   `yaml:"database" validate:"required_if=Backend sqlite"`
	Size       int      `yaml:"size" validate:"gt=0"`
	Expiration Duration `yaml:"expiration"`
}

type RedisConfig struct {
	Address  string `yaml:"address" validate:"required"`
	Password string `yaml:"password"`
	Database int    `yaml:"database" validate:"gte=0"`
}

type LogConfig struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"`
	Debug  bool   `yaml:"debug"`
}

func Default() *Config {
	return &Config{
		BaseURL: nextrip.DefaultBaseURL,
		Cache: CacheConfig{
			Backend:   defaultCacheBackend,
			Directory: defaultCacheDirectory,
			Database:  defaultCacheDatabase,
			Size:      defaultCacheSize,
		},
		Redis: RedisConfig{
			Address: defaultRedisAddress,
		},
		Log: LogConfig{
			File: defaultLogFile,
		},
	}
}

// Load reads the optional YAML file named by NEXTBUS_CONFIG_FILE, applies the
// NEXTBUS_* environment (including any .env file) on top and validates the result.
func Load() (*Config, error) {
	if err := LoadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	return LoadFromEnvironment(util.GetEnvironmentVariables(EnvironmentPrefix))
}

// LoadDotEnv copies path into the process environment. Variables that are
// already set win, and a missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

func LoadFromEnvironment(env map[string]string) (*Config, error) {
	cfg := Default()

	if path := env["NEXTBUS_CONFIG_FILE"]; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvironment(env); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnvironment(env map[string]string) error {
	if env["NEXTBUS_BASE_URL"] != "" {
		c.BaseURL = env["NEXTBUS_BASE_URL"]
	}

	if env["NEXTBUS_HTTP_TIMEOUT"] != "" {
		timeout, err := ParseDuration(env["NEXTBUS_HTTP_TIMEOUT"])
		if err != nil {
			return fmt.Errorf("NEXTBUS_HTTP_TIMEOUT: %w", err)
		}
		c.HTTPTimeout = timeout
	}

	if env["NEXTBUS_CACHE_BACKEND"] != "" {
		c.Cache.Backend = strings.ToLower(env["NEXTBUS_CACHE_BACKEND"])
	}

	if env["NEXTBUS_CACHE_DIR"] != "" {
		c.Cache.Directory = env["NEXTBUS_CACHE_DIR"]
	}

	if env["NEXTBUS_CACHE_DATABASE"] != "" {
		c.Cache.Database = env["NEXTBUS_CACHE_DATABASE"]
	}

	if env["NEXTBUS_CACHE_SIZE"] != "" {
		n, err := strconv.Atoi(env["NEXTBUS_CACHE_SIZE"])
		if err != nil {
			return fmt.Errorf("NEXTBUS_CACHE_SIZE: %w", err)
		}
		c.Cache.Size = n
	}

	if env["NEXTBUS_CACHE_EXPIRATION"] != "" {
		expiration, err := ParseDuration(env["NEXTBUS_CACHE_EXPIRATION"])
		if err != nil {
			return fmt.Errorf("NEXTBUS_CACHE_EXPIRATION: %w", err)
		}
		c.Cache.Expiration = expiration
	}

	if env["NEXTBUS_REDIS_ADDRESS"] != "" {
		c.Redis.Address = env["NEXTBUS_REDIS_ADDRESS"]
	}

	if env["NEXTBUS_REDIS_PASSWORD"] != "" {
		c.Redis.Password = env["NEXTBUS_REDIS_PASSWORD"]
	}

	if env["NEXTBUS_REDIS_DATABASE"] != "" {
		n, err := strconv.Atoi(env["NEXTBUS_REDIS_DATABASE"])
		if err != nil {
			return fmt.Errorf("NEXTBUS_REDIS_DATABASE: %w", err)
		}
		c.Redis.Database = n
	}

	// An explicitly empty NEXTBUS_LOG_FILE disables the file sink.
	if file, ok := env["NEXTBUS_LOG_FILE"]; ok {
		c.Log.File = file
	}

	if env["NEXTBUS_LOG_FORMAT"] != "" {
		c.Log.Format = strings.ToUpper(env["NEXTBUS_LOG_FORMAT"])
	}

	if env["NEXTBUS_DEBUG"] == "YES" {
		c.Log.Debug = true
	}

	return nil
}

// Duration is a time.Duration written as an ISO-8601 duration such as "PT90M".
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

func ParseDuration(value string) (Duration, error) {
	parsed, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q: %w", value, err)
	}

	reference := time.Unix(0, 0).UTC()
	return Duration(parsed.Shift(reference).Sub(reference)), nil
}

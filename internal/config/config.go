package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gostonefire/coursecatalog/internal/conf"
	"github.com/gostonefire/coursecatalog/internal/logger"
	"gopkg.in/yaml.v3"
)

// Config - Represents the application configuration
type Config struct {
	Catalog struct {
		TableSize int64  `yaml:"table_size"`
		DataFile  string `yaml:"data_file"`
	} `yaml:"catalog"`

	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
}

// Environment variables overriding values from the config file
const (
	EnvTableSize = "CATALOG_TABLE_SIZE"
	EnvDataFile  = "CATALOG_DATA_FILE"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogPretty = "LOG_PRETTY"
)

// LoadConfig - Loads configuration from defaults, an optional YAML file and environment variables, in that order.
// A missing file is not an error, an empty configPath skips the file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}

			if err = yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate - Checks that the configuration can be used
func (c *Config) Validate() error {
	if c.Catalog.TableSize <= 0 {
		return fmt.Errorf("catalog.table_size must be higher than 0 (zero), got %d", c.Catalog.TableSize)
	}
	if c.Catalog.DataFile == "" {
		return fmt.Errorf("catalog.data_file can not be empty")
	}

	return nil
}

// LoggerConfig - Returns the logger configuration part
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:  logger.LogLevel(c.Logging.Level),
		Pretty: c.Logging.Pretty,
	}
}

func setDefaults(config *Config) {
	config.Catalog.TableSize = conf.DefaultTableSize
	config.Catalog.DataFile = "data.csv"
	config.Logging.Level = string(logger.InfoLevel)
	config.Logging.Pretty = false
}

func loadFromEnv(config *Config) error {
	if v, ok := os.LookupEnv(EnvTableSize); ok {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTableSize, err)
		}
		config.Catalog.TableSize = size
	}
	if v, ok := os.LookupEnv(EnvDataFile); ok {
		config.Catalog.DataFile = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		config.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogPretty); ok {
		pretty, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvLogPretty, err)
		}
		config.Logging.Pretty = pretty
	}

	return nil
}

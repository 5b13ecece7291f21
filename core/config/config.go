package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"feed-importer/core/database"
	"feed-importer/core/logger"
	"feed-importer/core/mapping"
	"feed-importer/core/server"
	"feed-importer/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the application configuration, one section per component.
type Config struct {
	// Server configures the preview HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage configures the bucket holding import jobs.
	Storage storage.Config `mapstructure:"storage"`
	// Log configures the logger.
	Log logger.Config `mapstructure:"log"`
	// Database configures the content database connection.
	Database database.Config `mapstructure:"database"`
	// Import holds the field value resolution settings.
	Import mapping.Config `mapstructure:"import"`
}

// LoadConfig reads the configuration from the environment, after loading the
// .env file found in dir if there is one. Values from the .env file override
// the process environment.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env file is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")

	// import.data_delimiter <- IMPORT_DATA_DELIMITER
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the importer cannot run with.
func (c *Config) Validate() error {
	if err := c.Import.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Storage.Bucket == "" {
		return fmt.Errorf("invalid configuration: storage.bucket is empty")
	}
	return nil
}

// registerDefaults walks the struct type and registers every mapstructure
// key with its `default` tag. Keys without a default are registered empty so
// AutomaticEnv can still bind them.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}

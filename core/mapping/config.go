package mapping

import "fmt"

// Config holds the import settings the resolver depends on.
type Config struct {
	// DataDelimiter splits one feed text value into several values.
	DataDelimiter string `mapstructure:"data_delimiter" default:"|"`
	// SetEmptyValues allows empty feed values to overwrite existing data.
	SetEmptyValues bool `mapstructure:"set_empty_values" default:"false"`
}

// Validate fails when the configuration cannot drive a Resolver.
func (c Config) Validate() error {
	if c.DataDelimiter == "" {
		return fmt.Errorf("import.data_delimiter: %w", ErrNoDelimiter)
	}
	return nil
}

// RecordSettings returns the feed-wide record settings.
func (c Config) RecordSettings() RecordSettings {
	return RecordSettings{SetEmptyValues: c.SetEmptyValues}
}

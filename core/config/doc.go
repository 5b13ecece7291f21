// Package config loads the importer configuration with Viper.
//
// Every section is a struct whose fields carry `mapstructure` keys and
// `default` tags; the keys map to environment variables by upper-casing and
// replacing dots with underscores (import.data_delimiter is
// IMPORT_DATA_DELIMITER). A .env file in the given directory is loaded first.
//
// Sections: server, storage, log, database, import.
//
//	cfg, err := config.LoadConfig(".")
//	resolver, err := mapping.NewResolver(cfg.Import.DataDelimiter)
package config

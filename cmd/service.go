package cmd

import (
	"fmt"

	"feed-importer/core/compare"
	"feed-importer/core/config"
	"feed-importer/core/mapping"
	"feed-importer/core/records"
	"feed-importer/core/storage"
	"feed-importer/core/template"
	"feed-importer/feature/preview"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newPreviewService wires the resolver, differ and optional record store.
// db and client may be nil.
func newPreviewService(cfg *config.Config, logg *zap.Logger, db *gorm.DB, client storage.Client) (*preview.Service, error) {
	resolver, err := mapping.NewResolver(cfg.Import.DataDelimiter, mapping.WithRenderer(template.NewObjectRenderer()))
	if err != nil {
		return nil, fmt.Errorf("failed to create resolver: %w", err)
	}

	var snapshots preview.SnapshotLoader
	if db != nil {
		snapshots = records.NewStore(db)
	}

	return preview.NewService(
		resolver,
		compare.NewDiffer(logg),
		snapshots,
		client,
		cfg.Storage.Bucket,
		cfg.Import.RecordSettings(),
		logg,
	), nil
}

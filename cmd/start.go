package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"feed-importer/core/config"
	"feed-importer/core/database"
	"feed-importer/core/loader"
	"feed-importer/core/logger"
	"feed-importer/core/records"
	"feed-importer/core/storage"
	"feed-importer/feature/preview"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the preview server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Without a database only jobs carrying an inline snapshot can be previewed.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else if err := records.NewStore(conn).CheckSchema(cmd.Context()); err != nil {
			logg.Warn("Content schema check failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to content database", zap.String("database", cfg.Database.Name))
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		if ok, err := client.BucketExists(cmd.Context(), cfg.Storage.Bucket); err != nil || !ok {
			logg.Warn("Import bucket is not reachable, object previews will fail",
				zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		}

		svc, err := newPreviewService(cfg, logg, db, client)
		if err != nil {
			logg.Fatal("Failed to create preview service", zap.Error(err))
		}

		mgr := loader.NewManager()
		mgr.Register(preview.NewFeature(svc))

		app, err := newApp(cfg, logg, mgr)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("addr", cfg.Server.Addr()),
				zap.Strings("features", mgr.Enabled()),
			)
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"feed-importer/core/config"
	"feed-importer/core/database"
	"feed-importer/core/job"
	"feed-importer/core/logger"
	"feed-importer/core/records"
	"feed-importer/core/storage"
	"feed-importer/feature/preview"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	diffJobPath      string
	diffObjectName   string
	diffPrefix       string
	diffWorkers      int
	diffElementID    int64
	diffFailOnChange bool
)

// errChangesFound is returned by diff --fail-on-change when the job would
// update the element.
var errChangesFound = errors.New("changes found")

// diffCmd previews one import job.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Resolve an import job and show which fields would change",
	Long: `Resolves every field binding of an import job against its feed record and
compares the result with the existing element.

The job is read from a local file (--job) or from the import bucket (--object).
The element is taken from the job's inline snapshot, or loaded from the
content database when the job names an element id. --prefix previews every
job document under a bucket prefix.

Examples:
  diff --job jobs/chair.yaml
  diff --object jobs/chair.json --element 42
  diff --prefix jobs/2026-10/ --workers 8
  diff --job jobs/chair.yaml --fail-on-change`,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffJobPath, "job", "", "Path to a YAML or JSON job document")
	diffCmd.Flags().StringVar(&diffObjectName, "object", "", "Name of a job document in the import bucket")
	diffCmd.Flags().StringVar(&diffPrefix, "prefix", "", "Preview every job document under this bucket prefix")
	diffCmd.Flags().IntVar(&diffWorkers, "workers", preview.DefaultBatchWorkers, "Concurrent previews for --prefix")
	diffCmd.Flags().Int64Var(&diffElementID, "element", 0, "Compare against this element id instead of the job's")
	diffCmd.Flags().BoolVar(&diffFailOnChange, "fail-on-change", false, "Exit with an error when any field would change")
	diffCmd.MarkFlagsMutuallyExclusive("job", "object", "prefix")
	diffCmd.MarkFlagsOneRequired("job", "object", "prefix")
	diffCmd.MarkFlagsMutuallyExclusive("prefix", "element")

	RootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if diffPrefix != "" {
		return runBatchDiff(ctx, cfg, l)
	}

	var client storage.Client
	var j *job.Job
	if diffObjectName != "" {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		j, err = job.LoadObject(ctx, client, cfg.Storage.Bucket, diffObjectName)
	} else {
		j, err = job.Load(diffJobPath)
	}
	if err != nil {
		return err
	}

	if diffElementID != 0 {
		j.ElementID = diffElementID
		j.Existing = nil
	}

	var db *gorm.DB
	if j.Existing == nil && j.ElementID != 0 {
		db, err = database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := records.NewStore(db).CheckSchema(ctx); err != nil {
			return err
		}
		l = l.With(zap.Int64("element_id", j.ElementID))
	}

	svc, err := newPreviewService(cfg, l, db, client)
	if err != nil {
		return err
	}

	result, err := svc.Preview(ctx, j)
	if err != nil {
		return fmt.Errorf("failed to preview job: %w", err)
	}

	printDiffReport(l, result)
	if err := writeJSON(result); err != nil {
		return err
	}

	if diffFailOnChange && len(result.Changes) > 0 {
		return errChangesFound
	}
	return nil
}

// runBatchDiff previews every job under --prefix. The database is optional:
// jobs naming an element fail individually when it is unavailable.
func runBatchDiff(ctx context.Context, cfg *config.Config, l *zap.Logger) error {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		l.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	svc, err := newPreviewService(cfg, l, db, client)
	if err != nil {
		return err
	}

	report, err := svc.PreviewPrefix(ctx, diffPrefix, diffWorkers)
	if err != nil {
		return fmt.Errorf("failed to preview jobs: %w", err)
	}

	l.Info("Batch diff report",
		zap.String("prefix", report.Prefix),
		zap.Int("total", report.Summary.Total),
		zap.Int("unchanged", report.Summary.Unchanged),
		zap.Int("changed", report.Summary.Changed),
		zap.Int("new", report.Summary.New),
		zap.Int("failed", report.Summary.Failed),
	)
	if err := writeJSON(report); err != nil {
		return err
	}

	if diffFailOnChange && report.Summary.Changed+report.Summary.New > 0 {
		return errChangesFound
	}
	return nil
}

func writeJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}

// printDiffReport logs a summary of the preview.
func printDiffReport(l *zap.Logger, result *preview.Result) {
	changed := result.Changes.Keys()
	sort.Strings(changed)

	l.Info("Diff report",
		zap.Int("fields", len(result.Content)),
		zap.Int("changed", len(changed)),
		zap.Bool("unchanged", result.Unchanged),
	)
	for _, key := range changed {
		l.Info("Changed field", zap.String("key", key))
	}
}

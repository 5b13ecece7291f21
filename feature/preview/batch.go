package preview

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"feed-importer/core/job"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchWorkers bounds concurrent previews when no limit is given.
const DefaultBatchWorkers = 4

// BatchItem is the outcome of previewing one job document.
type BatchItem struct {
	Name      string   `json:"name"`
	ElementID int64    `json:"element_id,omitempty"`
	Changed   []string `json:"changed,omitempty"`
	Unchanged bool     `json:"unchanged"`
	New       bool     `json:"new"`
	Error     string   `json:"error,omitempty"`
}

// BatchSummary counts batch items per outcome.
type BatchSummary struct {
	Total     int `json:"total"`
	Unchanged int `json:"unchanged"`
	Changed   int `json:"changed"`
	New       int `json:"new"`
	Failed    int `json:"failed"`
}

// BatchReport is the result of previewing every job under a prefix.
// Items are sorted by name.
type BatchReport struct {
	Prefix  string       `json:"prefix"`
	Items   []BatchItem  `json:"items"`
	Summary BatchSummary `json:"summary"`
}

// PreviewPrefix previews every job document stored under prefix. A failing
// job is reported on its item and does not stop the batch.
func (s *Service) PreviewPrefix(ctx context.Context, prefix string, workers int) (*BatchReport, error) {
	if s.client == nil {
		return nil, fmt.Errorf("batch preview of %s requested but no storage client is configured", prefix)
	}
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}

	names, err := s.listJobs(ctx, prefix)
	if err != nil {
		return nil, err
	}

	items := make([]BatchItem, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range names {
		g.Go(func() error {
			items[i] = s.previewItem(gctx, name)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &BatchReport{Prefix: prefix, Items: items}
	report.Summary = summarize(items)

	s.logger.Info("Batch preview computed",
		zap.String("prefix", prefix),
		zap.Int("total", report.Summary.Total),
		zap.Int("changed", report.Summary.Changed),
		zap.Int("new", report.Summary.New),
		zap.Int("failed", report.Summary.Failed),
	)
	return report, nil
}

func (s *Service) previewItem(ctx context.Context, name string) BatchItem {
	item := BatchItem{Name: name}

	result, err := s.PreviewObject(ctx, name)
	if err != nil {
		s.logger.Warn("Job preview failed", zap.String("object", name), zap.Error(err))
		item.Error = err.Error()
		return item
	}

	item.ElementID = result.ElementID
	item.Unchanged = result.Unchanged
	item.New = result.New
	item.Changed = result.Changes.Keys()
	sort.Strings(item.Changed)
	return item
}

// listJobs returns the job document names under prefix, skipping objects
// that are not YAML or JSON.
func (s *Service) listJobs(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list jobs under %s: %w", prefix, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		if _, err := job.FormatFromName(obj.Key); err != nil {
			continue
		}
		names = append(names, obj.Key)
	}
	sort.Strings(names)
	return names, nil
}

func summarize(items []BatchItem) BatchSummary {
	summary := BatchSummary{Total: len(items)}
	for _, item := range items {
		switch {
		case item.Error != "":
			summary.Failed++
		case item.Unchanged:
			summary.Unchanged++
		case item.New:
			summary.New++
		default:
			summary.Changed++
		}
	}
	return summary
}

package preview

import (
	"context"
	"fmt"

	"feed-importer/core/compare"
	"feed-importer/core/job"
	"feed-importer/core/mapping"
	"feed-importer/core/storage"

	"go.uber.org/zap"
)

// SnapshotLoader loads the existing element a job is compared against.
type SnapshotLoader interface {
	Load(ctx context.Context, elementID int64) (*compare.MapSnapshot, error)
}

// Result is the outcome of previewing one job.
type Result struct {
	ElementID int64                  `json:"element_id,omitempty"`
	Content   compare.ContentMapping `json:"content"`
	Changes   compare.ChangeSet      `json:"changes"`
	Unchanged bool                   `json:"unchanged"`
	// New is set when there was no existing element to compare against.
	New bool `json:"new"`
}

// Service resolves import jobs and diffs them against existing elements
// without writing anything.
type Service struct {
	resolver  *mapping.Resolver
	differ    *compare.Differ
	snapshots SnapshotLoader
	client    storage.Client
	bucket    string
	settings  mapping.RecordSettings
	logger    *zap.Logger
}

// NewService creates a new preview service. snapshots and client may be nil
// when jobs always carry an inline snapshot.
func NewService(resolver *mapping.Resolver, differ *compare.Differ, snapshots SnapshotLoader, client storage.Client, bucket string, settings mapping.RecordSettings, logger *zap.Logger) *Service {
	return &Service{
		resolver:  resolver,
		differ:    differ,
		snapshots: snapshots,
		client:    client,
		bucket:    bucket,
		settings:  settings,
		logger:    logger,
	}
}

// Snapshot returns the element a job is compared against: the inline
// snapshot if present, else the stored element. A job without either
// describes a new element and yields nil.
func (s *Service) Snapshot(ctx context.Context, j *job.Job) (compare.RecordSnapshot, error) {
	if j.Existing != nil {
		return j.Existing, nil
	}
	if j.ElementID == 0 {
		return nil, nil
	}
	if s.snapshots == nil {
		return nil, fmt.Errorf("element %d requested but no record store is configured", j.ElementID)
	}
	snap, err := s.snapshots.Load(ctx, j.ElementID)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Assemble resolves every binding of the job into the content mapping.
// String values are rendered against the existing element.
func (s *Service) Assemble(j *job.Job, snapshot compare.RecordSnapshot) compare.ContentMapping {
	settings := j.RecordSettings(s.settings)
	element := compare.Context(snapshot)

	content := make(compare.ContentMapping, len(j.Fields))
	for _, b := range j.Fields {
		value := s.resolver.ResolveForWrite(j.Record, b.Mapping(), settings)
		content[b.Handle] = s.resolver.ParseFieldDataForElement(value, element)
	}
	return content
}

// Preview assembles the job content and computes its change set.
func (s *Service) Preview(ctx context.Context, j *job.Job) (*Result, error) {
	snapshot, err := s.Snapshot(ctx, j)
	if err != nil {
		return nil, err
	}

	content := s.Assemble(j, snapshot)
	changes := s.differ.ComputeChangeSet(content, snapshot)

	s.logger.Info("Preview computed",
		zap.Int64("element_id", j.ElementID),
		zap.Int("fields", len(content)),
		zap.Strings("changed", changes.Keys()),
	)

	return &Result{
		ElementID: j.ElementID,
		Content:   content,
		Changes:   changes,
		Unchanged: snapshot != nil && len(changes) == 0,
		New:       snapshot == nil,
	}, nil
}

// PreviewObject loads a job document from the import bucket and previews it.
func (s *Service) PreviewObject(ctx context.Context, name string) (*Result, error) {
	if s.client == nil {
		return nil, fmt.Errorf("job object %s requested but no storage client is configured", name)
	}
	j, err := job.LoadObject(ctx, s.client, s.bucket, name)
	if err != nil {
		return nil, err
	}
	return s.Preview(ctx, j)
}

package records

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"feed-importer/core/compare"
	"feed-importer/core/database"
	"feed-importer/core/utils"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the element does not exist.
	ErrNotFound = errors.New("element not found")
	// ErrSchema is returned when a content table lacks a column the store reads.
	ErrSchema = errors.New("content schema mismatch")
)

// Store loads record snapshots from the content database.
type Store struct {
	db    *gorm.DB
	group singleflight.Group
}

// NewStore creates a store on top of an open connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load returns the snapshot of an element. Concurrent loads of the same
// element share one query; the returned snapshot must not be modified.
//
// The shared query runs detached from the caller's cancellation, bounded by
// the connection's read timeout, so one caller giving up does not fail the
// others. A cancelled caller returns ctx.Err() without waiting.
func (s *Store) Load(ctx context.Context, elementID int64) (*compare.MapSnapshot, error) {
	ch := s.group.DoChan(strconv.FormatInt(elementID, 10), func() (any, error) {
		return s.load(context.WithoutCancel(ctx), elementID)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*compare.MapSnapshot), nil
	}
}

func (s *Store) load(ctx context.Context, elementID int64) (*compare.MapSnapshot, error) {
	var el Element
	err := s.db.WithContext(ctx).
		Select("id", "fields", "attributes").
		Where("id = ?", elementID).
		First(&el).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("element %d: %w", elementID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load element %d: %w", elementID, err)
	}

	fields, err := utils.DecodeObject([]byte(el.Fields))
	if err != nil {
		return nil, fmt.Errorf("element %d fields: %w", elementID, err)
	}
	attrs, err := utils.DecodeObject([]byte(el.Attributes))
	if err != nil {
		return nil, fmt.Errorf("element %d attributes: %w", elementID, err)
	}

	var groupIDs []int64
	err = s.db.WithContext(ctx).
		Model(&ElementGroup{}).
		Where("element_id = ?", elementID).
		Order("group_id").
		Pluck("group_id", &groupIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load groups of element %d: %w", elementID, err)
	}

	groups := make([]compare.Group, len(groupIDs))
	for i, id := range groupIDs {
		groups[i] = compare.Group{ID: id}
	}

	return &compare.MapSnapshot{
		Fields:      fields,
		Attrs:       attrs,
		GroupValues: groups,
	}, nil
}

// CheckSchema verifies that the content tables expose every column the
// store reads.
func (s *Store) CheckSchema(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	for _, t := range requiredColumns {
		missing, err := database.MissingColumns(db, t.table, t.columns)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("table %s is missing columns %s: %w", t.table, strings.Join(missing, ", "), ErrSchema)
		}
	}
	return nil
}

package preview

import (
	"context"
	"testing"

	"feed-importer/core/compare"
	"feed-importer/core/job"
	"feed-importer/core/mapping"
	"feed-importer/core/records"
	"feed-importer/core/template"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const chairJob = `{
  "record": {
    "Sku": "637",
    "Block/0/Images/0": "a.jpg",
    "Block/1/Images/0": "b.jpg",
    "Slug": "{slug}-v2"
  },
  "fields": [
    {"handle": "sku", "node": "Sku"},
    {"handle": "images", "node": "Block/Images"},
    {"handle": "slug", "node": "Slug"},
    {"handle": "relatedProducts", "node": "usedefault", "default": [3, 1]}
  ],
  "existing": {
    "fields": {"sku": "637", "images": ["a.jpg", "b.jpg"], "relatedProducts": [1, 3]},
    "attributes": {"slug": "chair"}
  }
}`

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func newTestService(t *testing.T, snapshots SnapshotLoader) *Service {
	resolver, err := mapping.NewResolver("|", mapping.WithRenderer(template.NewObjectRenderer()))
	require.NoError(t, err)
	return NewService(resolver, compare.NewDiffer(nil), snapshots, nil, "imports", mapping.RecordSettings{}, zap.NewNop())
}

func parseJob(t *testing.T, doc string) *job.Job {
	j, err := job.Parse([]byte(doc), job.FormatJSON)
	require.NoError(t, err)
	return j
}

func TestService_Assemble(t *testing.T) {
	svc := newTestService(t, nil)
	j := parseJob(t, chairJob)

	content := svc.Assemble(j, j.Existing)

	assert.Equal(t, "637", content["sku"])
	assert.Equal(t, []any{"a.jpg", "b.jpg"}, content["images"])
	assert.Equal(t, "chair-v2", content["slug"])
	assert.Equal(t, []any{int64(3), int64(1)}, content["relatedProducts"])
}

func TestService_Assemble_NoSnapshotKeepsTemplate(t *testing.T) {
	svc := newTestService(t, nil)
	j := parseJob(t, chairJob)

	content := svc.Assemble(j, nil)
	assert.Equal(t, "{slug}-v2", content["slug"])
}

func TestService_Preview_InlineSnapshot(t *testing.T) {
	svc := newTestService(t, nil)

	result, err := svc.Preview(context.Background(), parseJob(t, chairJob))
	require.NoError(t, err)

	assert.Equal(t, compare.ChangeSet{"slug": "chair-v2"}, result.Changes)
	assert.False(t, result.Unchanged)
	assert.Len(t, result.Content, 4)
}

func TestService_Preview_Unchanged(t *testing.T) {
	svc := newTestService(t, nil)
	j := parseJob(t, `{
	  "record": {"Price": "12.0", "Sku": "637"},
	  "fields": [{"handle": "price", "node": "Price"}, {"handle": "sku", "node": "Sku"}],
	  "existing": {"fields": {"price": 12}, "attributes": {"sku": "637"}}
	}`)

	result, err := svc.Preview(context.Background(), j)
	require.NoError(t, err)
	assert.Empty(t, result.Changes)
	assert.True(t, result.Unchanged)
}

func TestService_Preview_NewElement(t *testing.T) {
	svc := newTestService(t, nil)
	j := parseJob(t, `{"record": {"Sku": "637"}, "fields": [{"handle": "sku", "node": "Sku"}]}`)

	result, err := svc.Preview(context.Background(), j)
	require.NoError(t, err)
	assert.Equal(t, compare.ChangeSet{"sku": "637"}, result.Changes)
	assert.False(t, result.Unchanged)
}

func TestService_Preview_StoredElement(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("FROM `elements`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "fields", "attributes"}).
			AddRow(42, `{"sku":"0637"}`, `{"title":"Chair"}`))
	mock.ExpectQuery("FROM `element_groups`").
		WillReturnRows(sqlmock.NewRows([]string{"group_id"}).AddRow(5).AddRow(9))

	svc := newTestService(t, records.NewStore(db))
	j := parseJob(t, `{
	  "element_id": 42,
	  "record": {"Sku": "637", "Group/0": "9", "Group/1": "5"},
	  "fields": [{"handle": "sku", "node": "Sku"}, {"handle": "groups", "node": "Group"}]
	}`)

	result, err := svc.Preview(context.Background(), j)
	require.NoError(t, err)
	assert.Equal(t, compare.ChangeSet{"sku": "637"}, result.Changes)
	assert.Equal(t, int64(42), result.ElementID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Preview_StoredElementNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("FROM `elements`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "fields", "attributes"}))

	svc := newTestService(t, records.NewStore(db))
	j := parseJob(t, `{"element_id": 7, "record": {}, "fields": [{"handle": "sku", "node": "Sku"}]}`)

	_, err := svc.Preview(context.Background(), j)
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestService_Preview_NoStore(t *testing.T) {
	svc := newTestService(t, nil)
	j := parseJob(t, `{"element_id": 7, "record": {}, "fields": [{"handle": "sku", "node": "Sku"}]}`)

	_, err := svc.Preview(context.Background(), j)
	assert.Error(t, err)
}

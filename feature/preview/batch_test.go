package preview

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"feed-importer/core/compare"
	"feed-importer/core/mapping"
	"feed-importer/core/storage/mocks"
	"feed-importer/core/template"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const unchangedJob = `
record:
  Sku: "637"
fields:
  - handle: sku
    node: Sku
existing:
  fields:
    sku: "637"
`

const newJob = `{"record": {"Sku": "1"}, "fields": [{"handle": "sku", "node": "Sku"}]}`

func newBatchService(t *testing.T, client *mocks.Client) *Service {
	resolver, err := mapping.NewResolver("|", mapping.WithRenderer(template.NewObjectRenderer()))
	require.NoError(t, err)
	return NewService(resolver, compare.NewDiffer(nil), nil, client, "imports", mapping.RecordSettings{}, zap.NewNop())
}

func listing(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func expectObject(client *mocks.Client, name, body string) {
	client.On("GetObject", mock.Anything, "imports", name, mock.Anything).
		Return(io.NopCloser(strings.NewReader(body)), nil).Once()
}

func TestService_PreviewPrefix(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "imports", minio.ListObjectsOptions{Prefix: "jobs/", Recursive: true}).
		Return(listing("jobs/", "jobs/d.json", "jobs/a.json", "jobs/b.yaml", "jobs/readme.txt", "jobs/c.json"))
	expectObject(client, "jobs/a.json", chairJob)
	expectObject(client, "jobs/b.yaml", unchangedJob)
	expectObject(client, "jobs/c.json", `{"record": {}}`)
	expectObject(client, "jobs/d.json", newJob)

	report, err := newBatchService(t, client).PreviewPrefix(context.Background(), "jobs/", 2)
	require.NoError(t, err)

	require.Len(t, report.Items, 4)
	assert.Equal(t, "jobs/a.json", report.Items[0].Name)
	assert.Equal(t, []string{"slug"}, report.Items[0].Changed)
	assert.True(t, report.Items[1].Unchanged)
	assert.Contains(t, report.Items[2].Error, "no field bindings")
	assert.True(t, report.Items[3].New)

	assert.Equal(t, BatchSummary{Total: 4, Unchanged: 1, Changed: 1, New: 1, Failed: 1}, report.Summary)
	client.AssertExpectations(t)
}

func TestService_PreviewPrefix_ListError(t *testing.T) {
	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("access denied")}
	close(ch)
	client.On("ListObjects", mock.Anything, "imports", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	_, err := newBatchService(t, client).PreviewPrefix(context.Background(), "jobs/", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestService_PreviewPrefix_NoClient(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.PreviewPrefix(context.Background(), "jobs/", 1)
	assert.Error(t, err)
}

func TestHandlePreviewBatch(t *testing.T) {
	app, client := setupTestApp(t)
	client.On("ListObjects", mock.Anything, "imports", mock.Anything).Return(listing("jobs/b.yaml"))
	expectObject(client, "jobs/b.yaml", unchangedJob)

	resp, err := app.Test(newGet("/preview/batch?prefix=jobs/"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, map[string]any{"total": float64(1), "unchanged": float64(1), "changed": float64(0), "new": float64(0), "failed": float64(0)}, body["summary"])

	resp, err = app.Test(newGet("/preview/batch"))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

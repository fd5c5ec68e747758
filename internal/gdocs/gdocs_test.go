package gdocs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
)

type fakeGoogle struct {
	mu      sync.Mutex
	created []map[string]interface{}
	updates map[string][]map[string]interface{}
	getCode int
}

func (f *fakeGoogle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/files":
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		f.created = append(f.created, body)
		w.Write([]byte(`{"id":"NEW1","name":"x"}`))

	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":batchUpdate"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v1/documents/"), ":batchUpdate")
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		f.updates[id] = append(f.updates[id], body)
		w.Write([]byte(`{"documentId":"` + id + `"}`))

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v1/documents/"):
		if f.getCode != 0 {
			w.WriteHeader(f.getCode)
			w.Write([]byte(`{"error":{"code":403,"message":"denied"}}`))
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
		w.Write([]byte(`{"documentId":"` + id + `","body":{"content":[{"endIndex":1},{"startIndex":1,"endIndex":42}]}}`))

	default:
		http.NotFound(w, r)
	}
}

func newTestPublisher(t *testing.T, cfg config.GoogleConfig) (*implPublisher, *fakeGoogle) {
	t.Helper()

	fake := &fakeGoogle{updates: map[string][]map[string]interface{}{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	cfg.ServiceAccountFile = filepath.Join(t.TempDir(), "sa.json")
	require.NoError(t, os.WriteFile(cfg.ServiceAccountFile, []byte("{}"), 0600))

	p, err := New(context.Background(), cfg,
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	impl := p.(*implPublisher)
	impl.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }
	return impl, fake
}

func insertedText(t *testing.T, update map[string]interface{}) (float64, string) {
	t.Helper()
	reqs := update["requests"].([]interface{})
	require.Len(t, reqs, 1)
	ins := reqs[0].(map[string]interface{})["insertText"].(map[string]interface{})
	loc := ins["location"].(map[string]interface{})
	return loc["index"].(float64), ins["text"].(string)
}

func TestNewNotConfigured(t *testing.T) {
	_, err := New(context.Background(), config.GoogleConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewConnector(config.GoogleConfig{})(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewMissingCredentials(t *testing.T) {
	_, err := New(context.Background(), config.GoogleConfig{
		ServiceAccountFile: filepath.Join(t.TempDir(), "missing.json"),
	})

	var initErr *InitError
	require.True(t, errors.As(err, &initErr))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, errors.Is(err, ErrNotConfigured))
}

func TestPublishDriveThenDocs(t *testing.T) {
	p, fake := newTestPublisher(t, config.GoogleConfig{Method: config.MethodDriveThenDocs})

	doc, err := p.Publish(context.Background(), "Clean - 20240309_140507", "hello docs")
	require.NoError(t, err)
	assert.Equal(t, "NEW1", doc.ID)
	assert.Equal(t, "https://docs.google.com/document/d/NEW1/edit", doc.URL)

	require.Len(t, fake.created, 1)
	assert.Equal(t, "Clean - 20240309_140507", fake.created[0]["name"])
	assert.Equal(t, googleDocMimeType, fake.created[0]["mimeType"])

	require.Len(t, fake.updates["NEW1"], 1)
	index, text := insertedText(t, fake.updates["NEW1"][0])
	assert.Equal(t, float64(1), index)
	assert.Equal(t, "hello docs", text)
}

func TestPublishAppendsToExisting(t *testing.T) {
	p, fake := newTestPublisher(t, config.GoogleConfig{
		Method:             config.MethodShareWithService,
		ExistingDocumentID: "DOC9",
	})

	doc, err := p.Publish(context.Background(), "ignored", "body")
	require.NoError(t, err)
	assert.Equal(t, "DOC9", doc.ID)
	assert.Empty(t, fake.created)

	require.Len(t, fake.updates["DOC9"], 1)
	index, text := insertedText(t, fake.updates["DOC9"][0])
	assert.Equal(t, float64(41), index)
	assert.Equal(t, "\n\n--- Updated on 2024-03-09 14:05:07 ---\n\nbody\n", text)
}

func TestPublishAppendWithoutDocument(t *testing.T) {
	p, fake := newTestPublisher(t, config.GoogleConfig{Method: config.MethodShareWithService})

	_, err := p.Publish(context.Background(), "t", "c")
	assert.ErrorIs(t, err, ErrNoExistingDocument)
	assert.Empty(t, fake.updates)
}

func TestAppendAccessDenied(t *testing.T) {
	p, fake := newTestPublisher(t, config.GoogleConfig{
		Method:              config.MethodShareWithService,
		ExistingDocumentID:  "DOC9",
		ServiceAccountEmail: "bot@project.iam.gserviceaccount.com",
	})
	fake.getCode = http.StatusForbidden

	_, err := p.Publish(context.Background(), "t", "c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot@project.iam.gserviceaccount.com")
	assert.Empty(t, fake.updates)
}

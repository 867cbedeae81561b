package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sh5080/emotion-tips-go/pkg/configs"
	constants "github.com/sh5080/emotion-tips-go/pkg/types"
)

func newTestConfig(searchURL string) *configs.EnvConfig {
	config := &configs.EnvConfig{}
	config.Google.APIKey = "secret-key"
	config.Google.CSEID = "cx-123"
	config.Google.SearchURL = searchURL
	config.Google.Timeout = 2 * time.Second
	config.Classifier.Timeout = 2 * time.Second
	return config
}

func TestGoogleSearchSendsQueryKeyAndContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "joy tips", r.URL.Query().Get("q"))
		assert.Equal(t, "secret-key", r.URL.Query().Get("key"))
		assert.Equal(t, "cx-123", r.URL.Query().Get("cx"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"title":"A","link":"https://a.example","snippet":"first"},{"title":"B","link":"https://b.example"}]}`))
	}))
	defer server.Close()

	resp, err := NewGoogleSearchClient(newTestConfig(server.URL)).Search(context.Background(), "joy tips")
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "A", resp.Items[0].Title)
	require.NotNil(t, resp.Items[0].Snippet)
	assert.Equal(t, "first", *resp.Items[0].Snippet)
	assert.Nil(t, resp.Items[1].Snippet)
}

func TestGoogleSearchWithoutItemsIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"kind":"customsearch#search","searchInformation":{"totalResults":"0"}}`))
	}))
	defer server.Close()

	resp, err := NewGoogleSearchClient(newTestConfig(server.URL)).Search(context.Background(), "joy tips")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestGoogleSearchNonOKIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	_, err := NewGoogleSearchClient(newTestConfig(server.URL)).Search(context.Background(), "joy tips")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestGoogleSearchTransportErrorHidesKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	searchURL := server.URL
	server.Close()

	_, err := NewGoogleSearchClient(newTestConfig(searchURL)).Search(context.Background(), "joy tips")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-key")
}

func TestGoogleSearchOversizedBodyIsReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"title":"`))
		_, _ = w.Write([]byte(strings.Repeat("a", constants.MAX_UPSTREAM_BODY)))
		_, _ = w.Write([]byte(`"}]}`))
	}))
	defer server.Close()

	_, err := NewGoogleSearchClient(newTestConfig(server.URL)).Search(context.Background(), "joy tips")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "최대 크기")
}

func TestGoogleSearchHTMLErrorPageIsSummarized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html><body><h1>502</h1><p>Bad   Gateway</p></body></html>`))
	}))
	defer server.Close()

	_, err := NewGoogleSearchClient(newTestConfig(server.URL)).Search(context.Background(), "joy tips")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad Gateway")
	assert.NotContains(t, err.Error(), "<p>")
}

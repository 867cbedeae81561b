package serverless

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	client "github.com/sh5080/emotion-tips-go/pkg/clients"
	"github.com/sh5080/emotion-tips-go/pkg/configs"
	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
	middleware "github.com/sh5080/emotion-tips-go/pkg/middlewares"
	"github.com/sh5080/emotion-tips-go/pkg/services/api"
	"github.com/sh5080/emotion-tips-go/pkg/services/external"
	responseDto "github.com/sh5080/emotion-tips-go/pkg/types/dtos/responses"
)

type upstreams struct {
	classifier  *httptest.Server
	search      *httptest.Server
	searchCalls int32
}

func (u *upstreams) Close() {
	u.classifier.Close()
	u.search.Close()
}

// newUpstreams는 항상 joy를 반환하는 분류기와 고정 응답을 주는 검색 서버를 띄웁니다
func newUpstreams(t *testing.T, searchStatus int, searchBody string) *upstreams {
	t.Helper()
	u := &upstreams{}

	u.classifier = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[{"label":"sadness","score":0.02},{"label":"joy","score":0.95},{"label":"neutral","score":0.03}]]`))
	}))

	u.search = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&u.searchCalls, 1)
		assert.Equal(t, "joy tips", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(searchStatus)
		_, _ = w.Write([]byte(searchBody))
	}))

	return u
}

func newTestApp(t *testing.T, u *upstreams, isServerless bool) *fiber.App {
	t.Helper()

	config := &configs.EnvConfig{}
	config.Server.AppName = "emotion-tips-test"
	config.Google.APIKey = "secret-key"
	config.Google.CSEID = "cx-123"
	config.Google.SearchURL = u.search.URL
	config.Google.Timeout = 2 * time.Second
	config.Classifier.BaseURL = u.classifier.URL
	config.Classifier.Model = "test/model"
	config.Classifier.Timeout = 2 * time.Second
	config.Status.Interval = time.Minute
	config.Status.TTL = 2 * time.Minute

	emotionService := api.NewEmotionService(client.NewHuggingFaceClient(config))
	recommendationService := api.NewRecommendationService(client.NewGoogleSearchClient(config))

	services := &_interface.ServiceContainer{
		ProcessService:      api.NewProcessService(emotionService, recommendationService),
		ServerStatusService: external.NewServerStatusService(nil, config),
	}

	return NewApp(config, services, isServerless)
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

const twoItems = `{"items":[
	{"title":"Joy & <calm> tips","link":"https://example.com/1","snippet":"Smile   more","htmlTitle":"<b>Joy</b> tips"},
	{"title":"Stay happy","link":"https://example.com/2"}
]}`

func TestProcessEndToEnd(t *testing.T) {
	u := newUpstreams(t, http.StatusOK, twoItems)
	defer u.Close()

	resp, data := doRequest(t, newTestApp(t, u, true), "POST", "/process", `{"input": "I am so happy today"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	var body responseDto.Process
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "joy", body.Emotion)
	require.Len(t, body.Tips, 2)
	assert.Equal(t, "Joy & <calm> tips", body.Tips[0].Title)
	assert.Equal(t, "Smile   more", body.Tips[0].Description)
	assert.Equal(t, "https://example.com/2", body.Tips[1].Link)
	assert.Equal(t, "No description available.", body.Tips[1].Description)
}

func TestProcessEndToEndNoResults(t *testing.T) {
	u := newUpstreams(t, http.StatusOK, `{"searchInformation":{"totalResults":"0"}}`)
	defer u.Close()

	resp, data := doRequest(t, newTestApp(t, u, true), "POST", "/process", `{"input": "I am so happy today"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"No results found for this emotion."}`, string(data))
}

func TestProcessEndToEndUpstreamFailureDoesNotLeak(t *testing.T) {
	u := newUpstreams(t, http.StatusForbidden, `{"error":{"message":"API key secret-key invalid"}}`)
	defer u.Close()

	resp, data := doRequest(t, newTestApp(t, u, true), "POST", "/process", `{"input": "I am so happy today"}`)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Server error: web search failed"}`, string(data))
	assert.NotContains(t, string(data), "secret-key")
}

func TestProcessEndToEndInvalidInputSkipsUpstreams(t *testing.T) {
	u := newUpstreams(t, http.StatusOK, twoItems)
	defer u.Close()

	resp, data := doRequest(t, newTestApp(t, u, true), "POST", "/process", `{"input": "happy 123"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Invalid input. Only letters and spaces are allowed."}`, string(data))
	assert.Zero(t, atomic.LoadInt32(&u.searchCalls))
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	u := newUpstreams(t, http.StatusOK, twoItems)
	defer u.Close()

	resp, data := doRequest(t, newTestApp(t, u, true), "GET", "/nope", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body responseDto.Error
	require.NoError(t, json.Unmarshal(data, &body))
	assert.NotEmpty(t, body.Error)
}

func TestHealthAndStatus(t *testing.T) {
	u := newUpstreams(t, http.StatusOK, twoItems)
	defer u.Close()
	app := newTestApp(t, u, true)

	resp, data := doRequest(t, app, "GET", "/health", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var health responseDto.HealthResponse
	require.NoError(t, json.Unmarshal(data, &health))
	assert.Equal(t, "emotion-tips-test", health.AppName)
	assert.NotEmpty(t, health.InstanceID)

	resp, data = doRequest(t, app, "GET", "/status", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), health.InstanceID)
}

func TestMetricsOnlyOutsideServerless(t *testing.T) {
	u := newUpstreams(t, http.StatusOK, twoItems)
	defer u.Close()

	resp, _ := doRequest(t, newTestApp(t, u, true), "GET", "/metrics", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, newTestApp(t, u, false), "GET", "/metrics", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

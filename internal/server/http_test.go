package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/repo-ranker/internal/conf"
	"github.com/lk2023060901/repo-ranker/internal/pkg/logger"
	"github.com/lk2023060901/repo-ranker/internal/repository/biz"
	"github.com/lk2023060901/repo-ranker/internal/repository/provider"
	"github.com/lk2023060901/repo-ranker/internal/repository/scoring"
	"github.com/lk2023060901/repo-ranker/internal/repository/service"
	"github.com/lk2023060901/repo-ranker/internal/repository/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, p provider.Provider) *HTTPServer {
	t.Helper()
	log := logger.NewNop()
	uc := biz.NewRepositoryUseCase(p, scoring.NewDefaultEngine(), log)
	cfg := &conf.Config{Server: conf.ServerConfig{Host: "127.0.0.1", Port: 3000}}
	return NewHTTPServer(cfg, log, service.NewRepositoryService(uc))
}

// fakeGitHub answers the search endpoint with a fixed status and body
func fakeGitHub(t *testing.T, status int, body string) provider.Provider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/repositories" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	p, err := provider.NewFactory().Create(&types.ProviderConfig{
		ID:      types.ProviderGitHub,
		BaseURL: srv.URL + "/",
		Timeout: 2 * time.Second,
	})
	require.NoError(t, err)
	return p
}

func do(s *HTTPServer, target string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestRepositories_SingleItem(t *testing.T) {
	body := `{"total_count":1,"items":[{"name":"test-repo","full_name":"me/test-repo",` +
		`"stargazers_count":100,"forks_count":20,"updated_at":"2025-01-01T00:00:00Z",` +
		`"html_url":"https://github.com/me/test-repo"}]}`
	s := newTestServer(t, fakeGitHub(t, http.StatusOK, body))

	w := do(s, "/repositories?language=go", nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := gjson.Parse(w.Body.String())
	assert.Equal(t, int64(1), res.Get("meta.total").Int())
	assert.Equal(t, int64(1), res.Get("meta.page").Int())
	assert.Equal(t, int64(30), res.Get("meta.perPage").Int())
	require.Equal(t, int64(1), res.Get("data.#").Int())
	assert.Equal(t, "test-repo", res.Get("data.0.name").String())
	assert.Equal(t, int64(100), res.Get("data.0.stars").Int())
	assert.Equal(t, int64(20), res.Get("data.0.forks").Int())
	assert.Equal(t, gjson.Number, res.Get("data.0.score").Type)
	assert.Greater(t, res.Get("data.0.score").Float(), 0.0)
	assert.LessOrEqual(t, res.Get("data.0.score").Float(), 100.0)
}

func TestRepositories_NoItems(t *testing.T) {
	s := newTestServer(t, fakeGitHub(t, http.StatusOK, `{"total_count":0,"items":[]}`))

	w := do(s, "/repositories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := gjson.Parse(w.Body.String())
	assert.Equal(t, int64(0), res.Get("meta.total").Int())
	assert.True(t, res.Get("data").IsArray())
	assert.Equal(t, int64(0), res.Get("data.#").Int())
}

func TestRepositories_InvalidDate(t *testing.T) {
	p := provider.NewMockProvider(&types.SearchResult{})
	s := newTestServer(t, p)

	w := do(s, "/repositories?createdAfter=not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid date format. Use ISO format.", gjson.Get(w.Body.String(), "error").String())
	assert.Equal(t, 0, p.Calls())
}

func TestRepositories_ResultWindow(t *testing.T) {
	s := newTestServer(t, provider.NewMockProvider(&types.SearchResult{}))

	w := do(s, "/repositories?page=11&perPage=100", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, gjson.Get(w.Body.String(), "error").Exists())
}

func TestRepositories_UpstreamFailure(t *testing.T) {
	s := newTestServer(t, fakeGitHub(t, http.StatusInternalServerError, `{"message":"boom at /internal/search.go:42"}`))

	w := do(s, "/repositories?language=go", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := w.Body.String()
	assert.JSONEq(t, `{"error":"Internal server error"}`, body)
	assert.NotContains(t, body, "boom")
	assert.NotContains(t, body, ".go:")
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, provider.NewMockProvider(&types.SearchResult{}))

	w := do(s, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", gjson.Get(w.Body.String(), "status").String())
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, provider.NewMockProvider(&types.SearchResult{}))

	w := do(s, "/repositories", http.Header{logger.RequestIDHeader: []string{"req-123"}})
	assert.Equal(t, "req-123", w.Header().Get(logger.RequestIDHeader))

	w = do(s, "/repositories", nil)
	assert.NotEmpty(t, w.Header().Get(logger.RequestIDHeader))
}

func TestNoRoute(t *testing.T) {
	s := newTestServer(t, provider.NewMockProvider(&types.SearchResult{}))

	w := do(s, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"error"`))
}

func TestHTTPServer_Addr(t *testing.T) {
	s := newTestServer(t, provider.NewMockProvider(&types.SearchResult{}))
	assert.Equal(t, "127.0.0.1:3000", s.Addr())
}

package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	apperrors "github.com/lk2023060901/repo-ranker/internal/pkg/errors"
	"github.com/lk2023060901/repo-ranker/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(log *logger.Logger, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(ErrorHandler(log))
	r.GET("/", handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        apperrors.NewValidationError("Value must be >= 1"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Value must be >= 1"}`,
		},
		{
			name:       "upstream",
			err:        apperrors.NewUpstreamError(errors.New("connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
		{
			name:       "plain error",
			err:        errors.New("nil pointer somewhere"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
		{
			name:       "not found without details",
			err:        apperrors.New(apperrors.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"` + apperrors.GetMessage(apperrors.ErrNotFound) + `"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(logger.NewNop(), func(c *gin.Context) {
				HandleError(c, tt.err)
			})
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestErrorHandler_LogsOnce(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := logger.NewWithCore(core)

	w := serve(log, func(c *gin.Context) {
		_ = c.Error(apperrors.NewUpstreamError(errors.New("dial tcp: timeout")))
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())

	entries := logs.FilterMessage("request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	assert.Contains(t, entries[0].ContextMap()["error"], "dial tcp: timeout")
}

func TestErrorHandler_ClientErrorAtWarn(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := logger.NewWithCore(core)

	w := serve(log, func(c *gin.Context) {
		_ = c.Error(apperrors.NewValidationError("Invalid order. Use 'asc' or 'desc'."))
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	entries := logs.FilterMessage("request rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
}

func TestErrorHandler_NoErrors(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	w := serve(logger.NewWithCore(core), func(c *gin.Context) {
		Success(c, gin.H{"ok": true})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, 0, logs.Len())
}

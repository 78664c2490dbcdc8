package response

import (
	"github.com/gin-gonic/gin"
	apperrors "github.com/lk2023060901/repo-ranker/internal/pkg/errors"
	"github.com/lk2023060901/repo-ranker/internal/pkg/logger"
	"go.uber.org/zap"
)

// ErrorHandler is the single place where handler errors become responses.
// Handlers record failures with c.Error and return; the last recorded
// error is logged once and rendered here.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("error", err.Error()),
		}

		l := log.WithContext(c.Request.Context())
		if apperrors.IsClientError(apperrors.ExtractCode(err)) {
			l.Warn("request rejected", fields...)
		} else {
			l.Error("request failed", fields...)
		}

		HandleError(c, err)
	}
}

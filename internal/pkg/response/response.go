package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/lk2023060901/repo-ranker/internal/pkg/errors"
)

// ErrorBody is the JSON body of every failed request
type ErrorBody = apperrors.Body

// Success writes data as the 200 response body
func Success(c *gin.Context, data interface{}) {
	if data == nil {
		data = struct{}{}
	}
	c.JSON(http.StatusOK, data)
}

// Error writes an error response
func Error(c *gin.Context, httpStatus int, message string) {
	c.AbortWithStatusJSON(httpStatus, ErrorBody{Error: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 with the generic message
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(apperrors.GetHTTPStatus(apperrors.ErrInternalServer), apperrors.NewBody(apperrors.ErrInternalServer))
}

// HandleError maps err to a status and a client-safe message. Details of
// client errors are returned verbatim; server errors never leak detail.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	code := apperrors.ExtractCode(err)
	if !apperrors.IsClientError(code) {
		InternalError(c)
		return
	}

	message := apperrors.GetDetails(err)
	if message == "" {
		message = apperrors.GetMessage(code)
	}
	Error(c, apperrors.GetHTTPStatus(code), message)
}

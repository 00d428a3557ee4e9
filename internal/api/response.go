package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"article_cms/internal/domain"
)

const (
	CodeNotFound           = "NOT_FOUND"
	CodeNoPublishedVersion = "NO_PUBLISHED_VERSION"
	CodeBadQuery           = "BAD_QUERY"
	CodeValidation         = "VALIDATION_FAILED"
	CodeBadRequest         = "BAD_REQUEST"
	CodeInternal           = "INTERNAL"
)

// ErrorBody is the JSON envelope for every non-2xx response.
type ErrorBody struct {
	Code       string                  `json:"code"`
	Error      string                  `json:"error"`
	Violations []domain.FieldViolation `json:"violations,omitempty"`
	RequestID  string                  `json:"requestId,omitempty"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{
		Code:      CodeBadRequest,
		Error:     msg,
		RequestID: requestID(c),
	})
}

// fail maps a service error onto a status code. Anything outside the domain
// taxonomy is logged and reported as 500 without its message.
func fail(c *gin.Context, logger *slog.Logger, err error) {
	body := ErrorBody{Error: err.Error(), RequestID: requestID(c)}
	status := http.StatusInternalServerError

	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNoPublishedVersion):
		status, body.Code = http.StatusNotFound, CodeNoPublishedVersion
	case errors.Is(err, domain.ErrNotFound):
		status, body.Code = http.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrBadQuery):
		status, body.Code = http.StatusBadRequest, CodeBadQuery
	case errors.As(err, &verr):
		status, body.Code = http.StatusBadRequest, CodeValidation
		body.Violations = verr.Violations
	default:
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", body.RequestID,
			"error", err,
		)
		body.Code = CodeInternal
		body.Error = "internal server error"
	}

	c.AbortWithStatusJSON(status, body)
}

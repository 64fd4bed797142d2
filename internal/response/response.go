package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stemsi/aprec-backend/internal/repository"
)

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Error    ErrorBody `json:"error"`
	Metadata Metadata  `json:"metadata"`
}

// ErrorBody represents a structured error response.
type ErrorBody struct {
	Code    ErrCode           `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Metadata includes request tracing and timing.
type Metadata struct {
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// Success writes data as the bare JSON body.
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// Fail sends an error response with an error code and no field-level details.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, build(c, code, nil))
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, build(c, code, fields))
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, build(c, code, nil))
}

// FailStore maps a store error to 503 when no handle could be acquired and
// to 500 otherwise.
func FailStore(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrStoreUnavailable) {
		Fail(c, http.StatusServiceUnavailable, ErrStoreUnavailable)
		return
	}
	Fail(c, http.StatusInternalServerError, ErrInternal)
}

func build(c *gin.Context, code ErrCode, fields map[string]string) ErrorResponse {
	return ErrorResponse{
		Error:    ErrorBody{Code: code, Message: GetMessage(code), Fields: fields},
		Metadata: buildMetadata(c),
	}
}

func buildMetadata(c *gin.Context) Metadata {
	reqID, _ := c.Get(ContextKeyRequestID)
	id, ok := reqID.(string)
	if !ok || id == "" {
		id = uuid.New().String() // middleware not applied
	}
	return Metadata{
		RequestID: id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/aprec-backend/internal/response"
)

// SystemHandler serves liveness probes.
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Health reports that the process is up. It touches no dependencies and is
// left out of the API document.
func (h *SystemHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}

// NotFound renders unknown routes in the error envelope.
func (h *SystemHandler) NotFound(c *gin.Context) {
	response.Fail(c, http.StatusNotFound, response.ErrNotFound)
}

// MethodNotAllowed renders wrong-method requests in the error envelope.
func (h *SystemHandler) MethodNotAllowed(c *gin.Context) {
	response.Fail(c, http.StatusMethodNotAllowed, response.ErrMethodNotAllowed)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/aprec-backend/internal/response"
	"github.com/stemsi/aprec-backend/internal/service"
)

// APClassHandler exposes the AP class catalog.
type APClassHandler struct {
	classService *service.APClassService
}

// NewAPClassHandler creates a new APClassHandler.
func NewAPClassHandler(classService *service.APClassService) *APClassHandler {
	return &APClassHandler{classService: classService}
}

// ListOfferedClasses godoc
//
//	@Summary		List offered AP classes
//	@Description	Returns the AP classes currently flagged as offered.
//	@Tags			classes
//	@Produce		json
//	@Success		200	{array}		model.APClass
//	@Failure		500	{object}	response.ErrorResponse
//	@Failure		503	{object}	response.ErrorResponse
//	@Router			/ap-classes [get]
func (h *APClassHandler) ListOfferedClasses(c *gin.Context) {
	classes, err := h.classService.ListOffered(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.FailStore(c, err)
		return
	}

	response.Success(c, http.StatusOK, classes)
}

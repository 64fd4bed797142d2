package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/aprec-backend/internal/response"
	"github.com/stemsi/aprec-backend/internal/service"
)

// StudentProfileHandler exposes student profile reads.
type StudentProfileHandler struct {
	studentService *service.StudentProfileService
}

// NewStudentProfileHandler creates a new StudentProfileHandler.
func NewStudentProfileHandler(studentService *service.StudentProfileService) *StudentProfileHandler {
	return &StudentProfileHandler{studentService: studentService}
}

// ListStudentProfiles godoc
//
//	@Summary		List student profiles
//	@Description	Returns every stored student profile, oldest first.
//	@Tags			students
//	@Produce		json
//	@Success		200	{array}		model.StudentProfile
//	@Failure		500	{object}	response.ErrorResponse
//	@Failure		503	{object}	response.ErrorResponse
//	@Router			/student-data [get]
func (h *StudentProfileHandler) ListStudentProfiles(c *gin.Context) {
	profiles, err := h.studentService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.FailStore(c, err)
		return
	}

	response.Success(c, http.StatusOK, profiles)
}

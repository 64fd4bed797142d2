package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/aprec-backend/internal/response"
	"github.com/stemsi/aprec-backend/internal/service"
	"github.com/stemsi/aprec-backend/internal/validator"
)

// RecommendationHandler exposes class recommendations.
type RecommendationHandler struct {
	recommendationService *service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// recommendQuery is bound from the query string. A nil TopK means the
// parameter was omitted.
type recommendQuery struct {
	TopK *int `form:"top_k" binding:"omitempty,min=1"`
}

// Recommend godoc
//
//	@Summary		Recommend AP classes
//	@Description	Ranks offered classes by TF-IDF cosine similarity to the interests of the most recently created student profile. Returns an empty array when there are no profiles or no offered classes.
//	@Tags			recommendations
//	@Produce		json
//	@Param			top_k	query		int	false	"Number of classes to return"	minimum(1)	default(3)
//	@Success		200		{array}		string
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		429		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Failure		503		{object}	response.ErrorResponse
//	@Router			/recommend [get]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var q recommendQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	topK := h.recommendationService.DefaultTopK()
	if q.TopK != nil {
		topK = *q.TopK
	}

	names, err := h.recommendationService.RecommendForLatest(c.Request.Context(), topK)
	if err != nil {
		_ = c.Error(err)
		response.FailStore(c, err)
		return
	}

	response.Success(c, http.StatusOK, names)
}

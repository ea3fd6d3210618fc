package classify

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"investormatch/pkg/response"
)

type ClassifyHandler struct {
	service ClassifyService
}

func NewClassifyHandler(service ClassifyService) *ClassifyHandler {
	return &ClassifyHandler{service: service}
}

func (h *ClassifyHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/classify", h.classify)
}

type classifyRequest struct {
	QuestionnaireResults map[string]string `json:"questionnaire_results"`
	ClassificationGoal   string            `json:"classification_goal"`
}

// @Summary      Classify a questionnaire
// @Description  Submits the questionnaire to the generative-text service and returns its raw answer
// @Tags         classify
// @Accept       json
// @Produce      json
// @Param        request body classifyRequest true "Questionnaire results and optional goal"
// @Success      200  {object}  map[string]any "Classification"
// @Failure      400  {object}  response.ErrorResponse "questionnaire_results is required"
// @Failure      500  {object}  response.ErrorResponse "Classification service failure"
// @Router       /api/classify [post]
func (h *ClassifyHandler) classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if len(req.QuestionnaireResults) == 0 {
		response.SendError(c, http.StatusBadRequest, "questionnaire_results is required")
		return
	}

	result, err := h.service.Classify(c.Request.Context(), req.QuestionnaireResults, req.ClassificationGoal)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			response.SendError(c, http.StatusInternalServerError, "classification service is not configured")
		case errors.Is(err, ErrUnexpectedResponse):
			response.SendError(c, http.StatusInternalServerError, "unexpected response format from classification service")
		default:
			response.SendError(c, http.StatusInternalServerError, "classification service connection failed")
		}
		return
	}

	response.SendOK(c, http.StatusOK, gin.H{
		"classification":  result.Label,
		"raw_ai_response": result.Raw,
	})
}

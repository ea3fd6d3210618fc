package match

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"investormatch/pkg/response"
)

type MatchHandler struct {
	service MatchService
}

func NewMatchHandler(service MatchService) *MatchHandler {
	return &MatchHandler{service: service}
}

func (h *MatchHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/match", h.findMatches)
	router.GET("/api/matches_overview", h.matchesOverview)
}

// @Summary      Find investor matches
// @Description  Scores the founder profile against every investor and returns the top 3
// @Tags         match
// @Accept       json
// @Produce      json
// @Param        request body map[string]any true "Founder profile (industry, funding_stage, risk_tolerance, investment_amount, plus passthrough fields)"
// @Success      200  {object}  MatchResponse "Top matches"
// @Failure      400  {object}  response.ErrorResponse "Missing required fields"
// @Failure      500  {object}  response.ErrorResponse "Internal server error"
// @Router       /api/match [post]
func (h *MatchHandler) findMatches(c *gin.Context) {
	var profile FounderProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	resp, err := h.service.FindMatches(c.Request.Context(), profile)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			response.SendError(c, http.StatusBadRequest, vErr.Error())
			return
		}
		response.SendError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary      Cached match overview
// @Description  Returns every match response still present in the cache; never recomputes
// @Tags         match
// @Produce      json
// @Success      200  {object}  map[string]any "Cached matches"
// @Failure      500  {object}  response.ErrorResponse "Cache read failed"
// @Router       /api/matches_overview [get]
func (h *MatchHandler) matchesOverview(c *gin.Context) {
	entries, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.SendError(c, http.StatusInternalServerError, "failed to read cached matches")
		return
	}

	response.SendOK(c, http.StatusOK, gin.H{
		"cached_matches": entries,
		"count":          len(entries),
	})
}

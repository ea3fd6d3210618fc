package investors

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"investormatch/pkg/response"
	"investormatch/pkg/sendemail"
)

type InvestorHandler struct {
	service InvestorService
}

func NewInvestorHandler(service InvestorService) *InvestorHandler {
	return &InvestorHandler{service: service}
}

func (h *InvestorHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/investors", h.listInvestors)
	router.GET("/api/investors/:id", h.getInvestorByID)
	router.GET("/api/industries", h.listIndustries)
	router.GET("/api/funding-stages", h.listFundingStages)
	router.GET("/api/stats", h.getStats)
	router.POST("/api/investors/:id/contact", h.contactInvestor)
}

type contactInvestorRequest struct {
	FounderName  string `json:"founder_name" binding:"required"`
	FounderEmail string `json:"founder_email" binding:"required"`
	CompanyName  string `json:"company_name"`
	Message      string `json:"message"`
}

// @Summary      List all investors
// @Description  Returns the full investor catalog with a count
// @Tags         investors
// @Produce      json
// @Success      200  {object}  map[string]any "Catalog with count"
// @Router       /api/investors [get]
func (h *InvestorHandler) listInvestors(c *gin.Context) {
	list := h.service.ListInvestors(c.Request.Context())
	response.SendOK(c, http.StatusOK, gin.H{
		"investors": list,
		"count":     len(list),
	})
}

// @Summary      Get investor by ID
// @Description  Returns a single investor profile
// @Tags         investors
// @Produce      json
// @Param        id   path      int  true  "Investor ID"
// @Success      200  {object}  map[string]any "Investor"
// @Failure      404  {object}  response.ErrorResponse "Investor not found"
// @Router       /api/investors/{id} [get]
func (h *InvestorHandler) getInvestorByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.SendError(c, http.StatusNotFound, "Investor not found")
		return
	}

	inv, err := h.service.GetInvestorByID(c.Request.Context(), id)
	if err != nil {
		response.SendError(c, http.StatusNotFound, "Investor not found")
		return
	}

	response.SendOK(c, http.StatusOK, gin.H{"investor": inv})
}

// @Summary      List industries
// @Description  Static enumeration of supported industries
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]any "Industries"
// @Router       /api/industries [get]
func (h *InvestorHandler) listIndustries(c *gin.Context) {
	response.SendOK(c, http.StatusOK, gin.H{"industries": h.service.Industries()})
}

// @Summary      List funding stages
// @Description  Static enumeration of supported funding stages
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]any "Stages"
// @Router       /api/funding-stages [get]
func (h *InvestorHandler) listFundingStages(c *gin.Context) {
	response.SendOK(c, http.StatusOK, gin.H{"stages": h.service.FundingStages()})
}

// @Summary      Platform statistics
// @Description  Aggregate counts and averages over the catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]any "Stats"
// @Router       /api/stats [get]
func (h *InvestorHandler) getStats(c *gin.Context) {
	response.SendOK(c, http.StatusOK, gin.H{"stats": h.service.Stats(c.Request.Context())})
}

// @Summary      Contact an investor
// @Description  Sends an introduction email to the investor's contact address
// @Tags         investors
// @Accept       json
// @Produce      json
// @Param        id      path  int  true  "Investor ID"
// @Param        request body  contactInvestorRequest true "Introduction request"
// @Success      200  {object}  map[string]any "Introduction sent"
// @Failure      400  {object}  response.ErrorResponse "Invalid request payload"
// @Failure      404  {object}  response.ErrorResponse "Investor not found"
// @Failure      500  {object}  response.ErrorResponse "Email delivery failed"
// @Router       /api/investors/{id}/contact [post]
func (h *InvestorHandler) contactInvestor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.SendError(c, http.StatusNotFound, "Investor not found")
		return
	}

	var req contactInvestorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "founder_name and founder_email are required")
		return
	}

	err = h.service.ContactInvestor(c.Request.Context(), id, ContactRequest{
		FounderName:  req.FounderName,
		FounderEmail: req.FounderEmail,
		CompanyName:  req.CompanyName,
		Message:      req.Message,
	})
	if err != nil {
		if errors.Is(err, ErrInvestorNotFound) {
			response.SendError(c, http.StatusNotFound, "Investor not found")
			return
		}
		if errors.Is(err, sendemail.ErrNotConfigured) {
			response.SendError(c, http.StatusInternalServerError, "email service is not configured")
			return
		}
		response.SendError(c, http.StatusInternalServerError, "failed to send introduction")
		return
	}

	response.SendOK(c, http.StatusOK, gin.H{"message": "introduction sent"})
}

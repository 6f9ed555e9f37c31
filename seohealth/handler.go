package seohealth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seo-audit-tool/backend/apierr"
)

// Handler exposes the SEO health endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the handlers under the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/scores", h.scores)
}

func (h *Handler) analyze(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL provided"})
		return
	}
	h.run(c, req)
}

// scores is the GET convenience endpoint accepting the same fields as
// query parameters.
func (h *Handler) scores(c *gin.Context) {
	req := Request{
		URL:      c.Query("url"),
		Strategy: c.DefaultQuery("strategy", "mobile"),
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The \"url\" query parameter is required"})
		return
	}
	h.run(c, req)
}

func (h *Handler) run(c *gin.Context, req Request) {
	result, err := h.service.Analyze(c.Request.Context(), req)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

package searchvis

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seo-audit-tool/backend/apierr"
)

// Handler exposes the search visibility endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/index-status", h.indexStatus)
	rg.GET("/oauth-url", h.oauthURL)
}

func (h *Handler) analyze(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL provided"})
		return
	}
	h.run(c, req)
}

func (h *Handler) indexStatus(c *gin.Context) {
	req := Request{
		URL:         c.Query("url"),
		AccessToken: c.Query("access_token"),
		BingAPIKey:  c.Query("bing_api_key"),
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The \"url\" query parameter is required"})
		return
	}
	h.run(c, req)
}

// oauthURL returns the OAuth bootstrap info for Search Console.
func (h *Handler) oauthURL(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"oauth_url": "https://accounts.google.com/o/oauth2/auth?...",
		"note":      "Configure OAuth credentials in production",
	})
}

func (h *Handler) run(c *gin.Context, req Request) {
	result, err := h.service.Analyze(c.Request.Context(), req)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

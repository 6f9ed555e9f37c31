package onpage

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seo-audit-tool/backend/apierr"
)

type Handler struct {
	analyzer *Analyzer
}

func NewHandler(analyzer *Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/analyze", h.quickAnalyze)
}

func (h *Handler) analyze(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Render(c, apierr.Wrap(apierr.InvalidInput, "invalid request body", err))
		return
	}
	h.respond(c, req.URL)
}

func (h *Handler) quickAnalyze(c *gin.Context) {
	targetURL := c.Query("url")
	if targetURL == "" {
		apierr.Render(c, apierr.New(apierr.InvalidInput, "url query parameter is required"))
		return
	}
	h.respond(c, targetURL)
}

func (h *Handler) respond(c *gin.Context, targetURL string) {
	result, err := h.analyzer.Analyze(c.Request.Context(), targetURL)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

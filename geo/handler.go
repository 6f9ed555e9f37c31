package geo

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seo-audit-tool/backend/apierr"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/check", h.check)
}

func (h *Handler) analyze(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Render(c, apierr.Wrap(apierr.InvalidInput, "invalid request body", err))
		return
	}
	h.respond(c, &req)
}

func (h *Handler) check(c *gin.Context) {
	domain := c.Query("domain")
	if domain == "" {
		apierr.Render(c, apierr.New(apierr.InvalidInput, "domain query parameter is required"))
		return
	}
	var keywords []string
	for _, k := range strings.Split(c.Query("keywords"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	h.respond(c, &Request{Domain: domain, Keywords: keywords})
}

func (h *Handler) respond(c *gin.Context, req *Request) {
	result, err := h.service.Analyze(c.Request.Context(), req)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

package traffic

import (
	"net/http"
	"strconv"
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
	rg.POST("/estimate", h.estimate)
	rg.GET("/estimate", h.quickEstimate)
	rg.GET("/compare", h.compare)
}

func (h *Handler) estimate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Render(c, apierr.Wrap(apierr.InvalidInput, "invalid request body", err))
		return
	}
	h.respond(c, &req)
}

func (h *Handler) quickEstimate(c *gin.Context) {
	targetURL := c.Query("url")
	if targetURL == "" {
		apierr.Render(c, apierr.New(apierr.InvalidInput, "url query parameter is required"))
		return
	}
	req := Request{
		URL:              targetURL,
		IncludeSources:   boolQuery(c, "include_sources"),
		IncludeCountries: boolQuery(c, "include_countries"),
		IncludeKeywords:  boolQuery(c, "include_keywords"),
	}
	h.respond(c, &req)
}

func (h *Handler) compare(c *gin.Context) {
	raw := c.Query("urls")
	if raw == "" {
		apierr.Render(c, apierr.New(apierr.InvalidInput, "urls query parameter is required"))
		return
	}
	c.JSON(http.StatusOK, h.service.Compare(c.Request.Context(), strings.Split(raw, ",")))
}

func (h *Handler) respond(c *gin.Context, req *Request) {
	result, err := h.service.Estimate(c.Request.Context(), req)
	if err != nil {
		apierr.Render(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func boolQuery(c *gin.Context, name string) *bool {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

package report

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/seo-audit-tool/backend/apierr"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
	rg.GET("/template", h.template)
}

func (h *Handler) generate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Render(c, apierr.Wrap(apierr.InvalidInput, "invalid request body", err))
		return
	}

	now := time.Now()
	data, err := Build(&req, now)
	if err != nil {
		apierr.Render(c, apierr.Wrap(apierr.Internal, "failed to generate report", err))
		return
	}

	// Spool to a temp file so large reports are not held twice in memory
	// by the response writer.
	tmpPath := filepath.Join(os.TempDir(), "report-"+uuid.NewString()+".pdf")
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		apierr.Render(c, apierr.Wrap(apierr.Internal, "failed to write report", err))
		return
	}
	defer os.Remove(tmpPath)

	filename := "SEO_Audit_Report_" + now.Format("20060102_150405") + ".pdf"
	log.WithField("url", req.URL).WithField("bytes", len(data)).Info("report generated")
	c.FileAttachment(tmpPath, filename)
}

func (h *Handler) template(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"template": gin.H{"sections": TemplateSections},
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/report"
)

// ReportHandler exposes the asynchronous AI summary: one endpoint starts a
// generation, the other polls for the latest text.
type ReportHandler struct {
	Service *report.Service
}

func NewReportHandler(service *report.Service) *ReportHandler {
	return &ReportHandler{Service: service}
}

// GenerateReportHandler starts a generation and returns immediately. Firing
// again while one is running is allowed; the last completion wins.
func (h *ReportHandler) GenerateReportHandler(c *gin.Context) {
	h.Service.Start()
	c.JSON(http.StatusAccepted, gin.H{"generating": true})
}

func (h *ReportHandler) GetReportHandler(c *gin.Context) {
	text, generating, updatedAt := h.Service.Latest()
	resp := gin.H{"report": text, "generating": generating}
	if !updatedAt.IsZero() {
		resp["updatedAt"] = updatedAt
	}
	c.JSON(http.StatusOK, resp)
}

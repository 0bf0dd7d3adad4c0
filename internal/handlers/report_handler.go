package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
	"opsboard/internal/pdf"
	"opsboard/internal/services"
)

type ReportHandler struct {
	service  services.ReportService
	renderer pdf.Renderer
}

func NewReportHandler(service services.ReportService, renderer pdf.Renderer) *ReportHandler {
	return &ReportHandler{service: service, renderer: renderer}
}

// @Summary      Weekly report PDF
// @Description  Renders the 7-day window starting at week_start (default: most recent Friday)
// @Tags         Reports
// @Produce      application/pdf
// @Param        week_start  query  string  false  "week start date (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  map[string]string
// @Router       /api/export-pdf [get]
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	weekStart := services.LastFriday(time.Now())
	if v, ok := c.GetQuery("week_start"); ok {
		parsed, err := time.Parse(models.DateLayout, v)
		if err != nil {
			log.Printf("[report][export][err] invalid week_start=%q: %v", v, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_start (YYYY-MM-DD)"})
			return
		}
		weekStart = parsed
	}

	report, err := h.service.Build(c.Request.Context(), weekStart)
	if err != nil {
		respondError(c, "report", "export", err)
		return
	}

	out, err := h.renderer.Render(report)
	if err != nil {
		respondError(c, "report", "export", err)
		return
	}

	log.Printf("[report][export][ok] week_start=%s groups=%d bytes=%d",
		report.StartDate, len(report.Groups), len(out))
	filename := fmt.Sprintf("weekly_report_%s.pdf", report.StartDate)
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", out)
}

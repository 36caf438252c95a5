package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studyprep/exam-service/internal/services"
	"github.com/studyprep/exam-service/internal/utils"
)

type AnalyticsHandler struct {
	BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService, logger utils.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      NewBaseHandler(logger),
		analyticsService: analyticsService,
	}
}

// GetQuestionStats reports the fully-correct answer rate for one question.
func (h *AnalyticsHandler) GetQuestionStats(c *gin.Context) {
	questionID, ok := ParseUintParam(c, "id")
	if !ok {
		return
	}

	stats, err := h.analyticsService.GetQuestionStats(c.Request.Context(), questionID)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: stats})
}

func (h *AnalyticsHandler) GetSubjectStats(c *gin.Context) {
	subject := ParseStringIDParam(c, "subject")
	if subject == "" {
		return
	}

	stats, err := h.analyticsService.GetSubjectStats(c.Request.Context(), subject)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: stats})
}

// ExportSubjectResults streams an Excel workbook of a subject's attempts.
func (h *AnalyticsHandler) ExportSubjectResults(c *gin.Context) {
	subject := ParseStringIDParam(c, "subject")
	if subject == "" {
		return
	}
	h.LogRequest(c, "Exporting subject results", "subject", subject)

	data, err := h.analyticsService.ExportSubjectResults(c.Request.Context(), subject)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	filename := fmt.Sprintf("results-%s.xlsx", subject)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

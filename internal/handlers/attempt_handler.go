package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studyprep/exam-service/internal/repositories"
	"github.com/studyprep/exam-service/internal/services"
	"github.com/studyprep/exam-service/internal/utils"
)

type AttemptHandler struct {
	BaseHandler
	attemptService services.AttemptService
}

func NewAttemptHandler(attemptService services.AttemptService, logger utils.Logger) *AttemptHandler {
	return &AttemptHandler{
		BaseHandler:    NewBaseHandler(logger),
		attemptService: attemptService,
	}
}

// SubmitAttempt scores a completed sitting and records it.
func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	h.LogRequest(c, "Submitting attempt")

	var req services.SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	attempt, err := h.attemptService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Attempt recorded",
		Data:    attempt,
	})
}

func (h *AttemptHandler) GetAttempt(c *gin.Context) {
	id, ok := ParseUintParam(c, "id")
	if !ok {
		return
	}

	attempt, err := h.attemptService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: attempt})
}

func (h *AttemptHandler) ListAttempts(c *gin.Context) {
	filters := repositories.AttemptFilters{}
	if userIDStr := c.Query("user_id"); userIDStr != "" {
		if userID, err := strconv.ParseUint(userIDStr, 10, 64); err == nil {
			id := uint(userID)
			filters.UserID = &id
		}
	}
	if subjectIDStr := c.Query("subject_id"); subjectIDStr != "" {
		if subjectID, err := strconv.ParseUint(subjectIDStr, 10, 64); err == nil {
			id := uint(subjectID)
			filters.SubjectID = &id
		}
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filters.Limit = limit
	}
	if offset, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil {
		filters.Offset = offset
	}

	attempts, total, err := h.attemptService.List(c.Request.Context(), filters)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Data: gin.H{"attempts": attempts, "total": total},
	})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studyprep/exam-service/internal/repositories"
	"github.com/studyprep/exam-service/internal/services"
	"github.com/studyprep/exam-service/internal/utils"
)

type ExamHandler struct {
	BaseHandler
	assembler   services.ExamAssembler
	examService services.ExamService
}

func NewExamHandler(assembler services.ExamAssembler, examService services.ExamService, logger utils.Logger) *ExamHandler {
	return &ExamHandler{
		BaseHandler: NewBaseHandler(logger),
		assembler:   assembler,
		examService: examService,
	}
}

// AssembleRandomExam assembles an ephemeral random exam for a subject.
// A bank shortage is a 200 with is_full_exam=false; only an empty bank or
// an unknown subject fails the call.
func (h *ExamHandler) AssembleRandomExam(c *gin.Context) {
	subject := ParseStringIDParam(c, "subject")
	if subject == "" {
		return
	}
	h.LogRequest(c, "Assembling random exam", "subject", subject)

	exam, err := h.assembler.AssembleRandom(c.Request.Context(), subject)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Exam assembled",
		Data:    exam,
	})
}

// CreateExam creates a fixed exam from a manual selection or, when no
// question ids are given, from random sampling.
func (h *ExamHandler) CreateExam(c *gin.Context) {
	h.LogRequest(c, "Creating fixed exam")

	var req services.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	exam, err := h.examService.Create(c.Request.Context(), &req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Exam created",
		Data:    exam,
	})
}

func (h *ExamHandler) GetExam(c *gin.Context) {
	id, ok := ParseUintParam(c, "id")
	if !ok {
		return
	}

	exam, err := h.examService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: exam})
}

func (h *ExamHandler) ListExams(c *gin.Context) {
	subject := c.Query("subject")
	if subject == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Missing subject query parameter",
		})
		return
	}

	filters := repositories.ExamFilters{
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filters.Limit = limit
	}
	if offset, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil {
		filters.Offset = offset
	}

	exams, total, err := h.examService.ListBySubject(c.Request.Context(), subject, filters)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Data: gin.H{"exams": exams, "total": total},
	})
}

func (h *ExamHandler) DeleteExam(c *gin.Context) {
	id, ok := ParseUintParam(c, "id")
	if !ok {
		return
	}
	h.LogRequest(c, "Deleting fixed exam", "exam_id", id)

	if err := h.examService.Delete(c.Request.Context(), id); err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Exam deleted"})
}

// DetachQuestion unlinks a question from a fixed exam; repeating the call
// for the same question succeeds with the list unchanged.
func (h *ExamHandler) DetachQuestion(c *gin.Context) {
	examID, ok := ParseUintParam(c, "id")
	if !ok {
		return
	}
	questionID, ok := ParseUintParam(c, "question_id")
	if !ok {
		return
	}
	h.LogRequest(c, "Detaching question from exam",
		"exam_id", examID, "question_id", questionID)

	if err := h.examService.DetachQuestion(c.Request.Context(), examID, questionID); err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Question detached"})
}

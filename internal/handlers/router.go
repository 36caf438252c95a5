package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/studyprep/exam-service/internal/services"
	"github.com/studyprep/exam-service/internal/utils"
)

type HandlerManager struct {
	examHandler      *ExamHandler
	attemptHandler   *AttemptHandler
	analyticsHandler *AnalyticsHandler
}

func NewHandlerManager(
	assembler services.ExamAssembler,
	examService services.ExamService,
	attemptService services.AttemptService,
	analyticsService services.AnalyticsService,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		examHandler:      NewExamHandler(assembler, examService, logger),
		attemptHandler:   NewAttemptHandler(attemptService, logger),
		analyticsHandler: NewAnalyticsHandler(analyticsService, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Exam routes
		exams := v1.Group("/exams")
		{
			exams.GET("/random/:subject", hm.examHandler.AssembleRandomExam)
			exams.POST("", hm.examHandler.CreateExam)
			exams.GET("", hm.examHandler.ListExams)
			exams.GET("/:id", hm.examHandler.GetExam)
			exams.DELETE("/:id", hm.examHandler.DeleteExam)
			exams.DELETE("/:id/questions/:question_id", hm.examHandler.DetachQuestion)
		}

		// Attempt routes
		attempts := v1.Group("/attempts")
		{
			attempts.POST("", hm.attemptHandler.SubmitAttempt)
			attempts.GET("", hm.attemptHandler.ListAttempts)
			attempts.GET("/:id", hm.attemptHandler.GetAttempt)
		}

		// Analytics routes
		analytics := v1.Group("/analytics")
		{
			analytics.GET("/questions/:id", hm.analyticsHandler.GetQuestionStats)
			analytics.GET("/subjects/:subject", hm.analyticsHandler.GetSubjectStats)
			analytics.GET("/subjects/:subject/export", hm.analyticsHandler.ExportSubjectResults)
		}
	}
}

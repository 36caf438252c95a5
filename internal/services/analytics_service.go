package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/studyprep/exam-service/internal/cache"
	"github.com/studyprep/exam-service/internal/repositories"
	"github.com/xuri/excelize/v2"
)

// subjectStatsTTL bounds how stale cached subject analytics can get; new
// attempts also invalidate the keys eagerly.
const subjectStatsTTL = 5 * time.Minute

type analyticsService struct {
	repo   repositories.Repository
	cache  cache.CacheService
	logger *slog.Logger
}

func NewAnalyticsService(repo repositories.Repository, cacheService cache.CacheService, logger *slog.Logger) AnalyticsService {
	return &analyticsService{
		repo:   repo,
		cache:  cacheService,
		logger: logger,
	}
}

// GetQuestionStats reports how often a question was answered with full
// credit across all recorded attempts. Partial true/false credit counts as
// incorrect here.
func (s *analyticsService) GetQuestionStats(ctx context.Context, questionID uint) (*repositories.QuestionStats, error) {
	if _, err := s.repo.Question().GetByID(ctx, questionID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	stats, err := s.repo.Question().GetQuestionStats(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute question stats: %w", err)
	}
	return stats, nil
}

func (s *analyticsService) GetSubjectStats(ctx context.Context, subjectIdentifier string) (*repositories.SubjectStats, error) {
	subject, err := s.repo.Subject().GetBySlugOrID(ctx, subjectIdentifier)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("failed to resolve subject: %w", err)
	}

	cacheKey := fmt.Sprintf("analytics:subject:%d", subject.ID)
	var cached repositories.SubjectStats
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Analytics cache read failed", "key", cacheKey, "error", err)
	}

	stats, err := s.repo.Attempt().GetSubjectStats(ctx, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute subject stats: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKey, stats, subjectStatsTTL); err != nil {
		s.logger.Warn("Analytics cache write failed", "key", cacheKey, "error", err)
	}
	return stats, nil
}

// ExportSubjectResults renders every recorded attempt for a subject as an
// Excel workbook.
func (s *analyticsService) ExportSubjectResults(ctx context.Context, subjectIdentifier string) ([]byte, error) {
	subject, err := s.repo.Subject().GetBySlugOrID(ctx, subjectIdentifier)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("failed to resolve subject: %w", err)
	}

	attempts, err := s.repo.Attempt().GetBySubject(ctx, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts: %w", err)
	}

	f := excelize.NewFile()
	sheetName := "Results"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"Attempt ID", "User ID", "Score", "Questions", "Submitted At"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, attempt := range attempts {
		row := []interface{}{
			attempt.ID,
			attempt.UserID,
			attempt.Score,
			attempt.Total,
			attempt.CreatedAt.Format(time.RFC3339),
		}
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported subject results",
		"subject", subject.Slug,
		"attempts", len(attempts))
	return buf.Bytes(), nil
}

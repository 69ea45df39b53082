package services

import (
	"context"
	"math"
	"time"

	app_errors "locman/internal/errors"
	"locman/internal/models"

	"gorm.io/gorm"
)

// AnalyticsService computes per-project completion statistics.
type AnalyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// LanguageCompletion describes how far one language's translations have
// progressed over a project's keys.
type LanguageCompletion struct {
	Completed  int64   `json:"completed"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ProjectAnalytics is the full completion report for one project.
type ProjectAnalytics struct {
	ProjectID            string                        `json:"project_id"`
	TotalKeys            int64                         `json:"total_keys"`
	TotalLanguages       int64                         `json:"total_languages"`
	CompletionByLanguage map[string]LanguageCompletion `json:"completion_by_language"`
	OverallCompletion    float64                       `json:"overall_completion"`
	TotalTranslations    int64                         `json:"total_translations"`
	MissingTranslations  int64                         `json:"missing_translations"`
	LastUpdated          time.Time                     `json:"last_updated"`
}

// GetProjectAnalytics computes completion per assigned language and overall.
// A project with no keys is vacuously complete, so every percentage is 100
// rather than a division by zero. Translation counts are restricted to the
// project's own keys; rows under other projects never inflate the numbers.
func (s *AnalyticsService) GetProjectAnalytics(ctx context.Context, projectID string) (*ProjectAnalytics, error) {
	var totalKeys int64
	err := s.db.WithContext(ctx).
		Model(&models.TranslationKey{}).
		Where("project_id = ?", projectID).
		Count(&totalKeys).Error
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}

	var assignments []models.ProjectLanguage
	err = s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("language_code").
		Find(&assignments).Error
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}

	analytics := &ProjectAnalytics{
		ProjectID:            projectID,
		TotalKeys:            totalKeys,
		TotalLanguages:       int64(len(assignments)),
		CompletionByLanguage: make(map[string]LanguageCompletion, len(assignments)),
		LastUpdated:          time.Now(),
	}

	var totalTranslations int64
	for _, assignment := range assignments {
		var completed int64
		if totalKeys > 0 {
			err = s.db.WithContext(ctx).
				Model(&models.Translation{}).
				Where("language_code = ?", assignment.LanguageCode).
				Where("translation_key_id IN (?)",
					s.db.Model(&models.TranslationKey{}).Select("id").Where("project_id = ?", projectID)).
				Count(&completed).Error
			if err != nil {
				return nil, app_errors.ParseDBError(err)
			}
		}
		totalTranslations += completed
		analytics.CompletionByLanguage[assignment.LanguageCode] = LanguageCompletion{
			Completed:  completed,
			Total:      totalKeys,
			Percentage: completionPercent(completed, totalKeys),
		}
	}

	totalSlots := totalKeys * analytics.TotalLanguages
	analytics.TotalTranslations = totalTranslations
	analytics.MissingTranslations = totalSlots - totalTranslations
	analytics.OverallCompletion = completionPercent(totalTranslations, totalSlots)

	return analytics, nil
}

// completionPercent is 100 for an empty denominator: nothing to translate
// means nothing is missing.
func completionPercent(completed, total int64) float64 {
	if total == 0 {
		return 100.0
	}
	percent := float64(completed) / float64(total) * 100.0
	return math.Round(percent*100) / 100
}

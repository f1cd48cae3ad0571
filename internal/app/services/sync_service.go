package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mertkaradayi/gradecore/internal/app/models"
	"github.com/mertkaradayi/gradecore/internal/app/models/dto"
	"github.com/mertkaradayi/gradecore/internal/pkg/apperrors"
)

// SyncService exposes the direct upsert entry points used outside the
// import flow, e.g. manual grade entry or a sibling import writing its
// final grades through this engine.
type SyncService interface {
	SyncGrades(ctx context.Context, inputs []dto.ItemGradeInput) ([]*models.ItemGrade, error)
	SyncFinalGrade(ctx context.Context, input dto.FinalGradeInput) (*models.FinalGrade, error)
	DeleteExtraordinaryGrade(ctx context.Context, studentID, courseID string) error
	FinalGrades(ctx context.Context, studentID, courseID string) ([]*models.FinalGrade, error)
}

type gradeSyncService struct {
	itemStore  ItemGradeStore
	finalStore FinalGradeStore
	logger     zerolog.Logger
}

// NewSyncService creates a new sync service instance
func NewSyncService(itemStore ItemGradeStore, finalStore FinalGradeStore, lgr zerolog.Logger) SyncService {
	return &gradeSyncService{
		itemStore:  itemStore,
		finalStore: finalStore,
		logger:     lgr,
	}
}

// SyncGrades upserts a set of item grades by natural key. Inputs without a
// value leave the stored value unchanged; an explicit null clears it.
func (s *gradeSyncService) SyncGrades(ctx context.Context, inputs []dto.ItemGradeInput) ([]*models.ItemGrade, error) {
	for _, in := range inputs {
		if in.Value.Set && in.Value.Value != nil {
			if v := *in.Value.Value; !validGradeValue(v) {
				return nil, fmt.Errorf("%w: grade value %v out of range", apperrors.ErrValidationFailed, v)
			}
		}
	}

	grades := make([]*models.ItemGrade, 0, len(inputs))
	for _, in := range inputs {
		grade, err := s.itemStore.SyncItemGrade(ctx, in.Candidate())
		if err != nil {
			return nil, fmt.Errorf("error syncing item grade: %w", err)
		}
		grades = append(grades, grade)
	}

	return grades, nil
}

// SyncFinalGrade upserts one final grade. The pass flag always follows the
// threshold contract, also for operator-supplied extraordinary grades.
func (s *gradeSyncService) SyncFinalGrade(ctx context.Context, input dto.FinalGradeInput) (*models.FinalGrade, error) {
	switch input.Period {
	case models.PeriodOrdinary, models.PeriodExtraordinary:
	default:
		return nil, fmt.Errorf("%w: unknown evaluation period %q", apperrors.ErrValidationFailed, input.Period)
	}

	if !validGradeValue(input.Value) {
		return nil, fmt.Errorf("%w: final grade value %v out of range", apperrors.ErrValidationFailed, input.Value)
	}

	value := round2(input.Value)
	grade, err := s.finalStore.SyncFinalGrade(ctx, models.FinalGradeRecord{
		StudentID:      input.StudentID,
		CourseID:       input.CourseID,
		AcademicYearID: input.AcademicYearID,
		Period:         input.Period,
		Value:          value,
		IsPassed:       value >= models.PassThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("error syncing final grade: %w", err)
	}

	return grade, nil
}

// DeleteExtraordinaryGrade removes an operator-withdrawn extraordinary
// grade. Ordinary grades are derived and never deleted through this path.
func (s *gradeSyncService) DeleteExtraordinaryGrade(ctx context.Context, studentID, courseID string) error {
	err := s.finalStore.DeleteFinalGrade(ctx, studentID, courseID, models.PeriodExtraordinary)
	if err != nil {
		if errors.Is(err, apperrors.ErrFinalGradeNotFound) {
			return apperrors.ErrFinalGradeNotFound
		}
		return fmt.Errorf("error deleting extraordinary grade: %w", err)
	}
	return nil
}

// FinalGrades retrieves a student's final grades for one course
func (s *gradeSyncService) FinalGrades(ctx context.Context, studentID, courseID string) ([]*models.FinalGrade, error) {
	grades, err := s.finalStore.FinalGradesByStudentCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving final grades: %w", err)
	}
	return grades, nil
}

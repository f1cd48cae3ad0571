package services

import (
	"context"
	"math"

	"github.com/mertkaradayi/gradecore/internal/app/models"
)

// validGradeValue reports whether v is a finite grade in [0, 10].
// ParseFloat accepts "NaN" and "Inf" spellings, and NaN slips past
// plain range comparisons, so every parse site goes through this.
func validGradeValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 && v <= 10
}

// ItemGradeStore is the write/read surface the grade engine needs for
// item-level grades. Implemented by repositories.GradeRepository and by
// the in-memory store used in tests.
type ItemGradeStore interface {
	SyncItemGrade(ctx context.Context, cand models.ItemGradeCandidate) (*models.ItemGrade, error)
	ItemGradesByStudentCourse(ctx context.Context, studentID, courseID string) ([]*models.ItemGrade, error)
}

// FinalGradeStore is the write/read surface for final grades.
// Implemented by repositories.FinalGradeRepository and by the in-memory
// store used in tests.
type FinalGradeStore interface {
	SyncFinalGrade(ctx context.Context, rec models.FinalGradeRecord) (*models.FinalGrade, error)
	FinalGradesByStudentCourse(ctx context.Context, studentID, courseID string) ([]*models.FinalGrade, error)
	DeleteFinalGrade(ctx context.Context, studentID, courseID string, period models.EvaluationPeriod) error
}

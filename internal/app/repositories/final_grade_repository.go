package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mertkaradayi/gradecore/internal/app/models"
	"github.com/mertkaradayi/gradecore/internal/pkg/apperrors"
)

// FinalGradeRepository handles database operations for final grades
type FinalGradeRepository struct {
	db *pgxpool.Pool
}

// NewFinalGradeRepository creates a new final grade repository
func NewFinalGradeRepository(db *pgxpool.Pool) *FinalGradeRepository {
	return &FinalGradeRepository{
		db: db,
	}
}

// SyncFinalGrade upserts a final grade by its natural key
// (student, course, period). Idempotent: re-running with the same record
// converges on the same row.
func (r *FinalGradeRepository) SyncFinalGrade(ctx context.Context, rec models.FinalGradeRecord) (*models.FinalGrade, error) {
	query := `
		SELECT id
		FROM final_grades
		WHERE student_id = $1 AND course_id = $2 AND evaluation_period = $3
	`

	grade := models.FinalGrade{
		StudentID:      rec.StudentID,
		CourseID:       rec.CourseID,
		AcademicYearID: rec.AcademicYearID,
		Period:         rec.Period,
		Value:          rec.Value,
		IsPassed:       rec.IsPassed,
	}

	err := r.db.QueryRow(ctx, query, rec.StudentID, rec.CourseID, rec.Period).Scan(&grade.ID)

	switch {
	case err == nil:
		updateQuery := `
			UPDATE final_grades
			SET academic_year_id = $1, value = $2, is_passed = $3
			WHERE id = $4
		`
		if _, err := r.db.Exec(ctx, updateQuery, rec.AcademicYearID, rec.Value, rec.IsPassed, grade.ID); err != nil {
			return nil, fmt.Errorf("error updating final grade: %w", err)
		}
		return &grade, nil

	case errors.Is(err, pgx.ErrNoRows):
		insertQuery := `
			INSERT INTO final_grades (student_id, course_id, academic_year_id, evaluation_period, value, is_passed)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		if err := r.db.QueryRow(ctx, insertQuery,
			rec.StudentID, rec.CourseID, rec.AcademicYearID, rec.Period, rec.Value, rec.IsPassed).Scan(&grade.ID); err != nil {
			return nil, fmt.Errorf("error creating final grade: %w", err)
		}
		return &grade, nil

	default:
		return nil, fmt.Errorf("error retrieving final grade: %w", err)
	}
}

// FinalGradesByStudentCourse retrieves a student's final grades for a course
func (r *FinalGradeRepository) FinalGradesByStudentCourse(ctx context.Context, studentID, courseID string) ([]*models.FinalGrade, error) {
	query := `
		SELECT id, student_id, course_id, academic_year_id, evaluation_period, value, is_passed
		FROM final_grades
		WHERE student_id = $1 AND course_id = $2
		ORDER BY evaluation_period
	`

	rows, err := r.db.Query(ctx, query, studentID, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.FinalGrade
	for rows.Next() {
		var grade models.FinalGrade
		if err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.CourseID,
			&grade.AcademicYearID,
			&grade.Period,
			&grade.Value,
			&grade.IsPassed,
		); err != nil {
			return nil, err
		}
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// DeleteFinalGrade removes a final grade by its natural key. Used when an
// operator withdraws an extraordinary grade.
func (r *FinalGradeRepository) DeleteFinalGrade(ctx context.Context, studentID, courseID string, period models.EvaluationPeriod) error {
	query := `
		DELETE FROM final_grades
		WHERE student_id = $1 AND course_id = $2 AND evaluation_period = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, studentID, courseID, period)
	if err != nil {
		return fmt.Errorf("error deleting final grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFinalGradeNotFound
	}

	return nil
}

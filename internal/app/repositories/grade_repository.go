package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mertkaradayi/gradecore/internal/app/models"
)

// GradeRepository handles database operations for item-level grades
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

// SyncItemGrade upserts an item grade by its natural key (student, item).
// When the record exists and the candidate carries no value, the stored
// value stays unchanged; a second call with the same value is a no-op.
func (r *GradeRepository) SyncItemGrade(ctx context.Context, cand models.ItemGradeCandidate) (*models.ItemGrade, error) {
	query := `
		SELECT id, student_id, item_id, course_id, value
		FROM item_grades
		WHERE student_id = $1 AND item_id = $2
	`

	var grade models.ItemGrade
	err := r.db.QueryRow(ctx, query, cand.StudentID, cand.ItemID).Scan(
		&grade.ID,
		&grade.StudentID,
		&grade.ItemID,
		&grade.CourseID,
		&grade.Value,
	)

	switch {
	case err == nil:
		if !cand.ValueSet {
			return &grade, nil
		}

		updateQuery := `
			UPDATE item_grades
			SET value = $1
			WHERE id = $2
		`
		if _, err := r.db.Exec(ctx, updateQuery, cand.Value, grade.ID); err != nil {
			return nil, fmt.Errorf("error updating item grade: %w", err)
		}
		grade.Value = cand.Value
		return &grade, nil

	case errors.Is(err, pgx.ErrNoRows):
		insertQuery := `
			INSERT INTO item_grades (student_id, item_id, course_id, value)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		grade = models.ItemGrade{
			StudentID: cand.StudentID,
			ItemID:    cand.ItemID,
			CourseID:  cand.CourseID,
			Value:     cand.Value,
		}
		if err := r.db.QueryRow(ctx, insertQuery, cand.StudentID, cand.ItemID, cand.CourseID, cand.Value).Scan(&grade.ID); err != nil {
			return nil, fmt.Errorf("error creating item grade: %w", err)
		}
		return &grade, nil

	default:
		return nil, fmt.Errorf("error retrieving item grade: %w", err)
	}
}

// ItemGradesByStudentCourse retrieves a student's item grades for a course
func (r *GradeRepository) ItemGradesByStudentCourse(ctx context.Context, studentID, courseID string) ([]*models.ItemGrade, error) {
	query := `
		SELECT id, student_id, item_id, course_id, value
		FROM item_grades
		WHERE student_id = $1 AND course_id = $2
	`

	rows, err := r.db.Query(ctx, query, studentID, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.ItemGrade
	for rows.Next() {
		var grade models.ItemGrade
		if err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.ItemID,
			&grade.CourseID,
			&grade.Value,
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

package inmem

import (
	"context"
	"sync"

	"github.com/mertkaradayi/gradecore/internal/app/models"
	"github.com/mertkaradayi/gradecore/internal/pkg/apperrors"
)

type itemKey struct {
	studentID string
	itemID    string
}

type finalKey struct {
	studentID string
	courseID  string
	period    models.EvaluationPeriod
}

// Store is an in-memory grade store with the same upsert semantics as the
// Postgres repositories. It backs service tests; nothing in production
// wiring uses it.
type Store struct {
	mu     sync.Mutex
	nextID int64
	items  map[itemKey]*models.ItemGrade
	finals map[finalKey]*models.FinalGrade
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		items:  make(map[itemKey]*models.ItemGrade),
		finals: make(map[finalKey]*models.FinalGrade),
	}
}

// SyncItemGrade upserts an item grade by (student, item)
func (s *Store) SyncItemGrade(_ context.Context, cand models.ItemGradeCandidate) (*models.ItemGrade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := itemKey{studentID: cand.StudentID, itemID: cand.ItemID}
	if existing, ok := s.items[key]; ok {
		if cand.ValueSet {
			existing.Value = copyValue(cand.Value)
		}
		out := *existing
		return &out, nil
	}

	s.nextID++
	grade := &models.ItemGrade{
		ID:        s.nextID,
		StudentID: cand.StudentID,
		ItemID:    cand.ItemID,
		CourseID:  cand.CourseID,
		Value:     copyValue(cand.Value),
	}
	s.items[key] = grade
	out := *grade
	return &out, nil
}

// ItemGradesByStudentCourse retrieves a student's item grades for a course
func (s *Store) ItemGradesByStudentCourse(_ context.Context, studentID, courseID string) ([]*models.ItemGrade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var grades []*models.ItemGrade
	for _, grade := range s.items {
		if grade.StudentID == studentID && grade.CourseID == courseID {
			out := *grade
			grades = append(grades, &out)
		}
	}
	return grades, nil
}

// SyncFinalGrade upserts a final grade by (student, course, period)
func (s *Store) SyncFinalGrade(_ context.Context, rec models.FinalGradeRecord) (*models.FinalGrade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := finalKey{studentID: rec.StudentID, courseID: rec.CourseID, period: rec.Period}
	if existing, ok := s.finals[key]; ok {
		existing.AcademicYearID = rec.AcademicYearID
		existing.Value = rec.Value
		existing.IsPassed = rec.IsPassed
		out := *existing
		return &out, nil
	}

	s.nextID++
	grade := &models.FinalGrade{
		ID:             s.nextID,
		StudentID:      rec.StudentID,
		CourseID:       rec.CourseID,
		AcademicYearID: rec.AcademicYearID,
		Period:         rec.Period,
		Value:          rec.Value,
		IsPassed:       rec.IsPassed,
	}
	s.finals[key] = grade
	out := *grade
	return &out, nil
}

// FinalGradesByStudentCourse retrieves a student's final grades for a course
func (s *Store) FinalGradesByStudentCourse(_ context.Context, studentID, courseID string) ([]*models.FinalGrade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var grades []*models.FinalGrade
	for _, grade := range s.finals {
		if grade.StudentID == studentID && grade.CourseID == courseID {
			out := *grade
			grades = append(grades, &out)
		}
	}
	return grades, nil
}

// DeleteFinalGrade removes a final grade by its natural key
func (s *Store) DeleteFinalGrade(_ context.Context, studentID, courseID string, period models.EvaluationPeriod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := finalKey{studentID: studentID, courseID: courseID, period: period}
	if _, ok := s.finals[key]; !ok {
		return apperrors.ErrFinalGradeNotFound
	}
	delete(s.finals, key)
	return nil
}

// ItemGradeCount reports the number of stored item grades. Test helper.
func (s *Store) ItemGradeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// FinalGradeCount reports the number of stored final grades. Test helper.
func (s *Store) FinalGradeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.finals)
}

func copyValue(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mertkaradayi/gradecore/internal/app/models"
)

// OptionalFloat distinguishes three JSON states of a numeric field:
// absent (Set false), explicit null (Set true, Value nil) and a number
// (Set true, Value non-nil). The sync contract needs all three: absent
// leaves a stored value unchanged, null clears it.
type OptionalFloat struct {
	Value *float64
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler. It only runs for present
// fields, so Set is true whenever it is called at all.
func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("value must be a number or null: %w", err)
	}
	o.Value = &v
	return nil
}

// MarshalJSON implements json.Marshaler
func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// ItemGradeInput is one item-grade upsert in a direct sync request.
type ItemGradeInput struct {
	StudentID string        `json:"studentId" binding:"required"`
	ItemID    string        `json:"itemId" binding:"required"`
	CourseID  string        `json:"courseId" binding:"required"`
	Value     OptionalFloat `json:"value"`
}

// Candidate converts the input into the store's upsert form.
func (in ItemGradeInput) Candidate() models.ItemGradeCandidate {
	return models.ItemGradeCandidate{
		StudentID: in.StudentID,
		ItemID:    in.ItemID,
		CourseID:  in.CourseID,
		Value:     in.Value.Value,
		ValueSet:  in.Value.Set,
	}
}

// SyncGradesRequest is the body of the bulk item-grade sync endpoint.
type SyncGradesRequest struct {
	Grades []ItemGradeInput `json:"grades" binding:"required"`
}

// SyncGradesResponse returns the stored records after a bulk sync.
type SyncGradesResponse struct {
	Success bool                `json:"success"`
	Grades  []*models.ItemGrade `json:"grades"`
}

// FinalGradeInput is the body of the final-grade sync endpoint.
type FinalGradeInput struct {
	StudentID      string                  `json:"studentId" binding:"required"`
	CourseID       string                  `json:"courseId" binding:"required"`
	AcademicYearID string                  `json:"academicYearId"`
	Period         models.EvaluationPeriod `json:"evaluationPeriod" binding:"required"`
	Value          float64                 `json:"value"`
}

// SyncFinalGradeResponse returns the stored final grade after a sync.
type SyncFinalGradeResponse struct {
	Success bool               `json:"success"`
	Data    *models.FinalGrade `json:"data"`
}

// FinalGradesResponse returns a student's final grades for one course.
type FinalGradesResponse struct {
	Success bool                 `json:"success"`
	Data    []*models.FinalGrade `json:"data"`
}

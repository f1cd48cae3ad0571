package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertkaradayi/gradecore/internal/app/models/dto"
)

func TestValidateRowResolvesStudentAndCandidates(t *testing.T) {
	batch := testBatch()
	rows := []dto.ImportRow{{
		Email: "  Alice@Uni.edu ",
		Grades: []dto.GradeTriple{
			{Item: "Midterm", Type: "Exam", Value: "8"},
			{Item: "report", Type: "lab", Value: "7.5"},
		},
	}}

	validated, errs := NewRowValidator(batch, rows).ValidateRow(1, rows[0])
	require.Empty(t, errs)
	require.NotNil(t, validated)

	assert.Equal(t, "alice@uni.edu", validated.Email)
	assert.Equal(t, "a1", validated.Student.ID)
	require.Len(t, validated.Candidates, 2)

	assert.Equal(t, "i-mid", validated.Candidates[0].ItemID)
	assert.Equal(t, "c1", validated.Candidates[0].CourseID)
	require.NotNil(t, validated.Candidates[0].Value)
	assert.Equal(t, 8.0, *validated.Candidates[0].Value)

	assert.Equal(t, "i-lab", validated.Candidates[1].ItemID)
	assert.Equal(t, 7.5, *validated.Candidates[1].Value)
}

func TestValidateRowEmptyValueClearsGrade(t *testing.T) {
	batch := testBatch()
	rows := []dto.ImportRow{{
		Email:  "alice@uni.edu",
		Grades: []dto.GradeTriple{{Item: "Midterm", Type: "Exam", Value: " "}},
	}}

	validated, errs := NewRowValidator(batch, rows).ValidateRow(1, rows[0])
	require.Empty(t, errs)
	require.Len(t, validated.Candidates, 1)

	assert.True(t, validated.Candidates[0].ValueSet)
	assert.Nil(t, validated.Candidates[0].Value)
}

func TestValidateRowStudentErrors(t *testing.T) {
	batch := testBatch()

	tests := []struct {
		name  string
		email string
	}{
		{name: "empty email", email: ""},
		{name: "unknown email", email: "mallory@uni.edu"},
		{name: "known account outside group", email: "carol@uni.edu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []dto.ImportRow{{Email: tt.email}}
			validated, errs := NewRowValidator(batch, rows).ValidateRow(3, rows[0])

			assert.Nil(t, validated)
			require.Len(t, errs, 1)
			assert.Equal(t, dto.ErrorKeyStudentNotFound, errs[0].ErrorKey)
			assert.Equal(t, 3, errs[0].Line)
			assert.Equal(t, tt.email, errs[0].Data)
		})
	}
}

func TestValidateRowFlagsEveryDuplicateOccurrence(t *testing.T) {
	batch := testBatch()
	rows := []dto.ImportRow{
		{Email: "alice@uni.edu"},
		{Email: "ALICE@uni.edu"},
	}

	validator := NewRowValidator(batch, rows)

	for line, row := range rows {
		validated, errs := validator.ValidateRow(line+1, row)
		assert.Nil(t, validated)
		require.Len(t, errs, 1)
		assert.Equal(t, dto.ErrorKeyStudentDuplicated, errs[0].ErrorKey)
		assert.Equal(t, "alice@uni.edu", errs[0].Data)
	}
}

func TestValidateRowTripleErrors(t *testing.T) {
	batch := testBatch()

	tests := []struct {
		name     string
		triple   dto.GradeTriple
		wantKey  dto.ErrorKey
		wantData string
	}{
		{
			name:     "unknown type",
			triple:   dto.GradeTriple{Item: "Midterm", Type: "Quiz", Value: "5"},
			wantKey:  dto.ErrorKeyEvaluationTypeNotFound,
			wantData: "Quiz",
		},
		{
			name:     "empty type",
			triple:   dto.GradeTriple{Item: "Midterm", Value: "5"},
			wantKey:  dto.ErrorKeyEvaluationTypeNotFound,
			wantData: "",
		},
		{
			name:     "empty item",
			triple:   dto.GradeTriple{Type: "Exam", Value: "5"},
			wantKey:  dto.ErrorKeyEvaluationItemNotFound,
			wantData: "",
		},
		{
			name:     "item missing under this type",
			triple:   dto.GradeTriple{Item: "Midterm", Type: "Lab", Value: "5"},
			wantKey:  dto.ErrorKeyEvaluationItemNotFound,
			wantData: "Midterm (Lab)",
		},
		{
			name:     "value above range",
			triple:   dto.GradeTriple{Item: "Midterm", Type: "Exam", Value: "10.5"},
			wantKey:  dto.ErrorKeyInvalidGradeValue,
			wantData: "10.5",
		},
		{
			name:     "value below range",
			triple:   dto.GradeTriple{Item: "Midterm", Type: "Exam", Value: "-1"},
			wantKey:  dto.ErrorKeyInvalidGradeValue,
			wantData: "-1",
		},
		{
			name:     "value not numeric",
			triple:   dto.GradeTriple{Item: "Midterm", Type: "Exam", Value: "high"},
			wantKey:  dto.ErrorKeyInvalidGradeValue,
			wantData: "high",
		},
		{
			name:     "value not a number literal",
			triple:   dto.GradeTriple{Item: "Midterm", Type: "Exam", Value: "NaN"},
			wantKey:  dto.ErrorKeyInvalidGradeValue,
			wantData: "NaN",
		},
		{
			name:     "value infinite",
			triple:   dto.GradeTriple{Item: "Midterm", Type: "Exam", Value: "+Inf"},
			wantKey:  dto.ErrorKeyInvalidGradeValue,
			wantData: "+Inf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []dto.ImportRow{{Email: "alice@uni.edu", Grades: []dto.GradeTriple{tt.triple}}}
			validated, errs := NewRowValidator(batch, rows).ValidateRow(1, rows[0])

			assert.Nil(t, validated)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantKey, errs[0].ErrorKey)
			assert.Equal(t, tt.wantData, errs[0].Data)
		})
	}
}

func TestValidateRowDuplicateItemInRow(t *testing.T) {
	batch := testBatch()
	rows := []dto.ImportRow{{
		Email: "alice@uni.edu",
		Grades: []dto.GradeTriple{
			{Item: "Midterm", Type: "Exam", Value: "8"},
			{Item: "MIDTERM", Type: "exam", Value: "9"},
		},
	}}

	validated, errs := NewRowValidator(batch, rows).ValidateRow(1, rows[0])
	assert.Nil(t, validated)
	require.Len(t, errs, 1)
	assert.Equal(t, dto.ErrorKeyDuplicateItemInRow, errs[0].ErrorKey)
}

func TestValidateRowCollectsAllTripleErrors(t *testing.T) {
	batch := testBatch()
	rows := []dto.ImportRow{{
		Email: "alice@uni.edu",
		Grades: []dto.GradeTriple{
			{Item: "Midterm", Type: "Quiz", Value: "5"},
			{Item: "Midterm", Type: "Exam", Value: "eleven"},
			{Item: "Final", Type: "Exam", Value: "9"},
		},
	}}

	validated, errs := NewRowValidator(batch, rows).ValidateRow(1, rows[0])
	assert.Nil(t, validated)
	require.Len(t, errs, 2)
	assert.Equal(t, dto.ErrorKeyEvaluationTypeNotFound, errs[0].ErrorKey)
	assert.Equal(t, dto.ErrorKeyInvalidGradeValue, errs[1].ErrorKey)
}

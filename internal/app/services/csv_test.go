package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertkaradayi/gradecore/internal/app/models/dto"
)

func TestParseCSVRows(t *testing.T) {
	input := strings.Join([]string{
		"email,extraordinary,item,type,value,item,type,value",
		"alice@uni.edu,,Midterm,Exam,8,Report,Lab,7",
		"bob@uni.edu,6.5,Final,Exam,9",
	}, "\n")

	rows, err := ParseCSVRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "alice@uni.edu", rows[0].Email)
	assert.Empty(t, rows[0].Extraordinary)
	require.Len(t, rows[0].Grades, 2)
	assert.Equal(t, dto.GradeTriple{Item: "Midterm", Type: "Exam", Value: "8"}, rows[0].Grades[0])
	assert.Equal(t, dto.GradeTriple{Item: "Report", Type: "Lab", Value: "7"}, rows[0].Grades[1])

	assert.Equal(t, "bob@uni.edu", rows[1].Email)
	assert.Equal(t, "6.5", rows[1].Extraordinary)
	require.Len(t, rows[1].Grades, 1)
}

func TestParseCSVRowsPadsPartialTriple(t *testing.T) {
	input := "email,extraordinary,item,type,value\nalice@uni.edu,,Midterm,Exam"

	rows, err := ParseCSVRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Grades, 1)

	// The missing value cell comes back empty, validation handles it per triple
	assert.Equal(t, dto.GradeTriple{Item: "Midterm", Type: "Exam", Value: ""}, rows[0].Grades[0])
}

func TestParseCSVRowsHeaderOnly(t *testing.T) {
	rows, err := ParseCSVRows(strings.NewReader("email,extraordinary\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseCSVRowsEmptyInput(t *testing.T) {
	rows, err := ParseCSVRows(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseCSVRowsEmailOnlyRecord(t *testing.T) {
	rows, err := ParseCSVRows(strings.NewReader("email\nalice@uni.edu"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alice@uni.edu", rows[0].Email)
	assert.Empty(t, rows[0].Grades)
}

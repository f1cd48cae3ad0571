package services

import (
	"github.com/mertkaradayi/gradecore/internal/app/models"
	"github.com/mertkaradayi/gradecore/internal/config"
)

func fptr(v float64) *float64 { return &v }

// testConfig returns a config with the grading defaults used across the
// service tests.
func testConfig(treatment string) *config.Config {
	cfg := &config.Config{}
	cfg.Grading.MaxGradeLimit = 4
	cfg.Grading.MissingGradeTreatment = treatment
	return cfg
}

// testBatch builds the batch context most service tests run against: two
// exam items (60/40) under a 70% exam group and one lab report (min grade
// 5) under a 30% lab group, with two enrolled students.
func testBatch() *BatchContext {
	return &BatchContext{
		Group: &models.Group{
			ID:             "g1",
			CourseID:       "c1",
			AcademicYearID: "y1",
			Students:       []string{"a1", "a2"},
		},
		Course: &models.Course{
			ID:           "c1",
			UniversityID: "u1",
			Name:         "Distributed Systems",
		},
		EvaluationGroups: []models.EvaluationGroup{
			{EvaluationTypeID: "t-exam", TotalWeight: 70},
			{EvaluationTypeID: "t-lab", TotalWeight: 30},
		},
		Types: []*models.EvaluationType{
			{ID: "t-exam", Name: "Exam"},
			{ID: "t-lab", Name: "Lab"},
		},
		Items: []*models.EvaluationItem{
			{ID: "i-mid", Name: "Midterm", EvaluationTypeID: "t-exam", Weight: 60},
			{ID: "i-fin", Name: "Final", EvaluationTypeID: "t-exam", Weight: 40},
			{ID: "i-lab", Name: "Report", EvaluationTypeID: "t-lab", Weight: 100, MinGrade: fptr(5)},
		},
		Roster: map[string]*models.Account{
			"alice@uni.edu": {ID: "a1", Email: "alice@uni.edu"},
			"bob@uni.edu":   {ID: "a2", Email: "bob@uni.edu"},
		},
	}
}

package services

import (
	"math"

	"github.com/mertkaradayi/gradecore/internal/app/models"
	"github.com/mertkaradayi/gradecore/internal/config"
)

// Calculator aggregates item grades into a final course grade. It is pure:
// everything it reads arrives through its arguments, so it can be driven
// with fixtures directly.
type Calculator struct {
	missingTreatment string
	defaultMaxLimit  float64
}

// NewCalculator creates a calculator from the grading configuration
func NewCalculator(cfg *config.Config) *Calculator {
	return &Calculator{
		missingTreatment: cfg.Grading.MissingGradeTreatment,
		defaultMaxLimit:  cfg.Grading.MaxGradeLimit,
	}
}

// Computation is the per-period outcome of a calculation.
type Computation struct {
	Value    float64
	IsPassed bool
}

// ComputeOrdinary computes the weighted ordinary grade from the evaluation
// policy and a student's item grades (keyed by item id, nil meaning no
// grade yet). Failing any item-level minimum caps the course outcome at
// the grade limit regardless of the raw weighted score. The result is
// rounded to 2 decimal places.
func (c *Calculator) ComputeOrdinary(
	groups []models.EvaluationGroup,
	items []*models.EvaluationItem,
	gradeFor map[string]*float64,
	courseLimit *float64,
) Computation {
	totalWeighted := 0.0
	allPassed := true

	for _, group := range groups {
		var itemsOfType []*models.EvaluationItem
		for _, item := range items {
			if item.EvaluationTypeID == group.EvaluationTypeID {
				itemsOfType = append(itemsOfType, item)
			}
		}
		if len(itemsOfType) == 0 {
			// Group contributes nothing
			continue
		}

		groupWeighted := 0.0
		gradedWeight := 0.0
		for _, item := range itemsOfType {
			stored, graded := gradeFor[item.ID]
			graded = graded && stored != nil

			if !graded && c.missingTreatment == config.MissingGradeExclude {
				continue
			}

			value := 0.0
			if graded {
				value = *stored
			}

			groupWeighted += value * (item.Weight / 100)
			gradedWeight += item.Weight

			if item.MinGrade != nil && value < *item.MinGrade {
				allPassed = false
			}
		}

		if c.missingTreatment == config.MissingGradeExclude {
			if gradedWeight == 0 {
				continue
			}
			// Renormalize so graded items carry the group's full weight
			groupWeighted = groupWeighted * (100 / gradedWeight)
		}

		totalWeighted += groupWeighted * (group.TotalWeight / 100)
	}

	final := totalWeighted
	if !allPassed {
		final = math.Min(totalWeighted, c.maxLimit(courseLimit))
	}

	final = round2(final)
	return Computation{
		Value:    final,
		IsPassed: final >= models.PassThreshold,
	}
}

// ComputeExtraordinary wraps an operator-supplied extraordinary grade.
// No derivation, only the pass threshold and rounding apply.
func (c *Calculator) ComputeExtraordinary(value float64) Computation {
	value = round2(value)
	return Computation{
		Value:    value,
		IsPassed: value >= models.PassThreshold,
	}
}

// maxLimit returns the course's own cap when defined, the configured
// fallback otherwise.
func (c *Calculator) maxLimit(courseLimit *float64) float64 {
	if courseLimit != nil {
		return *courseLimit
	}
	return c.defaultMaxLimit
}

// round2 rounds to 2 decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

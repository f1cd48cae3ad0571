package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mertkaradayi/gradecore/internal/app/models"
	"github.com/mertkaradayi/gradecore/internal/app/models/dto"
)

// RowValidator checks import rows against one batch context. It carries
// the normalized-email counts of the whole file, so intra-file duplicates
// flag every occurrence, not just the later ones.
type RowValidator struct {
	batch       *BatchContext
	emailCounts map[string]int
	typesByName map[string]*models.EvaluationType
}

// ValidatedRow is a row that passed every check: the resolved student and
// the grade candidates its triples produced.
type ValidatedRow struct {
	Email      string
	Student    *models.Account
	Candidates []models.ItemGradeCandidate
}

// NewRowValidator creates a validator for one batch
func NewRowValidator(batch *BatchContext, rows []dto.ImportRow) *RowValidator {
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		email := normalizeEmail(row.Email)
		if email != "" {
			counts[email]++
		}
	}

	typesByName := make(map[string]*models.EvaluationType, len(batch.Types))
	for _, t := range batch.Types {
		typesByName[strings.ToLower(t.Name)] = t
	}

	return &RowValidator{
		batch:       batch,
		emailCounts: counts,
		typesByName: typesByName,
	}
}

// ValidateRow runs the per-row checks in order. Row-level checks (email,
// duplicate) short-circuit; triple-level checks collect one error per bad
// triple so the report names every problem in the row. A row with any
// error produces no candidates.
func (v *RowValidator) ValidateRow(line int, row dto.ImportRow) (*ValidatedRow, []dto.RowError) {
	email := normalizeEmail(row.Email)

	// Deliberately the same error for an empty email, an unknown email and
	// a student outside the group, so responses do not leak membership.
	student, ok := v.batch.Roster[email]
	if email == "" || !ok {
		return nil, []dto.RowError{{Line: line, Data: row.Email, ErrorKey: dto.ErrorKeyStudentNotFound}}
	}

	if v.emailCounts[email] > 1 {
		return nil, []dto.RowError{{Line: line, Data: email, ErrorKey: dto.ErrorKeyStudentDuplicated}}
	}

	var errs []dto.RowError
	var candidates []models.ItemGradeCandidate
	seenItems := make(map[string]bool, len(row.Grades))

	for _, triple := range row.Grades {
		itemName := strings.TrimSpace(triple.Item)
		typeName := strings.TrimSpace(triple.Type)

		if typeName == "" {
			errs = append(errs, dto.RowError{Line: line, Data: triple.Type, ErrorKey: dto.ErrorKeyEvaluationTypeNotFound})
			continue
		}
		if itemName == "" {
			errs = append(errs, dto.RowError{Line: line, Data: triple.Item, ErrorKey: dto.ErrorKeyEvaluationItemNotFound})
			continue
		}

		evalType, ok := v.typesByName[strings.ToLower(typeName)]
		if !ok {
			errs = append(errs, dto.RowError{Line: line, Data: typeName, ErrorKey: dto.ErrorKeyEvaluationTypeNotFound})
			continue
		}

		item := v.findItem(itemName, evalType.ID)
		if item == nil {
			errs = append(errs, dto.RowError{
				Line:     line,
				Data:     fmt.Sprintf("%s (%s)", itemName, typeName),
				ErrorKey: dto.ErrorKeyEvaluationItemNotFound,
			})
			continue
		}

		if seenItems[item.ID] {
			errs = append(errs, dto.RowError{Line: line, Data: itemName, ErrorKey: dto.ErrorKeyDuplicateItemInRow})
			continue
		}
		seenItems[item.ID] = true

		cand := models.ItemGradeCandidate{
			StudentID: student.ID,
			ItemID:    item.ID,
			CourseID:  v.batch.Course.ID,
			ValueSet:  true,
		}

		// Empty means "clear this grade", candidate value stays null
		raw := strings.TrimSpace(triple.Value)
		if raw != "" {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil || !validGradeValue(value) {
				errs = append(errs, dto.RowError{Line: line, Data: raw, ErrorKey: dto.ErrorKeyInvalidGradeValue})
				continue
			}
			cand.Value = &value
		}

		candidates = append(candidates, cand)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &ValidatedRow{
		Email:      email,
		Student:    student,
		Candidates: candidates,
	}, nil
}

// findItem resolves an evaluation item by case-insensitive name within one
// evaluation type.
func (v *RowValidator) findItem(name, evaluationTypeID string) *models.EvaluationItem {
	lower := strings.ToLower(name)
	for _, item := range v.batch.Items {
		if item.EvaluationTypeID == evaluationTypeID && strings.ToLower(item.Name) == lower {
			return item
		}
	}
	return nil
}

// normalizeEmail trims and lowercases an email for roster matching
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

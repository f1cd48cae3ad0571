package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mertkaradayi/gradecore/internal/app/models"
	"github.com/mertkaradayi/gradecore/internal/app/models/dto"
	"github.com/mertkaradayi/gradecore/internal/pkg/apperrors"
	"github.com/mertkaradayi/gradecore/internal/pkg/logger"
)

// ImportService runs the bulk grade import flow.
type ImportService interface {
	ImportGrades(ctx context.Context, groupID string, rows []dto.ImportRow) (*dto.ImportGradesResponse, error)
}

// gradeImportService orchestrates one import batch: fetch configuration,
// validate rows, write item grades, recompute final grades.
type gradeImportService struct {
	fetcher    ConfigFetcher
	itemStore  ItemGradeStore
	finalStore FinalGradeStore
	calc       *Calculator
	logger     zerolog.Logger
}

// NewImportService creates a new import service instance
func NewImportService(
	fetcher ConfigFetcher,
	itemStore ItemGradeStore,
	finalStore FinalGradeStore,
	calc *Calculator,
	lgr zerolog.Logger,
) ImportService {
	return &gradeImportService{
		fetcher:    fetcher,
		itemStore:  itemStore,
		finalStore: finalStore,
		calc:       calc,
		logger:     lgr,
	}
}

// ImportGrades processes rows sequentially so duplicate detection and
// natural-key upserts cannot race within one batch. Row errors are
// collected, never propagated past the row boundary; only an empty batch
// or a configuration failure aborts the whole request. There is no
// cross-row rollback: rows already processed stay committed.
func (s *gradeImportService) ImportGrades(ctx context.Context, groupID string, rows []dto.ImportRow) (*dto.ImportGradesResponse, error) {
	if len(rows) == 0 {
		return nil, apperrors.ErrEmptyBatch
	}

	lgr := s.logger
	if id := logger.RequestIDFrom(ctx); id != "" {
		lgr = lgr.With().Str("requestId", id).Logger()
	}

	batch, err := s.fetcher.FetchBatchContext(ctx, groupID)
	if err != nil {
		return nil, err
	}

	validator := NewRowValidator(batch, rows)

	resp := &dto.ImportGradesResponse{
		Success: true,
		Added:   []string{},
		Errors:  []dto.RowError{},
	}

	for i, row := range rows {
		line := i + 1

		validated, rowErrs := validator.ValidateRow(line, row)
		if len(rowErrs) > 0 {
			resp.Errors = append(resp.Errors, rowErrs...)
			continue
		}

		if err := s.processRow(ctx, batch, validated, strings.TrimSpace(row.Extraordinary), line, resp); err != nil {
			// Row-local persistence failure; the batch keeps going
			lgr.Error().Err(err).Int("line", line).Str("email", validated.Email).Msg("Failed to process import row")
			resp.Errors = append(resp.Errors, dto.RowError{Line: line, Data: validated.Email, ErrorKey: dto.ErrorKeyServerError})
		}
	}

	lgr.Info().
		Str("groupId", groupID).
		Int("rows", len(rows)).
		Int("added", len(resp.Added)).
		Int("errors", len(resp.Errors)).
		Msg("Grade import finished")

	return resp, nil
}

// processRow writes one validated row: item grades first, then the
// ordinary final grade computed from the stored values, then the optional
// extraordinary grade. Every write is an idempotent natural-key upsert, so
// retrying the row converges without extra side effects.
func (s *gradeImportService) processRow(
	ctx context.Context,
	batch *BatchContext,
	validated *ValidatedRow,
	extraordinary string,
	line int,
	resp *dto.ImportGradesResponse,
) error {
	for _, cand := range validated.Candidates {
		if _, err := s.itemStore.SyncItemGrade(ctx, cand); err != nil {
			return err
		}
	}

	stored, err := s.itemStore.ItemGradesByStudentCourse(ctx, validated.Student.ID, batch.Course.ID)
	if err != nil {
		return err
	}

	gradeFor := make(map[string]*float64, len(stored))
	for _, grade := range stored {
		gradeFor[grade.ItemID] = grade.Value
	}

	comp := s.calc.ComputeOrdinary(batch.EvaluationGroups, batch.Items, gradeFor, batch.Course.MaxGradeLimit)

	_, err = s.finalStore.SyncFinalGrade(ctx, models.FinalGradeRecord{
		StudentID:      validated.Student.ID,
		CourseID:       batch.Course.ID,
		AcademicYearID: batch.Group.AcademicYearID,
		Period:         models.PeriodOrdinary,
		Value:          comp.Value,
		IsPassed:       comp.IsPassed,
	})
	if err != nil {
		return err
	}

	if extraordinary != "" {
		value, parseErr := strconv.ParseFloat(extraordinary, 64)
		if parseErr != nil || !validGradeValue(value) {
			// The ordinary grade above stays written; only the row report fails
			resp.Errors = append(resp.Errors, dto.RowError{Line: line, Data: extraordinary, ErrorKey: dto.ErrorKeyInvalidExtraordinaryGrade})
			return nil
		}

		extra := s.calc.ComputeExtraordinary(value)
		_, err = s.finalStore.SyncFinalGrade(ctx, models.FinalGradeRecord{
			StudentID:      validated.Student.ID,
			CourseID:       batch.Course.ID,
			AcademicYearID: batch.Group.AcademicYearID,
			Period:         models.PeriodExtraordinary,
			Value:          extra.Value,
			IsPassed:       extra.IsPassed,
		})
		if err != nil {
			return err
		}
	}

	resp.Added = append(resp.Added, validated.Email)
	return nil
}

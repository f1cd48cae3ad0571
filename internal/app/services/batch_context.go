package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mertkaradayi/gradecore/internal/app/models"
	"github.com/mertkaradayi/gradecore/internal/clients"
	"github.com/mertkaradayi/gradecore/internal/pkg/apperrors"
)

// BatchContext is the configuration snapshot one import batch validates
// against. It is fetched once per import call and passed down explicitly;
// nothing in it is cached between requests.
type BatchContext struct {
	Group            *models.Group
	Course           *models.Course
	EvaluationGroups []models.EvaluationGroup
	Types            []*models.EvaluationType
	Items            []*models.EvaluationItem

	// Roster maps lowercased email to account, restricted to accounts that
	// appear in the group's declared student-id list. This intersection is
	// "students in this group".
	Roster map[string]*models.Account
}

// ConfigFetcher loads the batch context for a group.
type ConfigFetcher interface {
	FetchBatchContext(ctx context.Context, groupID string) (*BatchContext, error)
}

// collaboratorFetcher resolves the batch context from the academic,
// evaluation and identity services.
type collaboratorFetcher struct {
	clients *clients.Clients
	logger  zerolog.Logger
}

// NewConfigFetcher creates a ConfigFetcher backed by the collaborator clients
func NewConfigFetcher(cl *clients.Clients, lgr zerolog.Logger) ConfigFetcher {
	return &collaboratorFetcher{
		clients: cl,
		logger:  lgr,
	}
}

// FetchBatchContext resolves the group first, then fans out the remaining
// reads: course and items only need ids already known, the type catalog
// and the account list need the course's university. Any failure is
// batch-fatal; a missing group maps to its own error kind.
func (f *collaboratorFetcher) FetchBatchContext(ctx context.Context, groupID string) (*BatchContext, error) {
	group, err := f.clients.Academic.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, apperrors.NewCollaboratorError(fmt.Sprintf("failed to resolve group %s: %v", groupID, err))
	}

	batch := &BatchContext{Group: group}

	var courseData *clients.CourseWithSystem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courseData, err = f.clients.Academic.GetCourse(gctx, group.CourseID)
		if err != nil {
			return fmt.Errorf("failed to resolve course %s: %w", group.CourseID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		batch.Items, err = f.clients.Evaluation.GetItemsByGroup(gctx, groupID)
		if err != nil {
			return fmt.Errorf("failed to load evaluation items: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.NewCollaboratorError(err.Error())
	}

	batch.Course = courseData.Course
	batch.EvaluationGroups = courseData.System.EvaluationGroups

	var accounts []*models.Account

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		batch.Types, err = f.clients.Academic.GetEvaluationTypes(gctx, batch.Course.UniversityID)
		if err != nil {
			return fmt.Errorf("failed to load evaluation types: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		accounts, err = f.clients.Identity.GetAccountsByUniversity(gctx, batch.Course.UniversityID)
		if err != nil {
			return fmt.Errorf("failed to load accounts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.NewCollaboratorError(err.Error())
	}

	batch.Roster = buildRoster(group, accounts)

	f.warnOnWeightDrift(batch)

	return batch, nil
}

// buildRoster intersects the university's accounts with the group's
// declared student-id roster, keyed by normalized email.
func buildRoster(group *models.Group, accounts []*models.Account) map[string]*models.Account {
	inGroup := make(map[string]bool, len(group.Students))
	for _, id := range group.Students {
		inGroup[id] = true
	}

	roster := make(map[string]*models.Account)
	for _, account := range accounts {
		if !inGroup[account.ID] {
			continue
		}
		email := strings.ToLower(strings.TrimSpace(account.Email))
		if email == "" {
			continue
		}
		roster[email] = account
	}
	return roster
}

// warnOnWeightDrift logs when group weights do not sum to 100. Tolerated,
// never enforced; misconfiguration stays visible without changing outcomes.
func (f *collaboratorFetcher) warnOnWeightDrift(batch *BatchContext) {
	if len(batch.EvaluationGroups) == 0 {
		f.logger.Warn().Str("courseId", batch.Course.ID).Msg("Course has no evaluation system, weighted computations will contribute zero")
		return
	}

	var total float64
	for _, g := range batch.EvaluationGroups {
		total += g.TotalWeight
	}
	if total != 100 {
		f.logger.Warn().Str("courseId", batch.Course.ID).Float64("totalWeight", total).Msg("Evaluation group weights do not sum to 100")
	}
}

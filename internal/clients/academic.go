package clients

import (
	"context"
	"fmt"

	"github.com/mertkaradayi/gradecore/internal/app/models"
)

// AcademicClient reads groups, courses and evaluation-type catalogs from
// the academic service.
type AcademicClient struct {
	client *baseClient
}

// GetGroup resolves a group by id. Returns ErrNotFound when the group does
// not exist.
func (c *AcademicClient) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	var payload struct {
		Group *models.Group `json:"group"`
	}
	if err := c.client.getJSON(ctx, "/groups/"+groupID, &payload); err != nil {
		return nil, err
	}
	if payload.Group == nil {
		return nil, ErrNotFound
	}
	return payload.Group, nil
}

// CourseWithSystem bundles a course and its evaluation system. A course
// without a configured system yields an empty group set.
type CourseWithSystem struct {
	Course *models.Course
	System models.EvaluationSystem
}

// GetCourse resolves a course and its evaluation system.
func (c *AcademicClient) GetCourse(ctx context.Context, courseID string) (*CourseWithSystem, error) {
	var payload struct {
		Course *models.Course           `json:"course"`
		System *models.EvaluationSystem `json:"system"`
	}
	if err := c.client.getJSON(ctx, "/courses/"+courseID, &payload); err != nil {
		return nil, err
	}
	if payload.Course == nil {
		return nil, ErrNotFound
	}

	out := &CourseWithSystem{Course: payload.Course}
	if payload.System != nil {
		out.System = *payload.System
	}
	return out, nil
}

// GetEvaluationTypes loads the full evaluation-type catalog of a
// university. Filtering by policy happens at validation time.
func (c *AcademicClient) GetEvaluationTypes(ctx context.Context, universityID string) ([]*models.EvaluationType, error) {
	var payload struct {
		EvaluationTypes []*models.EvaluationType `json:"evaluationTypes"`
	}
	path := fmt.Sprintf("/evaluation-types/by-university/%s", universityID)
	if err := c.client.getJSON(ctx, path, &payload); err != nil {
		return nil, err
	}
	return payload.EvaluationTypes, nil
}

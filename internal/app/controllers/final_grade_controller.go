package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mertkaradayi/gradecore/internal/app/models/dto"
	"github.com/mertkaradayi/gradecore/internal/app/services"
	"github.com/mertkaradayi/gradecore/internal/middleware"
)

// FinalGradeController handles final-grade sync, retrieval and deletion
type FinalGradeController struct {
	syncService services.SyncService
}

// NewFinalGradeController creates a new FinalGradeController
func NewFinalGradeController(syncService services.SyncService) *FinalGradeController {
	return &FinalGradeController{syncService: syncService}
}

// SyncFinalGrade handles a direct final-grade upsert
// @Summary Sync a final grade
// @Description Upserts one final grade by natural key (student, course, period). The value is rounded to two decimals and the pass flag derived from it.
// @Tags final-grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FinalGradeInput true "Final grade"
// @Success 200 {object} dto.SyncFinalGradeResponse "Stored grade"
// @Failure 400 {object} dto.ErrorResponse "Invalid value or period"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /final-grades/sync [post]
func (c *FinalGradeController) SyncFinalGrade(ctx *gin.Context) {
	var req dto.FinalGradeInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorKeyInvalidGradeValue, err.Error()))
		return
	}

	grade, err := c.syncService.SyncFinalGrade(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SyncFinalGradeResponse{
		Success: true,
		Data:    grade,
	})
}

// GetFinalGrades retrieves a student's final grades for one course
// @Summary Get final grades
// @Description Returns the stored final grades (ordinary, and extraordinary when present) of one student in one course.
// @Tags final-grades
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.FinalGradesResponse "Final grades"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /final-grades/{studentId}/{courseId} [get]
func (c *FinalGradeController) GetFinalGrades(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	courseID := ctx.Param("courseId")

	grades, err := c.syncService.FinalGrades(ctx, studentID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FinalGradesResponse{
		Success: true,
		Data:    grades,
	})
}

// DeleteExtraordinaryGrade removes a student's extraordinary final grade
// @Summary Delete an extraordinary final grade
// @Description Deletes the extraordinary-period final grade of one student in one course. The ordinary grade is never deleted through this endpoint.
// @Tags final-grades
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param courseId path string true "Course ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "No extraordinary grade stored"
// @Router /final-grades/{studentId}/{courseId}/extraordinary [delete]
func (c *FinalGradeController) DeleteExtraordinaryGrade(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	courseID := ctx.Param("courseId")

	if err := c.syncService.DeleteExtraordinaryGrade(ctx, studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

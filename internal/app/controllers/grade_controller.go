package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mertkaradayi/gradecore/internal/app/models/dto"
	"github.com/mertkaradayi/gradecore/internal/app/services"
	"github.com/mertkaradayi/gradecore/internal/middleware"
)

// GradeController handles grade import and item-grade sync operations
type GradeController struct {
	importService services.ImportService
	syncService   services.SyncService
}

// NewGradeController creates a new GradeController
func NewGradeController(importService services.ImportService, syncService services.SyncService) *GradeController {
	return &GradeController{
		importService: importService,
		syncService:   syncService,
	}
}

// ImportGrades handles a bulk grade import for one group
// @Summary Import grades for a group
// @Description Validates and imports a batch of per-student item grades, recomputing each student's ordinary final grade. Returns a partial-success report.
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param request body dto.ImportGradesRequest true "Import rows"
// @Success 200 {object} dto.ImportGradesResponse "Partial-success report"
// @Failure 400 {object} dto.ErrorResponse "Empty batch"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 502 {object} dto.ErrorResponse "Collaborator service unavailable"
// @Router /grades/import/{groupId} [post]
func (c *GradeController) ImportGrades(ctx *gin.Context) {
	groupID := ctx.Param("groupId")

	var req dto.ImportGradesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorKeyServerError, "invalid request body"))
		return
	}

	result, err := c.importService.ImportGrades(ctx, groupID, req.Rows)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// ImportGradesCSV handles a bulk grade import from an uploaded CSV file
// @Summary Import grades for a group from a CSV file
// @Description Parses an uploaded CSV (header row, then email, extraordinary and repeated item/type/value cells) and runs the same import flow as the JSON endpoint.
// @Tags grades
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param file formData file true "CSV file"
// @Success 200 {object} dto.ImportGradesResponse "Partial-success report"
// @Failure 400 {object} dto.ErrorResponse "Missing file or empty batch"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 502 {object} dto.ErrorResponse "Collaborator service unavailable"
// @Router /grades/import/{groupId}/csv [post]
func (c *GradeController) ImportGradesCSV(ctx *gin.Context) {
	groupID := ctx.Param("groupId")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorKeyEmptyCSV, "missing CSV file"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorKeyEmptyCSV, "unreadable CSV file"))
		return
	}
	defer file.Close()

	rows, err := services.ParseCSVRows(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorKeyEmptyCSV, err.Error()))
		return
	}

	result, err := c.importService.ImportGrades(ctx, groupID, rows)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// SyncGrades handles a direct bulk item-grade upsert
// @Summary Sync item grades
// @Description Upserts item grades by natural key (student, item). Entries without a value leave the stored value unchanged; an explicit null clears it.
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SyncGradesRequest true "Item grades"
// @Success 200 {object} dto.SyncGradesResponse "Stored grades"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade value"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/sync [post]
func (c *GradeController) SyncGrades(ctx *gin.Context) {
	var req dto.SyncGradesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorKeyInvalidGradeValue, err.Error()))
		return
	}

	grades, err := c.syncService.SyncGrades(ctx, req.Grades)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SyncGradesResponse{
		Success: true,
		Grades:  grades,
	})
}

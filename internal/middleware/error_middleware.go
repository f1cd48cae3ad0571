package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mertkaradayi/gradecore/internal/app/models/dto"
	"github.com/mertkaradayi/gradecore/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto the stable errorKey
// vocabulary. Status codes are transport detail; the key is the contract.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEmptyBatch):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorKeyEmptyCSV, "import batch contains no rows"))

	case errors.Is(err, apperrors.ErrGroupNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorKeyGroupNotFound, "group not found"))

	case errors.Is(err, apperrors.ErrCollaboratorUnavailable):
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(dto.ErrorKeyCollaboratorUnavailable, err.Error()))

	case errors.Is(err, apperrors.ErrFinalGradeNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorKeyNotFound, err.Error()))

	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorKeyInvalidGradeValue, err.Error()))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorKeyServerError, "internal server error"))
	}
}

package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertkaradayi/gradecore/internal/app/models/dto"
	"github.com/mertkaradayi/gradecore/internal/app/services"
	"github.com/mertkaradayi/gradecore/internal/pkg/apperrors"
	"github.com/mertkaradayi/gradecore/internal/storage/inmem"
)

type stubImportService struct {
	lastGroupID string
	lastRows    []dto.ImportRow
	resp        *dto.ImportGradesResponse
	err         error
}

func (s *stubImportService) ImportGrades(_ context.Context, groupID string, rows []dto.ImportRow) (*dto.ImportGradesResponse, error) {
	s.lastGroupID = groupID
	s.lastRows = rows
	if s.err != nil {
		return nil, s.err
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrEmptyBatch
	}
	return s.resp, nil
}

func gradeTestRouter(importSvc services.ImportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := inmem.NewStore()
	syncSvc := services.NewSyncService(store, store, zerolog.Nop())
	ctrl := NewGradeController(importSvc, syncSvc)

	router := gin.New()
	router.POST("/grades/import/:groupId", ctrl.ImportGrades)
	router.POST("/grades/import/:groupId/csv", ctrl.ImportGradesCSV)
	router.POST("/grades/sync", ctrl.SyncGrades)
	return router
}

func TestImportGradesEndpoint(t *testing.T) {
	stub := &stubImportService{resp: &dto.ImportGradesResponse{
		Success: true,
		Added:   []string{"alice@uni.edu"},
		Errors:  []dto.RowError{},
	}}
	router := gradeTestRouter(stub)

	body := `{"rows":[{"email":"alice@uni.edu","grades":[{"item":"Midterm","type":"Exam","value":"8"}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/grades/import/g1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "g1", stub.lastGroupID)
	require.Len(t, stub.lastRows, 1)
	assert.Equal(t, "alice@uni.edu", stub.lastRows[0].Email)

	var resp dto.ImportGradesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"alice@uni.edu"}, resp.Added)
}

func TestImportGradesEndpointEmptyBatch(t *testing.T) {
	router := gradeTestRouter(&stubImportService{})

	req := httptest.NewRequest(http.MethodPost, "/grades/import/g1", strings.NewReader(`{"rows":[]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorKeyEmptyCSV, resp.ErrorKey)
}

func TestImportGradesEndpointGroupNotFound(t *testing.T) {
	router := gradeTestRouter(&stubImportService{err: apperrors.ErrGroupNotFound})

	body := `{"rows":[{"email":"alice@uni.edu"}]}`
	req := httptest.NewRequest(http.MethodPost, "/grades/import/missing", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorKeyGroupNotFound, resp.ErrorKey)
}

func TestImportGradesCSVEndpoint(t *testing.T) {
	stub := &stubImportService{resp: &dto.ImportGradesResponse{
		Success: true,
		Added:   []string{"alice@uni.edu"},
		Errors:  []dto.RowError{},
	}}
	router := gradeTestRouter(stub)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "grades.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("email,extraordinary,item,type,value\nalice@uni.edu,,Midterm,Exam,8\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/grades/import/g1/csv", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, stub.lastRows, 1)
	assert.Equal(t, "alice@uni.edu", stub.lastRows[0].Email)
	require.Len(t, stub.lastRows[0].Grades, 1)
	assert.Equal(t, "Midterm", stub.lastRows[0].Grades[0].Item)
}

func TestImportGradesCSVEndpointMissingFile(t *testing.T) {
	router := gradeTestRouter(&stubImportService{})

	req := httptest.NewRequest(http.MethodPost, "/grades/import/g1/csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorKeyEmptyCSV, resp.ErrorKey)
}

func TestSyncGradesEndpoint(t *testing.T) {
	router := gradeTestRouter(&stubImportService{})

	body := `{"grades":[{"studentId":"a1","itemId":"i1","courseId":"c1","value":7}]}`
	req := httptest.NewRequest(http.MethodPost, "/grades/sync", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SyncGradesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Grades, 1)
	require.NotNil(t, resp.Grades[0].Value)
	assert.Equal(t, 7.0, *resp.Grades[0].Value)
}

func TestSyncGradesEndpointRejectsOutOfRange(t *testing.T) {
	router := gradeTestRouter(&stubImportService{})

	body := `{"grades":[{"studentId":"a1","itemId":"i1","courseId":"c1","value":11}]}`
	req := httptest.NewRequest(http.MethodPost, "/grades/sync", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorKeyInvalidGradeValue, resp.ErrorKey)
}

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/findash/backend/internal/domain/shared"
	"github.com/findash/backend/internal/infrastructure/logger"
	"github.com/findash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestBaseHandlerSuccess(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.Success(c, []string{"a", "b"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["a","b"]`, w.Body.String())
}

func TestBaseHandlerCreated(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.Created(c, gin.H{"id": "1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
}

func TestBaseHandlerNoContent(t *testing.T) {
	h := &BaseHandler{}
	router := gin.New()
	router.DELETE("/x", func(c *gin.Context) { h.NoContent(c) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/x", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestBaseHandlerHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantFields []dto.FieldError
	}{
		{
			name:       "not found",
			err:        shared.NewNotFoundError("Company"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Company not found",
		},
		{
			name:       "invalid input",
			err:        shared.NewDomainError("INVALID_INPUT", "Search query is required"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Search query is required",
		},
		{
			name:       "wrapped domain error",
			err:        fmt.Errorf("lookup: %w", shared.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Resource not found",
		},
		{
			name:       "unknown domain code",
			err:        shared.NewDomainError("SOMETHING_ELSE", "odd"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "odd",
		},
		{
			name:       "validation error",
			err:        shared.NewValidationError("grossProfit", "Field is not editable"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    dto.MsgValidationFailed,
			wantFields: []dto.FieldError{{Field: "grossProfit", Message: "Field is not editable"}},
		},
		{
			name:       "unexpected error",
			err:        errors.New("store exploded"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    dto.MsgInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, tt.wantFields, body.Errors)
		})
	}
}

func TestBaseHandlerHandleError_LogsUnexpected(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := &BaseHandler{}

	router := gin.New()
	router.Use(logger.GinMiddleware(zap.New(core)))
	router.GET("/boom", func(c *gin.Context) {
		h.HandleError(c, errors.New("secret detail"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret detail")
	require.Equal(t, 1, logs.FilterMessage("Request failed").Len())
	entry := logs.FilterMessage("Request failed").All()[0]
	assert.Equal(t, "/boom", entry.ContextMap()["route"])
	assert.Equal(t, "secret detail", entry.ContextMap()["error"])
}

func TestBaseHandlerHandleError_Nil(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.HandleError(c, nil)

	assert.False(t, c.Writer.Written())
}

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/findash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type amountRequest struct {
	Topic        *string `json:"topic" binding:"omitnil,min=1,max=200"`
	Period       *string `json:"period" binding:"omitnil,period"`
	TotalRevenue *string `json:"totalRevenue" binding:"omitnil,decimal"`
	Name         string  `json:"name" binding:"required,max=5"`
}

type periodQuery struct {
	StartPeriod string `form:"startPeriod" binding:"omitempty,period"`
}

func newValidationRouter() *gin.Engine {
	SetupValidator()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req amountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, req)
	})
	router.GET("/test", func(c *gin.Context) {
		var q periodQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})
	return router
}

func postJSON(router *gin.Engine, body string) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp dto.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestSetupValidator(t *testing.T) {
	SetupValidator()
	SetupValidator()

	_, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.True(t, binding.EnableDecoderDisallowUnknownFields)
}

func TestValidation_Body(t *testing.T) {
	router := newValidationRouter()

	tests := []struct {
		name    string
		body    string
		status  int
		message string
		fields  map[string]string
	}{
		{
			name:   "valid",
			body:   `{"name":"abc","totalRevenue":"5600000.00","period":"2024-06"}`,
			status: http.StatusOK,
		},
		{
			name:    "non numeric amount",
			body:    `{"name":"abc","totalRevenue":"abc"}`,
			status:  http.StatusBadRequest,
			message: "Validation failed",
			fields:  map[string]string{"totalRevenue": "Must be a decimal number"},
		},
		{
			name:    "empty amount",
			body:    `{"name":"abc","totalRevenue":""}`,
			status:  http.StatusBadRequest,
			message: "Validation failed",
			fields:  map[string]string{"totalRevenue": "Must be a decimal number"},
		},
		{
			name:    "padded amount",
			body:    `{"name":"abc","totalRevenue":" 12 "}`,
			status:  http.StatusBadRequest,
			message: "Validation failed",
			fields:  map[string]string{"totalRevenue": "Must be a decimal number"},
		},
		{
			name:    "unpadded period",
			body:    `{"name":"abc","period":"2024-6"}`,
			status:  http.StatusBadRequest,
			message: "Validation failed",
			fields:  map[string]string{"period": "Must be a period in YYYY-MM format"},
		},
		{
			name:    "missing required and too long",
			body:    `{"topic":""}`,
			status:  http.StatusBadRequest,
			message: "Validation failed",
			fields: map[string]string{
				"topic": "Must be at least 1 characters",
				"name":  "This field is required",
			},
		},
		{
			name:    "unknown field",
			body:    `{"name":"abc","grossMargin":"1"}`,
			status:  http.StatusBadRequest,
			message: "Validation failed",
			fields:  map[string]string{"grossMargin": "Unknown field"},
		},
		{
			name:    "wrong type",
			body:    `{"name":"abc","totalRevenue":5600000}`,
			status:  http.StatusBadRequest,
			message: "Validation failed",
			fields:  map[string]string{"totalRevenue": "Must be a string"},
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			status:  http.StatusBadRequest,
			message: "Invalid JSON body",
		},
		{
			name:    "empty body",
			body:    ``,
			status:  http.StatusBadRequest,
			message: "Request body is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := postJSON(router, tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status == http.StatusOK {
				return
			}
			assert.Equal(t, tt.message, resp.Message)

			got := map[string]string{}
			for _, f := range resp.Errors {
				got[f.Field] = f.Message
			}
			if tt.fields == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.fields, got)
			}
		})
	}
}

func TestValidation_Query(t *testing.T) {
	router := newValidationRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test?startPeriod=2024-13", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "startPeriod", resp.Errors[0].Field)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test?startPeriod=2024-05", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/findash/backend/internal/domain/shared/valueobject"
	"github.com/findash/backend/internal/domain/statement"
	"github.com/findash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const unknownFieldPrefix = "json: unknown field "

var setupOnce sync.Once

// SetupValidator configures gin binding: JSON tag names in errors, the
// custom "decimal" and "period" tags, and rejection of unknown JSON fields.
// It is safe to call more than once.
func SetupValidator() {
	setupOnce.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true

		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
		_ = v.RegisterValidation("decimal", validateDecimal)
		_ = v.RegisterValidation("period", validatePeriod)
	})
}

func validateDecimal(fl validator.FieldLevel) bool {
	return valueobject.IsAmount(fl.Field().String())
}

func validatePeriod(fl validator.FieldLevel) bool {
	return statement.IsValidPeriod(fl.Field().String())
}

// BindingErrors translates a gin binding error into a client message and
// per-field details
func BindingErrors(err error) (string, []dto.FieldError) {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
		syntaxErr      *json.SyntaxError
	)
	switch {
	case errors.As(err, &validationErrs):
		fields := make([]dto.FieldError, 0, len(validationErrs))
		for _, e := range validationErrs {
			fields = append(fields, dto.FieldError{
				Field:   e.Field(),
				Message: getValidationMessage(e),
			})
		}
		return dto.MsgValidationFailed, fields
	case errors.As(err, &typeErr):
		return dto.MsgValidationFailed, []dto.FieldError{{
			Field:   typeErr.Field,
			Message: typeMessage(typeErr.Type),
		}}
	case strings.HasPrefix(err.Error(), unknownFieldPrefix):
		field, uerr := strconv.Unquote(strings.TrimPrefix(err.Error(), unknownFieldPrefix))
		if uerr != nil {
			field = strings.TrimPrefix(err.Error(), unknownFieldPrefix)
		}
		return dto.MsgValidationFailed, []dto.FieldError{{
			Field:   field,
			Message: "Unknown field",
		}}
	case errors.Is(err, io.EOF):
		return "Request body is required", nil
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return dto.MsgInvalidJSON, nil
	default:
		return dto.MsgValidationFailed, nil
	}
}

// HandleValidationError writes a 400 response for a binding error, or 413
// when the body hit the BodyLimit cap
func HandleValidationError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(dto.MsgBodyTooLarge))
		return
	}
	message, fields := BindingErrors(err)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: message, Errors: fields})
}

func typeMessage(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "Must be a string"
	case reflect.Bool:
		return "Must be a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "Must be a number"
	case reflect.Map, reflect.Struct:
		return "Must be an object"
	case reflect.Slice, reflect.Array:
		return "Must be an array"
	default:
		return "Invalid type"
	}
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "decimal":
		return "Must be a decimal number"
	case "period":
		return "Must be a period in YYYY-MM format"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	case "url":
		return "Invalid URL format"
	default:
		return "Invalid value"
	}
}

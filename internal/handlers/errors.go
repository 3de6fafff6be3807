package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/SscSPs/macro_dashboard_app/internal/apperrors"
	"github.com/SscSPs/macro_dashboard_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// respondWithError maps a service error to its status code and writes {"message": ...}.
// serverMsg is sent instead of the error text for 5xx responses.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, serverMsg string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.Error(serverMsg, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Message: serverMsg})
		return
	}

	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, dto.ErrorResponse{Message: message})
}

// respondWithBindError writes a 400 for a request body that failed decoding or
// validation into obj. Only the first violation is reported. Bodies must be bound
// with ShouldBindBodyWith so decimal fields can be named.
func respondWithBindError(c *gin.Context, logger *slog.Logger, obj any, err error) {
	logger.Warn("Failed to bind request body", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: bindErrorMessage(c, obj, err)})
}

func bindErrorMessage(c *gin.Context, obj any, err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return fieldErrorMessage(validationErrs[0])
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field + " must be a " + typeErr.Type.String()
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "Invalid request format: malformed JSON"
	}

	if errors.Is(err, io.EOF) {
		return "Request body is required"
	}

	if field, ok := invalidDecimalField(c, obj); ok {
		return field + " must be a decimal number"
	}
	return "Invalid request format"
}

// invalidDecimalField returns the JSON name of the first decimal field of obj whose
// value in the cached request body does not parse.
func invalidDecimalField(c *gin.Context, obj any) (string, bool) {
	cached, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		return "", false
	}
	body, ok := cached.([]byte)
	if !ok {
		return "", false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", false
	}

	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return "", false
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type != decimalType && f.Type != reflect.PointerTo(decimalType) {
			continue
		}
		name := jsonFieldName(f)
		raw, present := fields[name]
		if !present {
			continue
		}
		var d decimal.Decimal
		if err := d.UnmarshalJSON(raw); err != nil {
			return name, true
		}
	}
	return "", false
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case isoDateTag:
		return field + " must be a date in YYYY-MM-DD format"
	default:
		return field + " is invalid (" + fe.Tag() + ")"
	}
}

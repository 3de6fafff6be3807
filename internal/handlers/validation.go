package handlers

import (
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const isoDateTag = "isodate"

var registerValidatorsOnce sync.Once

// registerValidators installs the custom binding tags and makes validation errors
// report JSON field names. It must run before the first request is bound.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Gin validator engine is not go-playground/validator; custom tags disabled")
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)

		if err := v.RegisterValidation(isoDateTag, validateISODate); err != nil {
			slog.Error("Failed to register isodate validator", slog.String("error", err.Error()))
		}
	})
}

// jsonFieldName is the name a field is decoded from, as reported to clients.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

// validateISODate accepts real calendar dates in YYYY-MM-DD form.
func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.ChartDateLayout, fl.Field().String())
	return err == nil
}

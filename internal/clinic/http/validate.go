package http

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their JSON names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// validateRequest checks req's struct tags. On failure it writes a 400 and
// returns false.
func validateRequest(w http.ResponseWriter, req any) bool {
	err := getValidator().Struct(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return false
	}

	details := make(map[string]string, len(verrs))
	for _, e := range verrs {
		details[e.Field()] = describe(e)
	}
	httpx.WriteJSON(w, http.StatusBadRequest, clinicsdk.ValidationErrorResponse{
		Message: "One or more validation errors occurred.",
		Details: details,
	})
	return false
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + e.Param() + " characters"
	default:
		return "is invalid"
	}
}

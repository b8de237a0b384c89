package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// writeValidationError reports a failed validate.Struct call.
func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		switch fe.Tag() {
		case "required":
			fields[name] = fmt.Sprintf("%s is required", name)
		case "max":
			fields[name] = fmt.Sprintf("%s must be at most %s", name, fe.Param())
		case "min", "gte":
			fields[name] = fmt.Sprintf("%s must be at least %s", name, fe.Param())
		case "lte":
			fields[name] = fmt.Sprintf("%s must be at most %s", name, fe.Param())
		default:
			fields[name] = fmt.Sprintf("%s failed on '%s'", name, fe.Tag())
		}
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   "validation_failed",
		Message: "Validation failed",
		Fields:  fields,
	})
}

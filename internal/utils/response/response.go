package response

import (
	"encoding/json"
	"net/http"

	"github.com/gamerfleet/merch-backend/internal/errors"
)

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type errorBody struct {
	Error *ErrorResponse `json:"error"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// Message writes the confirmation shape used by mutating endpoints.
func Message(w http.ResponseWriter, statusCode int, message string) {
	WriteJson(w, statusCode, map[string]string{"message": message})
}

// Error maps an error to its HTTP status and a JSON error body. Anything
// that is not an AppError becomes a generic 500 so storage details never
// reach the client.
func Error(w http.ResponseWriter, err error) {

	var statusCode int
	var errorResponse *ErrorResponse

	if appErr, ok := errors.IsAppError(err); ok {
		statusCode = appErr.StatusCode
		errorResponse = &ErrorResponse{
			Code:    appErr.Code,
			Message: appErr.Message,
		}

		if appErr.Detail != "" {
			errorResponse.Details = []string{appErr.Detail}
		}

	} else {

		statusCode = http.StatusInternalServerError
		errorResponse = &ErrorResponse{
			Code:    errors.ErrCodeInternal,
			Message: "An unexpected error occurred",
		}

	}

	WriteJson(w, statusCode, errorBody{Error: errorResponse})
}

package helpers

import (
	"encoding/json"
	"net/http"
)

// MsgInternalError is the detail sent with every 500 response.
const MsgInternalError = "Internal Server Error"

// FieldError is one entry of a 422 validation response.
// swagger:model FieldError
type FieldError struct {
	Type  string   `json:"type"`
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Input any      `json:"input"`
}

// DetailResponse is the body of plain client and server errors.
// swagger:model DetailResponse
type DetailResponse struct {
	Detail string `json:"detail"`
}

// ValidationResponse is the body of a 422 response.
// swagger:model ValidationResponse
type ValidationResponse struct {
	Detail []FieldError `json:"detail"`
}

// AuthErrorResponse is the body of a failed login or register call.
// swagger:model AuthErrorResponse
type AuthErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode and encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteDetail writes {"detail": message} with the given status.
func WriteDetail(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, DetailResponse{Detail: message})
}

// WriteValidationError writes a 422 response listing every failed field.
func WriteValidationError(w http.ResponseWriter, errs ...FieldError) {
	WriteJSON(w, http.StatusUnprocessableEntity, ValidationResponse{Detail: errs})
}

// WriteAuthError writes {"error": message}, the shape reqres uses for auth failures.
func WriteAuthError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, AuthErrorResponse{Error: message})
}

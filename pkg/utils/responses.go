package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every failed request. Detail is deliberately
// low-information; Errors carries per-field validation messages.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Errors any    `json:"errors,omitempty"`
}

// ResponseJSON writes payload as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// ------------- Error responses -------------

// ResponseError writes an ErrorResponse with a custom status code
func ResponseError(w http.ResponseWriter, code int, detail string, errors any) {
	ResponseJSON(w, code, ErrorResponse{Detail: detail, Errors: errors})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, detail string) {
	ResponseError(w, http.StatusBadRequest, detail, nil)
}

// returns 401 Unauthorized with a Bearer challenge
func ResponseUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	ResponseError(w, http.StatusUnauthorized, detail, nil)
}

// returns 422 Unprocessable Entity
func ResponseUnprocessable(w http.ResponseWriter, detail string, errors any) {
	ResponseError(w, http.StatusUnprocessableEntity, detail, errors)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, detail string) {
	ResponseError(w, http.StatusInternalServerError, detail, nil)
}

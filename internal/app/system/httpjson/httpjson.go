// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the request/response helpers shared by every
// feature handler: typed body decoding, JSON rendering, and the error
// vocabulary of the API.
//
// Error bodies are always {"error": "..."} with a status from the fixed
// taxonomy: 400 BadRequest (malformed or state-conflicting request),
// 401 Unauthorized (handled by the auth gate), 403 Forbidden (visibility or
// role violation), 404 NotFound, 500 ServerError. Unexpected failures are
// logged with detail at the handler boundary and surfaced as a generic 500.
package httpjson

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20 // 1 MiB cap on JSON request bodies

// Decode reads a JSON request body into dst. It returns false after writing
// a 400 response, so handlers can bail with a bare return.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		BadRequest(w, "Invalid request body")
		return false
	}
	return true
}

// Respond writes v as a JSON response with the given status.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes a 200 {"message": msg} body.
func Message(w http.ResponseWriter, msg string) {
	Respond(w, http.StatusOK, map[string]string{"message": msg})
}

// Error writes an {"error": msg} body with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	Respond(w, status, map[string]string{"error": msg})
}

// BadRequest writes a 400 error.
func BadRequest(w http.ResponseWriter, msg string) {
	Error(w, http.StatusBadRequest, msg)
}

// Forbidden writes a 403 error.
func Forbidden(w http.ResponseWriter, msg string) {
	Error(w, http.StatusForbidden, msg)
}

// NotFound writes a 404 error.
func NotFound(w http.ResponseWriter, msg string) {
	Error(w, http.StatusNotFound, msg)
}

// ServerError logs the underlying error and writes a generic 500 body.
// The detail stays in the logs; callers never see internals.
func ServerError(w http.ResponseWriter, log *zap.Logger, operation string, err error) {
	if log != nil {
		log.Error(operation, zap.Error(err))
	}
	Error(w, http.StatusInternalServerError, "Server error")
}

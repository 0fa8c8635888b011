// Package response writes the shop's JSON response bodies. Success
// payloads are passed through as-is; failures are always serialised as
// {"error": message} with the status picked from the apperr taxonomy.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/sweetshop/pkg/apperr"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// OK writes v with 200.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Created writes v with 201.
func Created(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusCreated, v)
}

// Error writes {"error": message} with an explicit status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Err classifies a service error and writes the matching status and
// client-safe message.
func Err(w http.ResponseWriter, err error) {
	Error(w, apperr.HTTPStatus(err), apperr.Message(err))
}

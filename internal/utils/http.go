// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const contentTypeJSON = "application/json"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"error"`
}

// WriteJSON encodes data and sends it with statusCode. The body is encoded
// before any header goes out, so an unencodable value still turns into a
// plain 500.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encode json response: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteError sends message as an [ErrorResponse].
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, ErrorResponse{Message: message}, statusCode)
}

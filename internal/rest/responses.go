// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

// Package rest holds the JSON plumbing shared by the API packages.
package rest

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, errorBody{Error: message})
}

// Decode unmarshals the request body, rejecting unknown fields so typos
// in payloads fail loudly instead of silently dropping data.
func Decode(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

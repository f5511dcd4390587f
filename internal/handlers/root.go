package handlers

import "net/http"

// RootResponse is the body of the service root.
// swagger:model RootResponse
type RootResponse struct {
	// default: Welcome to SoulSync API
	Message string `json:"message"`
}

// NewRootHandler returns the welcome handler served at /.
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RootResponse{Message: "Welcome to SoulSync API"})
	}
}

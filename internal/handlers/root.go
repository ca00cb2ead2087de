package handlers

import "net/http"

// NewRootHandler returns the liveness probe.
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "root"})
	}
}

package handlers

import (
	"net/http"

	"adminpanel/utils/response"
)

// Health is the public liveness probe.
func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Server is running",
	})
}

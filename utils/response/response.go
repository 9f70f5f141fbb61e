package response

import (
	"encoding/json"
	"net/http"
)

// ApiResponse is the envelope shared by every JSON endpoint.
type ApiResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination interface{} `json:"pagination,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func Success(w http.ResponseWriter, status int, message string, data interface{}) {
	JSON(w, status, ApiResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List writes a successful paginated listing.
func List(w http.ResponseWriter, data interface{}, pagination interface{}) {
	JSON(w, http.StatusOK, ApiResponse{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ApiResponse{
		Success: false,
		Message: message,
	})
}

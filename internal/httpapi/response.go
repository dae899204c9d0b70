package httpapi

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope returned by every endpoint
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// User-facing messages
const (
	msgFetchError     = "Error fetching contacts"
	msgInvalidBody    = "Invalid request body"
	msgRequired       = "Name, email, and phone are required"
	msgInvalidEmail   = "Invalid email format"
	msgPhoneTooShort  = "Phone must be at least 10 digits"
	msgCreated        = "Contact added successfully"
	msgSaveError      = "Error saving contact"
	msgNotFound       = "Contact not found"
	msgRouteNotFound  = "Route not found"
	msgDeleted        = "Contact deleted successfully"
	msgDeleteError    = "Error deleting contact"
	msgHealthError    = "Error checking health"
	msgInternalError  = "Internal server error"
	maxRequestBodyLen = 1 << 20
)

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, Response{Success: true, Data: data, Message: message})
}

func writeFailure(w http.ResponseWriter, status int, message string, err error) {
	resp := Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, status, resp)
}

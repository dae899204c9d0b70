package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/service"
	"github.com/KrishTanna28/CollEdge-Internship-Assignment/pkg/contact"
)

// Handler serves the contacts REST API
type Handler struct {
	svc    *service.Service
	logger *zap.Logger
}

// NewHandler creates a Handler. A nil logger disables logging.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes registers the API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/contacts", h.handleList)
	mux.HandleFunc("POST /api/contacts", h.handleCreate)
	mux.HandleFunc("DELETE /api/contacts/{id}", h.handleDelete)
	mux.HandleFunc("GET /api/health", h.handleHealth)
	mux.HandleFunc("/api/", h.handleUnknown)
}

// Routes returns the API with logging, recovery and CORS applied.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return Chain(mux, Logging(h.logger), Recover(h.logger), CORS)
}

// handleUnknown answers unmatched API paths, such as a delete without an
// id, with the JSON envelope instead of the mux's plain-text 404.
func (h *Handler) handleUnknown(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, http.StatusNotFound, msgRouteNotFound, nil)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.svc.List(r.Context())
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, msgFetchError, err)
		return
	}
	writeData(w, http.StatusOK, contacts, "")
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in contact.Input
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyLen)).Decode(&in); err != nil {
		writeFailure(w, http.StatusBadRequest, msgInvalidBody, nil)
		return
	}

	created, err := h.svc.Create(r.Context(), in)
	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		writeFailure(w, http.StatusBadRequest, validationMessage(verr), nil)
		return
	case err != nil:
		writeFailure(w, http.StatusInternalServerError, msgSaveError, err)
		return
	}

	writeData(w, http.StatusCreated, created, msgCreated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Delete(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeFailure(w, http.StatusNotFound, msgNotFound, nil)
		return
	case err != nil:
		writeFailure(w, http.StatusInternalServerError, msgDeleteError, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: msgDeleted})
}

// HealthStatus is the payload of GET /api/health
type HealthStatus struct {
	Contacts           int    `json:"contacts"`
	Driver             string `json:"driver"`
	BuildMode          string `json:"buildMode"`
	SchemaVersion      string `json:"schemaVersion"`
	DatabaseAccessible bool   `json:"databaseAccessible"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Status(r.Context())
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, msgHealthError, err)
		return
	}

	writeData(w, http.StatusOK, HealthStatus{
		Contacts:           status.ContactsCount,
		Driver:             status.Driver,
		BuildMode:          status.BuildMode,
		SchemaVersion:      status.SchemaVersion,
		DatabaseAccessible: status.DatabaseAccessible,
	}, "")
}

// validationMessage maps a field failure to the request-level message.
// Any missing field collapses to the single "required" message.
func validationMessage(verr *contact.ValidationError) string {
	switch {
	case errors.Is(verr, contact.ErrRequired):
		return msgRequired
	case errors.Is(verr, contact.ErrInvalidEmail):
		return msgInvalidEmail
	case errors.Is(verr, contact.ErrPhoneTooShort):
		return msgPhoneTooShort
	default:
		return verr.Reason
	}
}

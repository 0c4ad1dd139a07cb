// Package v1 exposes the army service over a JSON HTTP API
package v1

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/waaagh-api/internal/errors"
	"github.com/KirkDiggler/waaagh-api/internal/services/army"
	"github.com/KirkDiggler/waaagh-api/internal/version"
)

// PathPrefix is where the API is mounted
const PathPrefix = "/api/v1"

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	ArmyService army.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.ArmyService == nil {
		return errors.InvalidArgument("army service is required")
	}
	return nil
}

// Handler serves the army HTTP API
type Handler struct {
	armyService army.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		armyService: cfg.ArmyService,
	}, nil
}

// Router returns a router with every API route registered
func (h *Handler) Router() *mux.Router {
	notFound := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, errors.NotFoundf("no route for %s %s", req.Method, req.URL.Path))
	})
	notAllowed := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
			Code:    "METHOD_NOT_ALLOWED",
			Message: req.Method + " is not allowed on " + req.URL.Path,
		})
	})

	r := mux.NewRouter()
	r.Use(logRequests)
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notAllowed

	r.HandleFunc("/version", h.GetVersion).Methods(http.MethodGet)

	api := r.PathPrefix(PathPrefix).Subrouter()
	api.NotFoundHandler = notFound
	api.MethodNotAllowedHandler = notAllowed
	h.RegisterRoutes(api)

	return r
}

// RegisterRoutes adds the API routes to r
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/catalogue/units", h.ListDatasheets).Methods(http.MethodGet)
	r.HandleFunc("/catalogue/units/{datasheetId}", h.GetDatasheet).Methods(http.MethodGet)
	r.HandleFunc("/catalogue/detachments", h.ListDetachments).Methods(http.MethodGet)
	r.HandleFunc("/catalogue/detachments/{detachmentId}", h.GetDetachment).Methods(http.MethodGet)

	r.HandleFunc("/armies", h.CreateArmy).Methods(http.MethodPost)
	r.HandleFunc("/armies", h.ListArmies).Methods(http.MethodGet)
	r.HandleFunc("/armies/{armyId}", h.GetArmy).Methods(http.MethodGet)
	r.HandleFunc("/armies/{armyId}", h.UpdateArmy).Methods(http.MethodPatch)
	r.HandleFunc("/armies/{armyId}", h.DeleteArmy).Methods(http.MethodDelete)
	r.HandleFunc("/armies/{armyId}/detachment", h.SetDetachment).Methods(http.MethodPut)
	r.HandleFunc("/armies/{armyId}/units", h.AddUnit).Methods(http.MethodPost)
	r.HandleFunc("/armies/{armyId}/units/{instanceId}", h.UpdateUnit).Methods(http.MethodPatch)
	r.HandleFunc("/armies/{armyId}/units/{instanceId}", h.RemoveUnit).Methods(http.MethodDelete)
	r.HandleFunc("/armies/{armyId}/units/{instanceId}/wargear/{optionId}", h.SelectWargear).Methods(http.MethodPut)
	r.HandleFunc("/armies/{armyId}/units/{instanceId}/enhancement", h.SetEnhancement).Methods(http.MethodPut)
	r.HandleFunc("/armies/{armyId}/validation", h.ValidateArmy).Methods(http.MethodGet)
	r.HandleFunc("/armies/{armyId}/export", h.ExportArmy).Methods(http.MethodGet)
}

// GetVersion reports the build version
func (h *Handler) GetVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, versionResponse{
		Version: version.Version().String(),
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, req)

		slog.InfoContext(req.Context(), "HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}

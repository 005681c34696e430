package health

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	AppName    string
	InstanceID string
	Log        *zap.Logger
}

// NewHandler constructs a health Handler. Each Handler gets a fresh
// instance identifier, so callers can tell replicas apart.
func NewHandler(appName string, logger *zap.Logger) *Handler {
	return &Handler{
		AppName:    appName,
		InstanceID: uuid.New().String()[:8],
		Log:        logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	App      string `json:"app"`
	Instance string `json:"instance"`
}

// Serve handles GET /health.
//
// Always 200 and
//
//	{ "status":"ok", "app":"configmaplab", "instance":"1a2b3c4d" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		App:      h.AppName,
		Instance: h.InstanceID,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Warn("health-check: write response failed", zap.Error(err))
	}
}

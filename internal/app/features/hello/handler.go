// internal/app/features/hello/handler.go
package hello

import (
	"fmt"
	"io"
	"net/http"

	"github.com/dalemusser/configmaplab/internal/app/system/clientip"
	"github.com/dalemusser/configmaplab/internal/app/system/envprovider"
	"go.uber.org/zap"
)

const (
	// DefaultName is used when the name query parameter is absent or empty.
	DefaultName = "Michel"

	// DBHostKey is the environment variable read on every request.
	DBHostKey = "DB_HOST"

	// DefaultDBHost is used when DB_HOST is not set.
	DefaultDBHost = "db.local"
)

// Handler serves the greeting endpoint.
//
// AppMessage is resolved once at startup and never changes afterwards.
// Env is consulted on every request, so changes to DB_HOST are visible
// without a restart.
type Handler struct {
	AppMessage string
	Env        envprovider.Provider
	Log        *zap.Logger
}

// NewHandler constructs a hello Handler.
// A nil env falls back to the real process environment.
func NewHandler(appMessage string, env envprovider.Provider, logger *zap.Logger) *Handler {
	if env == nil {
		env = envprovider.OS{}
	}
	return &Handler{
		AppMessage: appMessage,
		Env:        env,
		Log:        logger,
	}
}

// Greeting formats the response body for the given inputs.
func Greeting(name, appMessage, dbHost string) string {
	return fmt.Sprintf("Hi %s! app.message='%s' | DB_HOST='%s'\n", name, appMessage, dbHost)
}

// Serve handles GET /hello.
//
//	GET /hello?name=Ada
//	Hi Ada! app.message='Welcome' | DB_HOST='prod-db'
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = DefaultName
	}
	dbHost := envprovider.GetOrDefault(h.Env, DBHostKey, DefaultDBHost)

	h.Log.Debug("hello request",
		zap.String("name", name),
		zap.String("db_host", dbHost),
		zap.String("ip", clientip.FromRequest(r)))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, Greeting(name, h.AppMessage, dbHost)); err != nil {
		h.Log.Warn("hello: write response failed", zap.Error(err))
	}
}

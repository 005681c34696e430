// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/dalemusser/configmaplab/internal/app/features/health"
	hellofeature "github.com/dalemusser/configmaplab/internal/app/features/hello"
	"github.com/dalemusser/configmaplab/internal/app/system/envprovider"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend wiring and Startup have
// completed. The greeting handler receives the startup-resolved app message
// and reads DB_HOST from the process environment on each request.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(AppName, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	helloHandler := hellofeature.NewHandler(appCfg.AppMessage, envprovider.OS{}, logger)
	r.Mount("/hello", hellofeature.Routes(helloHandler))

	return r, nil
}

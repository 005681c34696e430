// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization before the HTTP handler
// is built. It records the resolved configuration so operators can see
// which source won.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("configmaplab starting",
		zap.String("env", coreCfg.Env),
		zap.String("app_message", appCfg.AppMessage))
	return nil
}

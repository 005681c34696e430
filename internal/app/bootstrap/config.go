// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/configmaplab/internal/app/system/envprovider"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

const (
	// AppName identifies the service in logs and the health endpoint.
	AppName = "configmaplab"

	// envPrefix scopes app keys in the environment (CONFIGMAPLAB_APP_MESSAGE).
	envPrefix = "CONFIGMAPLAB"

	// DefaultAppMessage is used when no config source sets app_message.
	DefaultAppMessage = "Hello from DEFAULT"

	// relaxedAppMessageEnv is the unprefixed form a ConfigMap usually
	// projects app.message as.
	relaxedAppMessageEnv = "APP_MESSAGE"

	maxAppMessageLen = 4096
)

// appConfigKeys defines the configuration keys for configmaplab.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: app_message
//   - Environment variables: CONFIGMAPLAB_APP_MESSAGE
//   - Command-line flags: --app_message
var appConfigKeys = []config.AppKey{
	{Name: "app_message", Default: DefaultAppMessage, Desc: "Message echoed by /hello as app.message"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges sources with precedence
// flags > env > files > defaults. On top of that, the unprefixed
// APP_MESSAGE variable is honoured when WAFFLE produced only the default.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, envPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		AppMessage: resolveAppMessage(appValues.String("app_message"), envprovider.OS{}, logger),
	}

	return coreCfg, appCfg, nil
}

// resolveAppMessage applies the APP_MESSAGE fallback to the value WAFFLE
// loaded. An explicit WAFFLE value always wins.
func resolveAppMessage(loaded string, env envprovider.Provider, logger *zap.Logger) string {
	if loaded != "" && loaded != DefaultAppMessage {
		return loaded
	}
	if v, ok := env.LookupEnv(relaxedAppMessageEnv); ok && v != "" {
		logger.Info("app_message taken from environment",
			zap.String("source", relaxedAppMessageEnv))
		return v
	}
	return DefaultAppMessage
}

// ValidateConfig performs app-specific config validation.
//
// The greeting is a single line, so app_message must not contain line
// breaks, and it is capped in size.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if strings.ContainsAny(appCfg.AppMessage, "\r\n") {
		logger.Error("invalid app_message", zap.String("reason", "contains line break"))
		return fmt.Errorf("app_message must be a single line")
	}
	if n := len(appCfg.AppMessage); n > maxAppMessageLen {
		logger.Error("invalid app_message", zap.Int("length", n))
		return fmt.Errorf("app_message is %d bytes, limit is %d", n, maxAppMessageLen)
	}
	return nil
}

// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration; ports, logging and TLS live
// in WAFFLE's CoreConfig.
//
// AppConfig is resolved once at startup and treated as read-only for the
// lifetime of the process.
type AppConfig struct {
	// AppMessage is echoed by /hello as app.message.
	AppMessage string
}

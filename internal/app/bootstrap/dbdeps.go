// internal/app/bootstrap/dbdeps.go
package bootstrap

// DBDeps holds database/back-end dependencies for the app.
// configmaplab has no backing store; the struct exists to satisfy WAFFLE's
// lifecycle and stays empty.
type DBDeps struct{}

package bootstrap

import (
	"net/http"
	"os"
	"testing"

	"github.com/dalemusser/configmaplab/internal/testutil"
	"github.com/dalemusser/waffle/config"
)

func buildTestHandler(t *testing.T, appMessage string) http.Handler {
	t.Helper()
	h, err := BuildHandler(&config.CoreConfig{}, AppConfig{AppMessage: appMessage}, DBDeps{}, testLogger())
	if err != nil {
		t.Fatalf("BuildHandler failed: %v", err)
	}
	return h
}

func TestBuildHandler_HelloDefaults(t *testing.T) {
	// t.Setenv restores DB_HOST afterwards; Unsetenv makes it absent here.
	t.Setenv("DB_HOST", "")
	os.Unsetenv("DB_HOST")

	h := buildTestHandler(t, DefaultAppMessage)

	rec := testutil.Serve(h, testutil.NewRequest("GET", "/hello"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertBody(t, "Hi Michel! app.message='Hello from DEFAULT' | DB_HOST='db.local'\n")
}

func TestBuildHandler_HelloConfigured(t *testing.T) {
	t.Setenv("DB_HOST", "prod-db")

	h := buildTestHandler(t, "Welcome")

	rec := testutil.Serve(h, testutil.NewRequest("GET", "/hello?name=Ada"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertBody(t, "Hi Ada! app.message='Welcome' | DB_HOST='prod-db'\n")
}

func TestBuildHandler_Health(t *testing.T) {
	h := buildTestHandler(t, DefaultAppMessage)

	rec := testutil.Serve(h, testutil.NewRequest("GET", "/health"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"status":"ok"`)
	rec.AssertContains(t, `"app":"configmaplab"`)
}

func TestBuildHandler_UnknownRoute(t *testing.T) {
	h := buildTestHandler(t, DefaultAppMessage)

	rec := testutil.Serve(h, testutil.NewRequest("GET", "/nope"))

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestBuildHandler_HelloRejectsPost(t *testing.T) {
	h := buildTestHandler(t, DefaultAppMessage)

	rec := testutil.Serve(h, testutil.NewRequest("POST", "/hello"))

	rec.AssertStatus(t, http.StatusMethodNotAllowed)
}

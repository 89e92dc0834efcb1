package openapi_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/studize/pkg/openapi"
)

func TestConfigFinalize(t *testing.T) {
	t.Setenv("TEST_OPENAPI_TITLE", "Roster Insights")

	var cfg openapi.Config
	if err := cfg.Finalize(&openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE", Description: "TEST_OPENAPI_DESC"}); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if cfg.Title != "Roster Insights" {
		t.Errorf("title: got %s, want Roster Insights", cfg.Title)
	}
	if cfg.Description == "" {
		t.Error("description should default")
	}
}

func TestAddOperation(t *testing.T) {
	spec := openapi.NewSpec(&openapi.Config{Title: "Studize API"}, "0.1.0")

	if err := spec.AddOperation("GET", "/students", &openapi.Operation{Summary: "List"}); err != nil {
		t.Fatalf("AddOperation GET: %v", err)
	}
	if err := spec.AddOperation("POST", "/students", &openapi.Operation{Summary: "Create"}); err != nil {
		t.Fatalf("AddOperation POST: %v", err)
	}
	if err := spec.AddOperation("GET", "/students", &openapi.Operation{}); err == nil {
		t.Error("expected duplicate error")
	}
	if err := spec.AddOperation("DELETE", "/students", &openapi.Operation{}); err == nil {
		t.Error("expected unsupported method error")
	}
}

func TestHandler(t *testing.T) {
	spec := openapi.NewSpec(&openapi.Config{Title: "Studize API"}, "0.1.0")
	spec.AddServer("/api")
	spec.AddOperation("POST", "/analyze", &openapi.Operation{
		Summary:     "Analyze",
		RequestBody: openapi.RequestBodyJSON("AnalyzeRequest"),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Result", openapi.SchemaRef("AnalysisResult")),
			502: openapi.ResponseRef(openapi.BadGateway),
		},
	})

	handler, err := spec.Handler()
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/openapi.json", nil))

	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc["openapi"] != "3.1.0" {
		t.Errorf("openapi: got %v", doc["openapi"])
	}

	paths := doc["paths"].(map[string]any)
	post := paths["/analyze"].(map[string]any)["post"].(map[string]any)
	responses := post["responses"].(map[string]any)
	if ref := responses["502"].(map[string]any)["$ref"]; ref != "#/components/responses/BadGateway" {
		t.Errorf("502 ref: got %v", ref)
	}

	components := doc["components"].(map[string]any)
	if _, ok := components["schemas"].(map[string]any)["Error"]; !ok {
		t.Error("Error schema missing")
	}
}

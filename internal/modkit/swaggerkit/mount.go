// Package swaggerkit serves the embedded OpenAPI document and the swagger UI
package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"sync"

	phttp "articlestats/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.json
var openapiJSON []byte

// docReader is a seam so tests can feed a broken document
var docReader = func() []byte { return openapiJSON }

var (
	docOnce sync.Once
	docBody []byte
	docErr  error
)

// Mount serves /docs/doc.json and the UI under /docs/ when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/docs/doc.json", serveDocJSON)
	r.Handle("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
		httpSwagger.DocExpansion("list"),
	))
}

func serveDocJSON(w http.ResponseWriter, _ *http.Request) {
	docOnce.Do(func() { docBody, docErr = render(docReader()) })
	if docErr != nil {
		http.Error(w, "spec parse error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(docBody)
}

// render fills the servers list and gives every operation a default 500
func render(raw []byte) ([]byte, error) {
	var spec map[string]any
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, err
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": "/api/v1"}}
	}
	addDefaultError(spec)
	return json.Marshal(spec)
}

func addDefaultError(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	errResp := map[string]any{
		"description": "Internal Server Error",
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses["500"]; !exists {
				responses["500"] = errResp
			}
		}
	}
}

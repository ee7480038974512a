// Package api holds the OpenAPI contract of the HTTP adapter: the embedded
// document, the wire types and the routing glue that binds parameters before
// calling a ServerInterface.
package api

import (
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// BaseURL prefixes every route of the contract.
const BaseURL = "/market-api/v1"

//go:embed openapi.yaml
var document []byte

var (
	swaggerOnce sync.Once
	swagger     *openapi3.T
	swaggerErr  error
)

// GetSwagger parses and validates the embedded document. The result is
// cached; callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		swagger, swaggerErr = loader.LoadFromData(document)
		if swaggerErr != nil {
			return
		}
		swaggerErr = swagger.Validate(loader.Context)
	})
	return swagger, swaggerErr
}

// Document returns the raw YAML document.
func Document() []byte {
	return document
}

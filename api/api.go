// Package api carries the OpenAPI contract of the tracking service.
package api

import _ "embed"

// OpenAPISpec is the raw OpenAPI 3 contract served by the HTTP adapter.
//
//go:embed openapi.yml
var OpenAPISpec []byte

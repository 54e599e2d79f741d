package http

import (
	"fmt"
	"net/http"

	"tracking/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// LoadOpenAPISpec parses and validates the embedded OpenAPI contract.
// A contract that fails validation is a build defect, so callers treat an
// error here as fatal at startup.
func LoadOpenAPISpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(api.OpenAPISpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI spec: %w", err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("OpenAPI spec is invalid: %w", err)
	}

	return doc, nil
}

// RegisterDocsRoutes serves the contract as JSON plus the Swagger UI.
func RegisterDocsRoutes(e *echo.Echo, doc *openapi3.T) {
	e.GET("/openapi.json", func(ctx echo.Context) error {
		body, err := doc.MarshalJSON()
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to render OpenAPI spec",
			})
		}
		return ctx.JSONBlob(http.StatusOK, body)
	})

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))
}

// Package openapi serves Swagger UI over the OpenAPI document Huma
// generates for the registered operations.
package openapi

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

var swaggerUI = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "{{.SpecPath}}.json",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`))

// RegisterRoutes adds Swagger UI routes to the Echo instance. specPath is
// the Huma OpenAPIPath without extension; the legacy /swagger/swagger.json
// and .yaml paths redirect to it.
func RegisterRoutes(e *echo.Echo, title, specPath string) {
	e.GET("/swagger/swagger.json", redirectTo(specPath+".json"))
	e.GET("/swagger/swagger.yaml", redirectTo(specPath+".yaml"))
	e.GET("/swagger/index.html", serveUI(title, specPath))
	e.GET("/swagger", redirectTo("/swagger/index.html"))
	e.GET("/swagger/", redirectTo("/swagger/index.html"))
}

func serveUI(title, specPath string) echo.HandlerFunc {
	var b strings.Builder
	err := swaggerUI.Execute(&b, struct{ Title, SpecPath string }{title, specPath})
	page := b.String()

	return func(c echo.Context) error {
		if err != nil {
			return c.String(http.StatusInternalServerError, "rendering swagger UI failed")
		}
		return c.HTML(http.StatusOK, page)
	}
}

func redirectTo(target string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, target)
	}
}

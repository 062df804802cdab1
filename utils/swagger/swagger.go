// Package swagger serves the Swagger UI page and the embedded OpenAPI
// document describing the HTTP API.
package swagger

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.json
var openAPIDoc []byte

type SwaggerConfig struct {
	Title         string
	SwaggerDocURL string
	Version       string
}

const swaggerHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@5.9.0/swagger-ui.css" />
    <style>
        html { box-sizing: border-box; overflow-y: scroll; }
        *, *:before, *:after { box-sizing: inherit; }
        body { margin: 0; background: #fafafa; }
    </style>
</head>
<body>
    <div id="swagger-ui" data-doc-url="{{.SwaggerDocURL}}"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5.9.0/swagger-ui-bundle.js"></script>
    <script>
        window.onload = function() {
            window.ui = SwaggerUIBundle({
                url: document.getElementById("swagger-ui").dataset.docUrl,
                dom_id: "#swagger-ui",
                deepLinking: true,
                persistAuthorization: true,
                presets: [SwaggerUIBundle.presets.apis],
                layout: "BaseLayout"
            });
        };
    </script>
</body>
</html>`

var swaggerTemplate = template.Must(template.New("swagger").Parse(swaggerHTML))

func (c SwaggerConfig) withDefaults() SwaggerConfig {
	if c.Title == "" {
		c.Title = "API Documentation"
	}
	if c.SwaggerDocURL == "" {
		c.SwaggerDocURL = "/swagger/doc.json"
	}
	return c
}

// ServeSwaggerUI renders the Swagger UI page
func ServeSwaggerUI(config SwaggerConfig) gin.HandlerFunc {
	config = config.withDefaults()
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := swaggerTemplate.Execute(c.Writer, config); err != nil {
			c.String(http.StatusInternalServerError, "Failed to render Swagger UI")
		}
	}
}

// ServeDoc returns the embedded OpenAPI document with the title and version
// replaced by config.
func ServeDoc(config SwaggerConfig) gin.HandlerFunc {
	config = config.withDefaults()
	doc := Doc(config)
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", doc)
	}
}

// Doc returns the OpenAPI document for config
func Doc(config SwaggerConfig) []byte {
	var doc map[string]interface{}
	if err := json.Unmarshal(openAPIDoc, &doc); err != nil {
		return openAPIDoc
	}
	if info, ok := doc["info"].(map[string]interface{}); ok {
		info["title"] = config.Title
		if config.Version != "" {
			info["version"] = config.Version
		}
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return openAPIDoc
	}
	return out
}

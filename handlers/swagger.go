package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the portfolio API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>portfolio-api — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "portfolio-api", "version": "v1.0.0" },
  "paths": {
    "/api/": { "get": { "summary": "API greeting", "responses": { "200": { "description": "message" } } } },
    "/api/portfolio/data": {
      "get": { "summary": "Active portfolio document, or built-in default content", "responses": { "200": { "description": "portfolio object" } } }
    },
    "/api/projects": {
      "get": { "summary": "Active projects", "responses": { "200": { "description": "{projects: [...]}" }, "500": { "description": "store unavailable" } } }
    },
    "/api/skills": {
      "get": { "summary": "Skills by category, or built-in default content", "responses": { "200": { "description": "technical, creative, business" } } }
    },
    "/api/contact/submit": {
      "post": {
        "summary": "Submit the contact form",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email","message"],"properties":{"name":{"type":"string"},"email":{"type":"string","format":"email"},"message":{"type":"string"},"project_type":{"type":"string"}}}}}},
        "responses": { "200": { "description": "success, message, submission_id" }, "400": { "description": "validation error" }, "500": { "description": "submission not stored" } }
      }
    },
    "/api/audio/interaction": {
      "post": {
        "summary": "Record an audio player event (best-effort)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["action","excerpt","timestamp"],"properties":{"action":{"type":"string"},"excerpt":{"type":"string"},"timestamp":{"type":"number"}}}}}},
        "responses": { "200": { "description": "success flag; false when the event was not stored" }, "400": { "description": "validation error" } }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "store unreachable" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition format" } } } }
  }
}`

// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Service information",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ServiceInfo"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthStatus"}}
                }
            }
        },
        "/analyze": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sentiment"],
                "summary": "Analyze the sentiment of one text",
                "parameters": [
                    {"description": "Text to analyze", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AnalyzeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AnalyzeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorBody"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorBody"}}
                }
            }
        },
        "/batch-analyze": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sentiment"],
                "summary": "Analyze up to ten texts",
                "parameters": [
                    {"description": "Texts to analyze", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.BatchAnalyzeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BatchAnalyzeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorBody"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "handler.AnalyzeRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {"text": {"type": "string"}}
        },
        "handler.BatchAnalyzeRequest": {
            "type": "object",
            "required": ["texts"],
            "properties": {"texts": {"type": "array", "items": {"type": "string"}}}
        },
        "handler.ScoreResponse": {
            "type": "object",
            "properties": {"label": {"type": "string"}, "score": {"type": "number"}}
        },
        "handler.AnalyzeResponse": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "sentiment": {"type": "string"},
                "confidence": {"type": "number"},
                "all_scores": {"type": "array", "items": {"$ref": "#/definitions/handler.ScoreResponse"}}
            }
        },
        "handler.BatchItemResponse": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "sentiment": {"type": "string"},
                "confidence": {"type": "number"}
            }
        },
        "handler.BatchAnalyzeResponse": {
            "type": "object",
            "properties": {"results": {"type": "array", "items": {"$ref": "#/definitions/handler.BatchItemResponse"}}}
        },
        "handler.ServiceInfo": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "model": {"type": "string"},
                "endpoints": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handler.HealthStatus": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "model_loaded": {"type": "boolean"}}
        },
        "handler.ErrorBody": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Sentiment Analysis API",
	Description:      "Real-time sentiment analysis",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

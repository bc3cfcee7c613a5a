// Package docs registers the OpenAPI document of the ut HTTP API with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/calc": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calc"],
                "summary": "Evaluate an expression",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Arithmetic expression",
                        "name": "expr",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/format.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/router.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calc"],
                "summary": "Evaluate an expression from a JSON body",
                "parameters": [
                    {
                        "description": "Expression",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/router.CalcRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/format.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/router.ErrorResponse"}}
                }
            }
        },
        "/calc/functions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calc"],
                "summary": "List built-in functions and constants",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.FunctionsResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        }
    },
    "definitions": {
        "format.Result": {
            "type": "object",
            "properties": {
                "expression": {"type": "string"},
                "decimal": {"type": "string"},
                "hex": {"type": "string"},
                "binary": {"type": "string"}
            }
        },
        "router.CalcRequest": {
            "type": "object",
            "properties": {
                "expression": {"type": "string"}
            }
        },
        "router.FunctionsResponse": {
            "type": "object",
            "properties": {
                "functions": {"type": "array", "items": {"type": "string"}},
                "constants": {"type": "array", "items": {"type": "string"}}
            }
        },
        "router.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "title": {"type": "string"},
                "kind": {"type": "string"},
                "offset": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ut calculator API",
	Description:      "Evaluates arithmetic expressions and renders the result in decimal, hexadecimal and binary",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

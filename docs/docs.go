// Package docs holds the Swagger 2.0 document served under /docs/.
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
        "/connect": {
            "get": {
                "description": "Exchanges \"Authorization: Basic base64(email:password)\" for a session token valid for 24 hours.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign in with Basic credentials",
                "parameters": [
                    {"type": "string", "description": "Basic credentials", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.TokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/disconnect": {
            "get": {
                "description": "Drops the session named by X-Token. Succeeds for unknown or expired tokens too.",
                "tags": ["Auth"],
                "summary": "Sign out",
                "parameters": [
                    {"type": "string", "description": "Session token", "name": "X-Token", "in": "header"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/files": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "List the caller's files under a parent, newest first, 20 per page",
                "parameters": [
                    {"type": "string", "description": "Session token", "name": "X-Token", "in": "header", "required": true},
                    {"type": "string", "description": "Parent folder id, 0 for root", "name": "parentId", "in": "query"},
                    {"type": "integer", "description": "Zero based page", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.File"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            },
            "post": {
                "description": "Folders are metadata only. Files and images carry base64 data that is written to disk before the record is created.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Create a folder or upload a file",
                "parameters": [
                    {"type": "string", "description": "Session token", "name": "X-Token", "in": "header", "required": true},
                    {"description": "File description", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.uploadInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.File"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/files/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Show one of the caller's files",
                "parameters": [
                    {"type": "string", "description": "Session token", "name": "X-Token", "in": "header", "required": true},
                    {"type": "string", "description": "File id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.File"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/files/{id}/data": {
            "get": {
                "description": "Public files are readable by anyone. Private files only by their owner; everyone else gets 404.",
                "produces": ["application/octet-stream"],
                "tags": ["Files"],
                "summary": "Download file content",
                "parameters": [
                    {"type": "string", "description": "Session token", "name": "X-Token", "in": "header"},
                    {"type": "string", "description": "File id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "A folder doesn't have content", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/files/{id}/publish": {
            "put": {
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Make a file public",
                "parameters": [
                    {"type": "string", "description": "Session token", "name": "X-Token", "in": "header", "required": true},
                    {"type": "string", "description": "File id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.File"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/files/{id}/unpublish": {
            "put": {
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Make a file private",
                "parameters": [
                    {"type": "string", "description": "Session token", "name": "X-Token", "in": "header", "required": true},
                    {"type": "string", "description": "File id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.File"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["App"],
                "summary": "Count users and files",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Stats"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["App"],
                "summary": "Report store availability",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Status"}}
                }
            }
        },
        "/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.createUserInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.UserResponse"}},
                    "400": {"description": "Missing email, Missing password or Already exist", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Current user",
                "parameters": [
                    {"type": "string", "description": "Session token", "name": "X-Token", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.TokenResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "handlers.UserResponse": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "id": {"type": "string"}}
        },
        "handlers.createUserInput": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.uploadInput": {
            "type": "object",
            "properties": {
                "data": {"type": "string"},
                "isPublic": {"type": "boolean"},
                "name": {"type": "string"},
                "parentId": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "models.File": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "isPublic": {"type": "boolean"},
                "name": {"type": "string"},
                "parentId": {"type": "string"},
                "type": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "services.Stats": {
            "type": "object",
            "properties": {"files": {"type": "integer"}, "users": {"type": "integer"}}
        },
        "services.Status": {
            "type": "object",
            "properties": {"db": {"type": "boolean"}, "redis": {"type": "boolean"}}
        },
        "utils.ErrorPayload": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Files Manager API",
	Description:      "Token authenticated file storage: users, sessions, folders and file content.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs registers the OpenAPI document served at /docs/. Keep it in step
// with the @Router annotations on the handlers.
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
        "/api/v1/auth/google/callback": {
            "get": {
                "tags": ["Auth"],
                "summary": "Finish Google sign-in",
                "parameters": [
                    {"type": "string", "description": "OAuth state", "name": "state", "in": "query", "required": true},
                    {"type": "string", "description": "Authorization code", "name": "code", "in": "query", "required": true}
                ],
                "responses": {
                    "307": {"description": "Temporary Redirect"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/auth/google/login": {
            "get": {
                "tags": ["Auth"],
                "summary": "Start Google sign-in",
                "parameters": [
                    {"type": "string", "description": "login or register", "name": "redirect", "in": "query"}
                ],
                "responses": {
                    "307": {"description": "Temporary Redirect"}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "description": "Verifies the credentials and sets the session cookie.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign in",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/auth/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Create an account",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/files": {
            "get": {
                "description": "Returns a page of files, newest first, with their tags and view counts.",
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "List files",
                "parameters": [
                    {"type": "integer", "description": "Page size, clamped to 1-100 (default 10)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Number of rows to skip", "name": "cursor", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            },
            "post": {
                "description": "Stores metadata for an object already uploaded through a presigned URL and links the given tags.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Register an uploaded file",
                "parameters": [
                    {"description": "File metadata", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.CreateFileInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/files/{id}": {
            "delete": {
                "description": "Deletes a file owned by the caller together with its tag links and views.",
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Delete a file",
                "parameters": [
                    {"type": "string", "description": "File ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/files/{id}/position": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Reorder a file",
                "parameters": [
                    {"type": "string", "description": "File ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/files/{id}/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "File statistics",
                "parameters": [
                    {"type": "string", "description": "File ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/files/{id}/tags": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Attach tags to a file",
                "parameters": [
                    {"type": "string", "description": "File ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/share/{id}": {
            "get": {
                "description": "Public lookup of a file and its tags. Each call records a view unless track=false.",
                "produces": ["application/json"],
                "tags": ["Share"],
                "summary": "Retrieve a shared file",
                "parameters": [
                    {"type": "string", "description": "File ID", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "description": "Record a view (default true)", "name": "track", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "File retrieved successfully", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "404": {"description": "File not found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/storage/presign": {
            "post": {
                "description": "Returns a time-bounded PUT URL for \"<directoryPath>/<uuid>-<key>\" and the public URL the object will have.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Storage"],
                "summary": "Get a presigned upload URL",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/tags": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tags"],
                "summary": "List tags",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tags"],
                "summary": "Create a tag",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/tags/options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tags"],
                "summary": "Tags as label/value options",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/tags/{id}": {
            "delete": {
                "description": "Removes the tag from every file it is attached to.",
                "produces": ["application/json"],
                "tags": ["Tags"],
                "summary": "Delete a tag",
                "parameters": [
                    {"type": "string", "description": "Tag ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tags"],
                "summary": "Rename a tag",
                "parameters": [
                    {"type": "string", "description": "Tag ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        }
    },
    "definitions": {
        "services.CreateFileInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "size": {"type": "integer"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "type": {"type": "string", "enum": ["image", "video"]},
                "url": {"type": "string"}
            }
        },
        "utils.Payload": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
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
	Title:            "FileHub API",
	Description:      "Upload, tag, share and track images and videos stored in S3-compatible object storage.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

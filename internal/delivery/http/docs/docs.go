// Package docs registers the Swagger 2.0 document served at /swagger/. It is kept
// in sync with the swag annotations on the controllers by hand.
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
                "tags": ["status"],
                "summary": "Service banner",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.RootResponse"}}
                }
            }
        },
        "/status": {
            "get": {
                "description": "Reports whether any users are stored.",
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Store status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.StatusResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.DetailResponse"}}
                }
            }
        },
        "/api/users": {
            "get": {
                "description": "Paginated user listing. With neither page nor size every user is returned on one page; page alone uses a page size of 6. Pages past the end return an empty list.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "parameters": [
                    {"type": "integer", "description": "Page number (>= 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (>= 1)", "name": "size", "in": "query"},
                    {"type": "integer", "description": "Alias of size", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.PageResponse-domain_User"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/helpers.ValidationResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.DetailResponse"}}
                }
            },
            "post": {
                "description": "Stores a new user with the given name and job.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "Name and job", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.CreateUserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.DetailResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/helpers.ValidationResponse"}}
                }
            }
        },
        "/api/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.DetailResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/helpers.ValidationResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Replace a user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "Full user record", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.ReplaceUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.DetailResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/helpers.DetailResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/helpers.ValidationResponse"}}
                }
            },
            "patch": {
                "description": "Updates only the fields present in the body.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.PatchUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PatchUserResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.DetailResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/helpers.DetailResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/helpers.ValidationResponse"}}
                }
            },
            "delete": {
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.DetailResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/helpers.ValidationResponse"}}
                }
            }
        },
        "/api/login": {
            "post": {
                "description": "Checks the demo credentials and returns a token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CredentialsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.LoginResponse"}},
                    "400": {"description": "Missing password / Missing email or username", "schema": {"$ref": "#/definitions/helpers.AuthErrorResponse"}},
                    "401": {"description": "Invalid login credentials", "schema": {"$ref": "#/definitions/helpers.AuthErrorResponse"}}
                }
            }
        },
        "/api/register": {
            "post": {
                "description": "Succeeds only for users that already exist.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register",
                "parameters": [
                    {"description": "Registration data", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CredentialsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.RegisterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.AuthErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.CreateUserRequest": {
            "type": "object",
            "required": ["job", "name"],
            "properties": {
                "job": {"type": "string", "maxLength": 200},
                "name": {"type": "string", "maxLength": 200}
            }
        },
        "controllers.CreateUserResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "job": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "controllers.CredentialsRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "controllers.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "controllers.PatchUserRequest": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string", "maxLength": 200},
                "job": {"type": "string", "maxLength": 200},
                "last_name": {"type": "string", "maxLength": 200},
                "name": {"type": "string", "maxLength": 200}
            }
        },
        "controllers.PatchUserResponse": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "id": {"type": "integer"},
                "job": {"type": "string"},
                "last_name": {"type": "string"},
                "name": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "controllers.RegisterResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "token": {"type": "string"}
            }
        },
        "controllers.ReplaceUserRequest": {
            "type": "object",
            "required": ["avatar", "email", "first_name", "last_name"],
            "properties": {
                "avatar": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string", "maxLength": 200},
                "job": {"type": "string", "maxLength": 200},
                "last_name": {"type": "string", "maxLength": 200},
                "name": {"type": "string", "maxLength": 200}
            }
        },
        "controllers.RootResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "controllers.StatusResponse": {
            "type": "object",
            "properties": {
                "users": {"type": "boolean"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "id": {"type": "integer"},
                "job": {"type": "string"},
                "last_name": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "helpers.AuthErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "helpers.DetailResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "helpers.FieldError": {
            "type": "object",
            "properties": {
                "input": {},
                "loc": {"type": "array", "items": {"type": "string"}},
                "msg": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "helpers.PageResponse-domain_User": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}},
                "page": {"type": "integer"},
                "pages": {"type": "integer"},
                "size": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "helpers.ValidationResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "array", "items": {"$ref": "#/definitions/helpers.FieldError"}}
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
	Title:            "reqres mock API",
	Description:      "A local clone of the reqres.in test service: users CRUD with pagination, a login stub and a status endpoint.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs registers the OpenAPI description of the job posting API with
// swag so echo-swagger can serve it at /swagger/*. Keep it in sync with the
// handler annotations.
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
        "/user/health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["user"],
                "summary": "Account router health",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        },
        "/user/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Sign up a company account",
                "parameters": [
                    {"description": "Account details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.signupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.signupResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/user/verify/{token}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Verify a company email",
                "parameters": [
                    {"type": "string", "description": "Verification token from the email link", "name": "token", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/user/signin": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Sign in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.signinRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.signinResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/job/job-health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["job"],
                "summary": "Job router health",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        },
        "/job/post": {
            "post": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["job"],
                "summary": "Post a job",
                "parameters": [
                    {"description": "Job posting", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.postJobRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.postJobResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/job/{jobId}/notifications": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["job"],
                "summary": "Candidate notification outcomes",
                "parameters": [
                    {"type": "string", "description": "Job posting id", "name": "jobId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.notificationsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Issue": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "tag": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "domain.NotificationOutcome": {
            "type": "object",
            "properties": {
                "recipient": {"type": "string"},
                "success": {"type": "boolean"},
                "info": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "issues": {"type": "array", "items": {"$ref": "#/definitions/domain.Issue"}},
                "details": {"type": "string"}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.signupRequest": {
            "type": "object",
            "required": ["name", "phoneNumber", "companyName", "companyEmail", "password"],
            "properties": {
                "name": {"type": "string"},
                "phoneNumber": {"type": "string", "minLength": 10},
                "companyName": {"type": "string"},
                "companyEmail": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "handler.signupResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "accountId": {"type": "string"}
            }
        },
        "handler.signinRequest": {
            "type": "object",
            "required": ["companyEmail", "password"],
            "properties": {
                "companyEmail": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "handler.accountSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "companyEmail": {"type": "string"},
                "companyName": {"type": "string"}
            }
        },
        "handler.signinResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "user": {"$ref": "#/definitions/handler.accountSummary"}
            }
        },
        "handler.postJobRequest": {
            "type": "object",
            "required": ["jobTitle", "jobDescription", "experienceLevel", "endDate"],
            "properties": {
                "jobTitle": {"type": "string"},
                "jobDescription": {"type": "string", "minLength": 10},
                "experienceLevel": {"type": "string", "enum": ["Entry", "Mid-level", "Senior", "Executive"]},
                "candidates": {"type": "array", "items": {"type": "string"}},
                "endDate": {"type": "string", "format": "date-time"}
            }
        },
        "handler.postJobResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "jobId": {"type": "string"},
                "emailResults": {"type": "array", "items": {"$ref": "#/definitions/domain.NotificationOutcome"}}
            }
        },
        "handler.notificationsResponse": {
            "type": "object",
            "properties": {
                "jobId": {"type": "string"},
                "emailResults": {"type": "array", "items": {"$ref": "#/definitions/domain.NotificationOutcome"}}
            }
        }
    },
    "securityDefinitions": {
        "CookieAuth": {"type": "apiKey", "name": "token", "in": "cookie"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Job Posting API",
	Description:      "Company accounts, email verification and job postings with candidate notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

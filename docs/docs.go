// Package docs holds the OpenAPI document of the gigboard API in the layout
// produced by swag init.
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current user",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}}
            }
        },
        "/v1/jobs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "Browse jobs",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "in": "query", "name": "page"},
                    {"type": "integer", "in": "query", "name": "page_size"},
                    {"type": "boolean", "in": "query", "name": "exclude_applied"},
                    {"type": "boolean", "in": "query", "name": "exclude_posted_by_me"},
                    {"type": "string", "in": "query", "name": "city"},
                    {"type": "string", "in": "query", "name": "role"},
                    {"type": "string", "in": "query", "name": "date_range", "enum": ["all", "today", "tomorrow", "this_week", "this_month"]}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.jobPageResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "Post a new job",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.jobRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Job"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/jobs/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "Get a job",
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"type": "boolean", "in": "query", "name": "include_deleted"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.jobResponse"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "Replace the editable fields of a job",
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.jobRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Job"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "Soft-delete a job",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/jobs/{id}/apply": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["applications"],
                "summary": "Apply to a job",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Application"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/jobs/{id}/applicants": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["review"],
                "summary": "List the applicants of one of my jobs",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.jobApplicantsResponse"}}}
            }
        },
        "/v1/jobs/{id}/applicants/{applicant_id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["review"],
                "summary": "Connect with or decline an applicant",
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"type": "string", "in": "path", "name": "applicant_id", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.answerRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.applicantResponse"}}}
            }
        },
        "/v1/my-jobs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "List the jobs I posted",
                "parameters": [
                    {"type": "integer", "in": "query", "name": "page"},
                    {"type": "integer", "in": "query", "name": "page_size"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.jobPageResponse"}}}
            }
        },
        "/v1/my-jobs/applicants": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["review"],
                "summary": "List applicants across all my jobs",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.jobApplicantsResponse"}}}}
            }
        },
        "/v1/applications/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["applications"],
                "summary": "List my live applications",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.applicationResponse"}}}}
            }
        },
        "/v1/applications/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["applications"],
                "summary": "Get an application",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.applicationResponse"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["applications"],
                "summary": "Change the status of an application",
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.setStatusRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Application"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["applications"],
                "summary": "Withdraw my application",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Application"}}}
            }
        },
        "/v1/history/posted-jobs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["history"],
                "summary": "List my deleted or expired jobs",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.jobResponse"}}}}
            }
        },
        "/v1/history/posted-jobs/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["history"],
                "summary": "Remove a deleted or expired job for good",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/history/applications": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["history"],
                "summary": "List my withdrawn applications",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.applicationResponse"}}}}
            }
        },
        "/v1/filters": {
            "get": {
                "tags": ["catalog"],
                "summary": "Cities and roles offered in the search form",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.FilterOptions"}}}
            }
        },
        "/v1/roles": {
            "get": {
                "tags": ["catalog"],
                "summary": "Search posted roles",
                "parameters": [{"type": "string", "in": "query", "name": "search"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        },
        "/v1/venues": {
            "get": {
                "tags": ["catalog"],
                "summary": "Search venues",
                "parameters": [{"type": "string", "in": "query", "name": "search"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Venue"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["catalog"],
                "summary": "Add a venue",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createVenueRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Venue"}}}
            }
        },
        "/v1/cities": {
            "get": {
                "tags": ["catalog"],
                "summary": "Search supported cities",
                "parameters": [{"type": "string", "in": "query", "name": "search"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        }
    },
    "definitions": {
        "domain.Identity": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "avatar_url": {"type": "string"}
            }
        },
        "domain.Location": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "street": {"type": "string"},
                "number": {"type": "string"}
            }
        },
        "domain.Job": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "role": {"type": "string"},
                "venue": {"type": "string"},
                "location": {"$ref": "#/definitions/domain.Location"},
                "date": {"type": "string", "example": "2026-10-14"},
                "start_time": {"type": "string", "example": "20:00"},
                "end_time": {"type": "string", "example": "23:30"},
                "payment_type": {"type": "string", "enum": ["PerHour", "FixedPrice", "WithTips", "TipBasedMinWage"]},
                "payment_amount": {"type": "number"},
                "currency": {"type": "string", "enum": ["USD", "EUR", "ILS"]},
                "description": {"type": "string"},
                "created_by": {"type": "string"},
                "deleted_at": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.Application": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "job_id": {"type": "string"},
                "applicant_id": {"type": "string"},
                "status": {"type": "string", "enum": ["applied", "connected", "declined", "withdrawn"]},
                "applied_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.ApplicantProfile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "avatar_url": {"type": "string"},
                "phone": {"type": "string"},
                "gender": {"type": "string"},
                "date_of_birth": {"type": "string"},
                "age": {"type": "integer"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "avatar_url": {"type": "string"},
                "phone": {"type": "string"},
                "gender": {"type": "string"},
                "date_of_birth": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.Venue": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "ports.FilterOptions": {
            "type": "object",
            "properties": {
                "cities": {"type": "array", "items": {"type": "string"}},
                "roles": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "phone": {"type": "string"},
                "gender": {"type": "string"},
                "date_of_birth": {"type": "string", "example": "1998-04-02"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.authResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expires_at": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.User"}
            }
        },
        "handler.jobRequest": {
            "type": "object",
            "required": ["role", "venue", "date", "start_time", "end_time", "payment_type", "currency"],
            "properties": {
                "role": {"type": "string"},
                "venue": {"type": "string"},
                "location": {"$ref": "#/definitions/domain.Location"},
                "date": {"type": "string", "example": "2026-10-14"},
                "start_time": {"type": "string", "example": "20:00"},
                "end_time": {"type": "string", "example": "23:30"},
                "payment_type": {"type": "string", "enum": ["PerHour", "FixedPrice", "WithTips", "TipBasedMinWage"]},
                "payment_amount": {"type": "number", "minimum": 0},
                "currency": {"type": "string", "enum": ["USD", "EUR", "ILS"]},
                "description": {"type": "string"}
            }
        },
        "handler.jobResponse": {
            "allOf": [
                {"$ref": "#/definitions/domain.Job"},
                {
                    "type": "object",
                    "properties": {
                        "is_active": {"type": "boolean"},
                        "state": {"type": "string", "enum": ["active", "expired", "deleted"]},
                        "owner": {"$ref": "#/definitions/domain.Identity"}
                    }
                }
            ]
        },
        "handler.jobPageResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.jobResponse"}},
                "total_count": {"type": "integer"},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "handler.applicationResponse": {
            "allOf": [
                {"$ref": "#/definitions/domain.Application"},
                {"type": "object", "properties": {"job": {"$ref": "#/definitions/handler.jobResponse"}}}
            ]
        },
        "handler.applicantResponse": {
            "type": "object",
            "properties": {
                "application": {"$ref": "#/definitions/domain.Application"},
                "applicant": {"$ref": "#/definitions/domain.ApplicantProfile"},
                "contact_url": {"type": "string"}
            }
        },
        "handler.jobApplicantsResponse": {
            "type": "object",
            "properties": {
                "job": {"$ref": "#/definitions/handler.jobResponse"},
                "applicants": {"type": "array", "items": {"$ref": "#/definitions/handler.applicantResponse"}}
            }
        },
        "handler.setStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string", "enum": ["connected", "declined", "withdrawn"]}}
        },
        "handler.answerRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string", "enum": ["connected", "declined"]}}
        },
        "handler.createVenueRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Gigboard API",
	Description:      "Night-shift job marketplace: post shifts, browse and apply, review applicants.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "EduGuru API",
        "description": "School administration backend for teachers: master data sync, attendance, scores, journals, counseling and AI assistance",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Auth", "description": "Registration, login and OAuth"},
        {"name": "Sync", "description": "Bulk master data reconciliation"},
        {"name": "Classes", "description": "Class roster"},
        {"name": "Students", "description": "Student roster"},
        {"name": "Subjects", "description": "Subject list"},
        {"name": "Attendance", "description": "Attendance records"},
        {"name": "Scores", "description": "Assessment scores"},
        {"name": "Journals", "description": "Teaching journals"},
        {"name": "Counseling", "description": "Counseling sessions"},
        {"name": "Recap", "description": "Semester recaps and exports"},
        {"name": "Dashboard", "description": "Aggregate statistics"},
        {"name": "AI", "description": "AI teaching assistant"},
        {"name": "System", "description": "Health and metrics"}
    ],
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a teacher account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/AuthResponse"}},
                    "400": {"description": "Username taken or invalid payload", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Login with username and password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AuthResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current user profile",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "401": {"description": "Missing or invalid token", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "tags": ["Auth"],
                "summary": "Update profile or password",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "400": {"description": "Wrong current password", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/{provider}": {
            "get": {
                "tags": ["Auth"],
                "summary": "Redirect to an OAuth provider",
                "parameters": [
                    {"name": "provider", "in": "path", "required": true, "type": "string", "enum": ["google", "github", "microsoft"]}
                ],
                "responses": {
                    "302": {"description": "Redirect to provider consent page"},
                    "400": {"description": "Unknown provider", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/{provider}/callback": {
            "get": {
                "tags": ["Auth"],
                "summary": "OAuth provider callback",
                "parameters": [
                    {"name": "provider", "in": "path", "required": true, "type": "string"},
                    {"name": "code", "in": "query", "type": "string"},
                    {"name": "state", "in": "query", "type": "string"}
                ],
                "responses": {
                    "302": {"description": "Redirect to client with token"}
                }
            }
        },
        "/classes/bulk": {
            "post": {
                "tags": ["Sync"],
                "summary": "Bulk upsert classes",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SyncClassesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SyncResult"}},
                    "500": {"description": "Batch rolled back", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/students/bulk": {
            "post": {
                "tags": ["Sync"],
                "summary": "Bulk upsert students",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SyncStudentsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK, may include requiresConfirmation", "schema": {"$ref": "#/definitions/SyncResult"}}
                }
            }
        },
        "/subjects/bulk": {
            "post": {
                "tags": ["Sync"],
                "summary": "Bulk insert subjects, skipping duplicates",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SyncResult"}}
                }
            }
        },
        "/attendance/bulk": {
            "post": {
                "tags": ["Sync"],
                "summary": "Bulk upsert attendance records",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SyncResult"}}
                }
            }
        },
        "/scores/bulk": {
            "post": {
                "tags": ["Sync"],
                "summary": "Bulk upsert assessment scores",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SyncResult"}}
                }
            }
        },
        "/sync/master": {
            "post": {
                "tags": ["Sync"],
                "summary": "Combined classes, students and subjects sync",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SyncMasterResult"}}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "List classes for the current user",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Classes"],
                "summary": "Create a class",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            },
            "delete": {
                "tags": ["Classes"],
                "summary": "Delete all classes for the current user",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Deleted"}}
            }
        },
        "/classes/{id}": {
            "put": {
                "tags": ["Classes"],
                "summary": "Update a class",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Classes"],
                "summary": "Delete a class, detaching its students",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students for the current user",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "classId", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create a student",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete all students for the current user",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Deleted"}}
            }
        },
        "/students/{id}": {
            "put": {
                "tags": ["Students"],
                "summary": "Update a student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete a student and dependent records",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/subjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List subjects for the current user",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Subjects"],
                "summary": "Add a subject, skipping duplicates",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            },
            "delete": {
                "tags": ["Subjects"],
                "summary": "Delete all subjects for the current user",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Deleted"}}
            }
        },
        "/subjects/{name}": {
            "delete": {
                "tags": ["Subjects"],
                "summary": "Delete a subject by name",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "Deleted"}}
            }
        },
        "/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "List attendance records",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "classId", "in": "query", "type": "string"},
                    {"name": "date", "in": "query", "type": "string"},
                    {"name": "subject", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/scores": {
            "get": {
                "tags": ["Scores"],
                "summary": "List assessment scores",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "classId", "in": "query", "type": "string"},
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "assessmentType", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/journals": {
            "get": {
                "tags": ["Journals"],
                "summary": "List teaching journals",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Journals"],
                "summary": "Create or update a journal entry",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/journals/{id}": {
            "delete": {
                "tags": ["Journals"],
                "summary": "Delete a journal entry",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "Deleted"}}
            }
        },
        "/counseling": {
            "get": {
                "tags": ["Counseling"],
                "summary": "List counseling sessions",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "studentId", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Counseling"],
                "summary": "Create or update a counseling session",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/counseling/{id}": {
            "delete": {
                "tags": ["Counseling"],
                "summary": "Delete a counseling session",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "Deleted"}}
            }
        },
        "/recap/attendance": {
            "get": {
                "tags": ["Recap"],
                "summary": "Attendance recap per student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "classId", "in": "query", "required": true, "type": "string"},
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "semester", "in": "query", "type": "string", "enum": ["ODD", "EVEN"]},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "months", "in": "query", "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["json", "csv", "pdf"]}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/recap/scores": {
            "get": {
                "tags": ["Recap"],
                "summary": "Score recap per student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "classId", "in": "query", "required": true, "type": "string"},
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "semester", "in": "query", "type": "string", "enum": ["ODD", "EVEN"]},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["json", "csv", "pdf"]}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/dashboard/stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Aggregate counts for the current user",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/DashboardStats"}}}
            }
        },
        "/ai/chat": {
            "post": {
                "tags": ["AI"],
                "summary": "Chat with the teaching assistant",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ChatResponse"}},
                    "503": {"description": "AI unavailable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/ai/reflection": {
            "post": {
                "tags": ["AI"],
                "summary": "Generate a journal reflection",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ChatResponse"}}}
            }
        },
        "/ai/teaching-methods": {
            "post": {
                "tags": ["AI"],
                "summary": "Suggest teaching methods",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ChatResponse"}}}
            }
        },
        "/ai/follow-up": {
            "post": {
                "tags": ["AI"],
                "summary": "Suggest counseling follow-up",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ChatResponse"}}}
            }
        },
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "required": ["username", "password", "name"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string", "enum": ["GURU", "WALI_KELAS", "BK", "ADMIN"]}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/User"}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "SyncClassesRequest": {
            "type": "object",
            "properties": {
                "classes": {"type": "array", "items": {"type": "object"}}
            }
        },
        "SyncStudentsRequest": {
            "type": "object",
            "properties": {
                "students": {"type": "array", "items": {"type": "object"}},
                "confirm": {"type": "boolean"}
            }
        },
        "SyncResult": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "count": {"type": "integer"},
                "warnings": {"type": "integer"},
                "requiresConfirmation": {"type": "boolean"},
                "invalidReferences": {"type": "array", "items": {"type": "string"}}
            }
        },
        "SyncMasterResult": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "classes": {"$ref": "#/definitions/SyncResult"},
                "students": {"$ref": "#/definitions/SyncResult"},
                "subjects": {"$ref": "#/definitions/SyncResult"}
            }
        },
        "DashboardStats": {
            "type": "object",
            "properties": {
                "classes": {"type": "integer"},
                "students": {"type": "integer"},
                "subjects": {"type": "integer"},
                "journals": {"type": "integer"},
                "counseling": {"type": "integer"}
            }
        },
        "ChatRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {"type": "string"},
                "context": {"type": "string"}
            }
        },
        "ChatResponse": {
            "type": "object",
            "properties": {
                "reply": {"type": "string"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}

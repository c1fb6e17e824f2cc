package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Academy API",
        "description": "Role-based home screens for the academy app",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BearerAuth": []}],
    "tags": [
        {"name": "Navigation", "description": "Role-segmented tabs"},
        {"name": "Home", "description": "Academy, teacher and student home screens"}
    ],
    "paths": {
        "/navigation": {
            "get": {
                "tags": ["Navigation"],
                "summary": "Bottom navigation for the signed-in role",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/NavigationEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/home/academy": {
            "get": {
                "tags": ["Home"],
                "summary": "Academy (admin) home screen",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/HomeScreenEnvelope"}},
                    "403": {"description": "Role not allowed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/home/student": {
            "get": {
                "tags": ["Home"],
                "summary": "Student and parent home screen",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/HomeScreenEnvelope"}},
                    "403": {"description": "Role not allowed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/home/teacher": {
            "get": {
                "tags": ["Home"],
                "summary": "Teacher home: classes and today's lessons",
                "description": "Every call is a fresh screen visit. A failed read answers 502 with a troubleshooting checklist in meta.",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Ready", "schema": {"$ref": "#/definitions/TeacherHomeEnvelope"}},
                    "403": {"description": "Role not allowed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Remote read failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/home/teacher/export": {
            "get": {
                "tags": ["Home"],
                "summary": "Download today's lessons",
                "produces": ["text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "required": true, "enum": ["csv", "pdf", "xlsx"]}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Invalid format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Remote read failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/home/teacher/calendar.ics": {
            "get": {
                "tags": ["Home"],
                "summary": "Today's lessons as an iCalendar feed",
                "produces": ["text/calendar"],
                "responses": {
                    "200": {"description": "Feed", "schema": {"type": "string"}},
                    "502": {"description": "Remote read failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/home/teacher/calendar-link": {
            "get": {
                "tags": ["Home"],
                "summary": "Signed subscription URL for today's lessons feed",
                "description": "Calendar apps cannot send bearer tokens, so the returned URL carries a signed token instead.",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CalendarLinkEnvelope"}}
                }
            }
        },
        "/calendar/teacher.ics": {
            "get": {
                "tags": ["Home"],
                "summary": "Today's lessons feed for a subscription link",
                "security": [],
                "produces": ["text/calendar"],
                "parameters": [
                    {"name": "token", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Feed", "schema": {"type": "string"}},
                    "401": {"description": "Missing, invalid or expired token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        },
        "NavigationTab": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "enum": ["index", "teacher", "student"]},
                "title": {"type": "string"},
                "accessible": {"type": "boolean"}
            }
        },
        "NavigationEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "role": {"type": "string"},
                        "landing": {"type": "string"},
                        "tabs": {"type": "array", "items": {"$ref": "#/definitions/NavigationTab"}}
                    }
                }
            }
        },
        "HomeScreenEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "tab": {"type": "string"},
                        "title": {"type": "string"},
                        "description": {"type": "string"},
                        "note": {"type": "string"}
                    }
                }
            }
        },
        "ClassRow": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "subject": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "LessonRow": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "class_id": {"type": "string"},
                "class_name": {"type": "string"},
                "starts_at": {"type": "string", "format": "date-time"},
                "ends_at": {"type": "string", "format": "date-time"},
                "time_range": {"type": "string", "example": "09:00 ~ 10:00"}
            }
        },
        "CalendarLinkEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "url": {"type": "string"},
                        "expires_at": {"type": "string", "format": "date-time"}
                    }
                }
            }
        },
        "TeacherHomeEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "status": {"type": "string", "enum": ["ready"]},
                        "date": {"type": "string", "format": "date"},
                        "classes": {"type": "array", "items": {"$ref": "#/definitions/ClassRow"}},
                        "lessons": {"type": "array", "items": {"$ref": "#/definitions/LessonRow"}},
                        "empty_classes_message": {"type": "string"},
                        "empty_lessons_message": {"type": "string"}
                    }
                },
                "meta": {"type": "object"}
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

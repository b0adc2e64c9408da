package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Timetable Workspace API",
        "description": "Interactive timetable editing: drag-drop assignment, undo/redo, conflict detection, week propagation and recognized-timetable import.",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Workspaces", "description": "Editing sessions over a scheduling grid"},
        {"name": "Import", "description": "Recognized-timetable validation and commit"},
        {"name": "Roster", "description": "Read-only teacher load roster"},
        {"name": "Holidays", "description": "Holiday calendar"},
        {"name": "Export", "description": "Printable timetable renderings"}
    ],
    "paths": {
        "/workspaces/{id}": {
            "get": {
                "tags": ["Workspaces"],
                "summary": "Get workspace state",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Entries, conflicts and history availability", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workspaces/{id}/assignments": {
            "post": {
                "tags": ["Workspaces"],
                "summary": "Assign a teacher to a slot",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignRequest"}}
                ],
                "responses": {
                    "200": {"description": "Batch selection required", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "201": {"description": "Entry committed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Teacher or batch already booked", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Teacher does not work on this day", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workspaces/{id}/assignments/resolve": {
            "post": {
                "tags": ["Workspaces"],
                "summary": "Resolve a pending drop with a batch choice",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResolveDropRequest"}}
                ],
                "responses": {
                    "201": {"description": "Entry committed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "No drop awaiting selection", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workspaces/{id}/assignments/pending": {
            "delete": {
                "tags": ["Workspaces"],
                "summary": "Cancel the pending drop",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Current state", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workspaces/{id}/moves": {
            "post": {
                "tags": ["Workspaces"],
                "summary": "Move an entry to another slot",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MoveRequest"}}
                ],
                "responses": {
                    "200": {"description": "Entry moved", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Entry not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Target slot busy", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workspaces/{id}/entries/{entryId}": {
            "delete": {
                "tags": ["Workspaces"],
                "summary": "Remove an entry from the grid",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "entryId", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Entry removed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Entry not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workspaces/{id}/undo": {
            "post": {
                "tags": ["Workspaces"],
                "summary": "Undo the most recent mutation",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Applied flag and current state", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workspaces/{id}/redo": {
            "post": {
                "tags": ["Workspaces"],
                "summary": "Redo the most recently undone mutation",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Applied flag and current state", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workspaces/{id}/propagate": {
            "post": {
                "tags": ["Workspaces"],
                "summary": "Copy the current week onto other weeks",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PropagateRequest"}}
                ],
                "responses": {
                    "200": {"description": "Per-week copies and total count", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workspaces/{id}/import/validate": {
            "post": {
                "tags": ["Import"],
                "summary": "Validate a recognized timetable batch",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ImportValidateRequest"}}
                ],
                "responses": {
                    "200": {"description": "Full issue report", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workspaces/{id}/import/commit": {
            "post": {
                "tags": ["Import"],
                "summary": "Commit a validated timetable batch",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ImportCommitRequest"}}
                ],
                "responses": {
                    "201": {"description": "Committed count and current state", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Unacknowledged warnings", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Blocking errors present", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workspaces/{id}/export/pdf": {
            "get": {
                "tags": ["Export"],
                "summary": "Export the workspace grid as PDF",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "batchId", "in": "query", "type": "string", "required": false}
                ],
                "responses": {
                    "200": {"description": "PDF document"}
                }
            }
        },
        "/workspaces/{id}/export/csv": {
            "get": {
                "tags": ["Export"],
                "summary": "Export the workspace grid as CSV",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "batchId", "in": "query", "type": "string", "required": false}
                ],
                "responses": {
                    "200": {"description": "CSV document"}
                }
            }
        },
        "/teachers/loads": {
            "get": {
                "tags": ["Roster"],
                "summary": "List teacher loads",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string", "required": false},
                    {"name": "batchId", "in": "query", "type": "string", "required": false},
                    {"name": "page", "in": "query", "type": "integer", "required": false},
                    {"name": "limit", "in": "query", "type": "integer", "required": false}
                ],
                "responses": {
                    "200": {"description": "Paginated teacher loads", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teachers/{id}/load": {
            "get": {
                "tags": ["Roster"],
                "summary": "Get one teacher's load",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Teacher load", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Teacher not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/holidays": {
            "get": {
                "tags": ["Holidays"],
                "summary": "List holidays",
                "parameters": [
                    {"name": "from", "in": "query", "type": "string", "required": false},
                    {"name": "to", "in": "query", "type": "string", "required": false}
                ],
                "responses": {
                    "200": {"description": "Holidays", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Holidays"],
                "summary": "Create a holiday",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateHolidayRequest"}}
                ],
                "responses": {
                    "201": {"description": "Holiday created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/holidays/{id}": {
            "delete": {
                "tags": ["Holidays"],
                "summary": "Delete a holiday",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        }
    },
    "definitions": {
        "AssignRequest": {
            "type": "object",
            "required": ["teacher_id", "day", "period"],
            "properties": {
                "teacher_id": {"type": "string"},
                "day": {"type": "string", "enum": ["MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"]},
                "period": {"type": "integer", "minimum": 1},
                "period_type": {"type": "string", "enum": ["REGULAR", "LAB", "SPORTS", "LIBRARY"]}
            }
        },
        "ResolveDropRequest": {
            "type": "object",
            "required": ["batch_id"],
            "properties": {
                "batch_id": {"type": "string"},
                "period_type": {"type": "string"}
            }
        },
        "MoveRequest": {
            "type": "object",
            "required": ["entry_id", "day", "period"],
            "properties": {
                "entry_id": {"type": "string"},
                "day": {"type": "string"},
                "period": {"type": "integer", "minimum": 1}
            }
        },
        "PropagateRequest": {
            "type": "object",
            "required": ["target_week_starts"],
            "properties": {
                "target_week_starts": {"type": "array", "items": {"type": "string", "format": "date"}},
                "skip_holidays": {"type": "boolean"},
                "teacher_id": {"type": "string"},
                "batch_id": {"type": "string"}
            }
        },
        "RecognizedEntry": {
            "type": "object",
            "required": ["day", "period", "subject", "teacher"],
            "properties": {
                "day": {"type": "string"},
                "period": {"type": "integer", "minimum": 1},
                "subject": {"type": "string"},
                "teacher": {"type": "string"},
                "confidence": {"type": "number", "minimum": 0, "maximum": 1}
            }
        },
        "ImportValidateRequest": {
            "type": "object",
            "required": ["batch_id", "entries"],
            "properties": {
                "batch_id": {"type": "string"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/RecognizedEntry"}}
            }
        },
        "ImportCommitRequest": {
            "type": "object",
            "required": ["batch_id", "entries"],
            "properties": {
                "batch_id": {"type": "string"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/RecognizedEntry"}},
                "acknowledge_warnings": {"type": "boolean"}
            }
        },
        "CreateHolidayRequest": {
            "type": "object",
            "required": ["date", "name"],
            "properties": {
                "date": {"type": "string", "format": "date"},
                "name": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
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
                "pagination": {"$ref": "#/definitions/Pagination"},
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

package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "College Fees API",
        "description": "Admin-facing college fee payment management",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Admin authentication"},
        {"name": "Courses", "description": "Course catalog"},
        {"name": "Fees", "description": "Per-semester fee schedules"},
        {"name": "Students", "description": "Student records and ledgers"},
        {"name": "Payments", "description": "Fee payments and statistics"},
        {"name": "Receipts", "description": "Proof-of-payment receipts"},
        {"name": "Dashboard", "description": "Admin dashboard snapshot"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate an admin",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses with enrollment and collection figures",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Duplicate course name"}
                }
            }
        },
        "/fee-lines": {
            "get": {
                "tags": ["Fees"],
                "summary": "List fee lines",
                "parameters": [
                    {"name": "course_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Fees"],
                "summary": "Add a semester fee line to a course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateFeeLineRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Duplicate course/semester pair"}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students with their fee ledgers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Register a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Duplicate email"}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get a student record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/students/{id}/fee-lines": {
            "get": {
                "tags": ["Fees"],
                "summary": "List the fee lines applicable to a student's course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not found"}
                }
            }
        },
        "/payments": {
            "get": {
                "tags": ["Payments"],
                "summary": "List payments",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "mode", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Payments"],
                "summary": "Record a fee payment",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RecordPaymentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Fee line does not belong to the student's course"}
                }
            }
        },
        "/payments/stats": {
            "get": {
                "tags": ["Payments"],
                "summary": "Payment statistics with per-mode breakdown",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/payments/export": {
            "get": {
                "tags": ["Payments"],
                "summary": "Export payments as CSV",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "mode", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "CSV file"}
                }
            }
        },
        "/payments/{id}/receipt": {
            "post": {
                "tags": ["Receipts"],
                "summary": "Issue a receipt for a completed payment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Receipt already issued"},
                    "422": {"description": "Payment not completed"}
                }
            }
        },
        "/receipts/{number}": {
            "get": {
                "tags": ["Receipts"],
                "summary": "Resolve a printable receipt by its number",
                "parameters": [
                    {"name": "number", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/receipts/{number}/pdf": {
            "get": {
                "tags": ["Receipts"],
                "summary": "Download a printable receipt as PDF",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "number", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF file"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard counters, recent payments and per-course revenue",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "CreateCourseRequest": {
            "type": "object",
            "required": ["name", "duration_years", "total_fees"],
            "properties": {
                "name": {"type": "string"},
                "duration_years": {"type": "integer", "minimum": 1, "maximum": 6},
                "total_fees": {"type": "number"}
            }
        },
        "CreateFeeLineRequest": {
            "type": "object",
            "required": ["course_id", "semester", "amount"],
            "properties": {
                "course_id": {"type": "string"},
                "semester": {"type": "integer", "minimum": 1, "maximum": 12},
                "amount": {"type": "number"},
                "description": {"type": "string"}
            }
        },
        "CreateStudentRequest": {
            "type": "object",
            "required": ["name", "email", "phone", "course_id", "admission_year"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "course_id": {"type": "string"},
                "admission_year": {"type": "integer"}
            }
        },
        "RecordPaymentRequest": {
            "type": "object",
            "required": ["student_id", "fee_id", "amount_paid", "mode", "status"],
            "properties": {
                "student_id": {"type": "string"},
                "fee_id": {"type": "string"},
                "payment_date": {"type": "string", "format": "date-time"},
                "amount_paid": {"type": "number"},
                "mode": {"type": "string", "enum": ["Cash", "Card", "UPI", "Net Banking", "Cheque"]},
                "status": {"type": "string", "enum": ["Pending", "Completed", "Failed", "Refunded"]},
                "transaction_id": {"type": "string"},
                "remarks": {"type": "string"}
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

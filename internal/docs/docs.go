// Package docs provides the swagger specification served at /swagger.
// Regenerate with `swag init -g cmd/api/main.go -o internal/docs` after
// changing handler annotations.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Service status"}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get all categories",
                "responses": {
                    "200": {"description": "List of categories"},
                    "500": {"description": "Server error"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create a category",
                "responses": {
                    "201": {"description": "Category created"},
                    "400": {"description": "Invalid input"},
                    "500": {"description": "Server error"}
                }
            }
        },
        "/categories/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Update category",
                "responses": {
                    "200": {"description": "Updated category"},
                    "400": {"description": "Invalid input"},
                    "404": {"description": "Category not found"},
                    "500": {"description": "Server error"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Delete category",
                "responses": {
                    "200": {"description": "Category deleted"},
                    "400": {"description": "Category has expenses"},
                    "404": {"description": "Category not found"},
                    "500": {"description": "Server error"}
                }
            }
        },
        "/expenses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Get all expenses",
                "responses": {
                    "200": {"description": "List of expenses"},
                    "500": {"description": "Server error"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Create an expense",
                "responses": {
                    "201": {"description": "Expense created"},
                    "400": {"description": "Invalid input"},
                    "404": {"description": "Category not found"},
                    "500": {"description": "Server error"}
                }
            }
        },
        "/expenses/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Update expense",
                "responses": {
                    "200": {"description": "Updated expense"},
                    "400": {"description": "Invalid input"},
                    "404": {"description": "Expense or category not found"},
                    "500": {"description": "Server error"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Delete expense",
                "responses": {
                    "200": {"description": "Expense deleted"},
                    "404": {"description": "Expense not found"},
                    "500": {"description": "Server error"}
                }
            }
        },
        "/budgets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["budgets"],
                "summary": "Get all budgets",
                "responses": {
                    "200": {"description": "List of budgets"},
                    "500": {"description": "Server error"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["budgets"],
                "summary": "Create a budget",
                "responses": {
                    "201": {"description": "Budget created"},
                    "400": {"description": "Invalid input or budget already exists"},
                    "404": {"description": "Category not found"},
                    "500": {"description": "Server error"}
                }
            }
        },
        "/budgets/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["budgets"],
                "summary": "Update budget",
                "responses": {
                    "200": {"description": "Updated budget"},
                    "400": {"description": "Invalid input or budget already exists"},
                    "404": {"description": "Budget or category not found"},
                    "500": {"description": "Server error"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["budgets"],
                "summary": "Delete budget",
                "responses": {
                    "200": {"description": "Budget deleted"},
                    "404": {"description": "Budget not found"},
                    "500": {"description": "Server error"}
                }
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Get dashboard",
                "responses": {
                    "200": {"description": "Dashboard summary"},
                    "500": {"description": "Server error"}
                }
            }
        },
        "/analytics/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Get analytics summary",
                "responses": {
                    "200": {"description": "Analytics summary"},
                    "500": {"description": "Server error"}
                }
            }
        },
        "/insights": {
            "get": {
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Get AI insights",
                "responses": {
                    "200": {"description": "Narrative insights with numeric summary"},
                    "500": {"description": "Insight generation failed"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Spendwise API",
	Description:      "Spendwise is a personal expense manager: spending categories, expenses, recurring monthly budgets, and derived dashboard, analytics, and AI insight views.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

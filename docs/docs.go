// Package docs registers the OpenAPI description served under /swagger.
// Keep it in step with the godoc annotations on the HTTP handlers.
package docs

import "github.com/swaggo/swag/v2"

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
        "/profit-loss": {
            "get": {
                "tags": ["profit-loss"],
                "summary": "List profit and loss statements",
                "operationId": "listProfitLoss",
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/topic"},
                    {"$ref": "#/parameters/startPeriod"},
                    {"$ref": "#/parameters/endPeriod"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/statement.ProfitLossStatement"}}},
                    "400": {"$ref": "#/responses/BadRequest"}
                }
            }
        },
        "/profit-loss/{id}": {
            "put": {
                "tags": ["profit-loss"],
                "summary": "Partially update a profit and loss statement",
                "operationId": "updateProfitLoss",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateProfitLossRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/statement.ProfitLossStatement"}},
                    "400": {"$ref": "#/responses/BadRequest"},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            }
        },
        "/profit-loss/summary": {
            "get": {
                "tags": ["profit-loss"],
                "summary": "Summarize the latest profit and loss period of a topic",
                "operationId": "profitLossSummary",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/requiredTopic"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"$ref": "#/responses/BadRequest"},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            }
        },
        "/profit-loss/topics": {
            "get": {
                "tags": ["profit-loss"],
                "summary": "List profit and loss topics",
                "operationId": "profitLossTopics",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TopicsResponse"}}}
            }
        },
        "/balance-sheet": {
            "get": {
                "tags": ["balance-sheet"],
                "summary": "List balance sheets",
                "operationId": "listBalanceSheets",
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/topic"},
                    {"$ref": "#/parameters/startPeriod"},
                    {"$ref": "#/parameters/endPeriod"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/statement.BalanceSheet"}}},
                    "400": {"$ref": "#/responses/BadRequest"}
                }
            }
        },
        "/balance-sheet/{id}": {
            "put": {
                "tags": ["balance-sheet"],
                "summary": "Partially update a balance sheet",
                "operationId": "updateBalanceSheet",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/statement.BalanceSheet"}},
                    "400": {"$ref": "#/responses/BadRequest"},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            }
        },
        "/balance-sheet/summary": {
            "get": {
                "tags": ["balance-sheet"],
                "summary": "Summarize the latest balance sheet period of a topic",
                "operationId": "balanceSheetSummary",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/requiredTopic"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"$ref": "#/responses/BadRequest"},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            }
        },
        "/balance-sheet/topics": {
            "get": {
                "tags": ["balance-sheet"],
                "summary": "List balance sheet topics",
                "operationId": "balanceSheetTopics",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TopicsResponse"}}}
            }
        },
        "/cash-flow": {
            "get": {
                "tags": ["cash-flow"],
                "summary": "List cash flow statements",
                "operationId": "listCashFlows",
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/topic"},
                    {"$ref": "#/parameters/startPeriod"},
                    {"$ref": "#/parameters/endPeriod"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/statement.CashFlowStatement"}}},
                    "400": {"$ref": "#/responses/BadRequest"}
                }
            }
        },
        "/cash-flow/{id}": {
            "put": {
                "tags": ["cash-flow"],
                "summary": "Partially update a cash flow statement",
                "operationId": "updateCashFlow",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/statement.CashFlowStatement"}},
                    "400": {"$ref": "#/responses/BadRequest"},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            }
        },
        "/cash-flow/summary": {
            "get": {
                "tags": ["cash-flow"],
                "summary": "Summarize the latest cash flow period of a topic",
                "operationId": "cashFlowSummary",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/requiredTopic"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"$ref": "#/responses/BadRequest"},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            }
        },
        "/cash-flow/topics": {
            "get": {
                "tags": ["cash-flow"],
                "summary": "List cash flow topics",
                "operationId": "cashFlowTopics",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TopicsResponse"}}}
            }
        },
        "/pl-accounts": {
            "get": {
                "tags": ["pl-accounts"],
                "summary": "List P&L accounts",
                "operationId": "listPlAccounts",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ledger.PlAccount"}}}}
            },
            "post": {
                "tags": ["pl-accounts"],
                "summary": "Create a P&L account",
                "operationId": "createPlAccount",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreatePlAccountRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ledger.PlAccount"}},
                    "400": {"$ref": "#/responses/BadRequest"}
                }
            }
        },
        "/pl-accounts/search": {
            "get": {
                "tags": ["pl-accounts"],
                "summary": "Search P&L accounts by name",
                "operationId": "searchPlAccounts",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/q"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ledger.PlAccount"}}},
                    "400": {"$ref": "#/responses/BadRequest"}
                }
            }
        },
        "/pl-accounts/{id}": {
            "get": {
                "tags": ["pl-accounts"],
                "summary": "Get a P&L account",
                "operationId": "getPlAccount",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ledger.PlAccount"}},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            },
            "put": {
                "tags": ["pl-accounts"],
                "summary": "Update a P&L account",
                "operationId": "updatePlAccount",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreatePlAccountRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ledger.PlAccount"}},
                    "400": {"$ref": "#/responses/BadRequest"},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            },
            "delete": {
                "tags": ["pl-accounts"],
                "summary": "Delete a P&L account",
                "operationId": "deletePlAccount",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            }
        },
        "/io-mappings": {
            "get": {
                "tags": ["io-mappings"],
                "summary": "List IO mappings",
                "operationId": "listIoMappings",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ledger.IoMapping"}}}}
            },
            "post": {
                "tags": ["io-mappings"],
                "summary": "Create an IO mapping",
                "operationId": "createIoMapping",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ledger.IoMapping"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ledger.IoMapping"}},
                    "400": {"$ref": "#/responses/BadRequest"}
                }
            }
        },
        "/io-mappings/{id}": {
            "get": {
                "tags": ["io-mappings"],
                "summary": "Get an IO mapping",
                "operationId": "getIoMapping",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ledger.IoMapping"}},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            },
            "put": {
                "tags": ["io-mappings"],
                "summary": "Update an IO mapping",
                "operationId": "updateIoMapping",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ledger.IoMapping"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ledger.IoMapping"}},
                    "400": {"$ref": "#/responses/BadRequest"},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            },
            "delete": {
                "tags": ["io-mappings"],
                "summary": "Delete an IO mapping",
                "operationId": "deleteIoMapping",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            }
        },
        "/companies": {
            "get": {
                "tags": ["companies"],
                "summary": "List companies",
                "operationId": "listCompanies",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/market.Company"}}}}
            },
            "post": {
                "tags": ["companies"],
                "summary": "Create a company",
                "operationId": "createCompany",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/market.Company"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/market.Company"}},
                    "400": {"$ref": "#/responses/BadRequest"}
                }
            }
        },
        "/companies/search": {
            "get": {
                "tags": ["companies"],
                "summary": "Search companies by name or code",
                "operationId": "searchCompanies",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/q"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/market.Company"}}},
                    "400": {"$ref": "#/responses/BadRequest"}
                }
            }
        },
        "/companies/{id}": {
            "get": {
                "tags": ["companies"],
                "summary": "Get a company",
                "operationId": "getCompany",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/market.Company"}},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            },
            "put": {
                "tags": ["companies"],
                "summary": "Update a company",
                "operationId": "updateCompany",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/market.Company"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/market.Company"}},
                    "400": {"$ref": "#/responses/BadRequest"},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            },
            "delete": {
                "tags": ["companies"],
                "summary": "Delete a company",
                "operationId": "deleteCompany",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            }
        },
        "/market-data": {
            "get": {
                "tags": ["market"],
                "summary": "List market quotes",
                "operationId": "listMarketData",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}}
            }
        },
        "/market-data/{symbol}": {
            "get": {
                "tags": ["market"],
                "summary": "Get the quote for a symbol",
                "operationId": "getMarketData",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/symbol"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            }
        },
        "/business-news": {
            "get": {
                "tags": ["market"],
                "summary": "List business news",
                "operationId": "listBusinessNews",
                "produces": ["application/json"],
                "parameters": [{"name": "category", "in": "query", "type": "string", "description": "News category, \"all\" for every category"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}}
            }
        },
        "/company-metrics": {
            "get": {
                "tags": ["market"],
                "summary": "List company metrics",
                "operationId": "listCompanyMetrics",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}}
            }
        },
        "/company-metrics/{symbol}": {
            "get": {
                "tags": ["market"],
                "summary": "Get metrics for a symbol",
                "operationId": "getCompanyMetrics",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/symbol"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"$ref": "#/responses/NotFound"}
                }
            }
        },
        "/economic-indicators": {
            "get": {
                "tags": ["market"],
                "summary": "List economic indicators",
                "operationId": "listEconomicIndicators",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}}
            }
        },
        "/system/info": {
            "get": {
                "tags": ["system"],
                "summary": "Get system information",
                "operationId": "getSystemInfo",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/system/ping": {
            "get": {
                "tags": ["system"],
                "summary": "Ping the API",
                "operationId": "pingSystem",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        }
    },
    "parameters": {
        "id": {"name": "id", "in": "path", "required": true, "type": "string", "description": "Record ID"},
        "symbol": {"name": "symbol", "in": "path", "required": true, "type": "string", "description": "Ticker symbol"},
        "q": {"name": "q", "in": "query", "required": true, "type": "string", "description": "Case-insensitive substring"},
        "topic": {"name": "topic", "in": "query", "type": "string", "description": "Exact topic, \"all\" or empty for every topic"},
        "requiredTopic": {"name": "topic", "in": "query", "required": true, "type": "string", "description": "Exact topic"},
        "startPeriod": {"name": "startPeriod", "in": "query", "type": "string", "description": "Inclusive lower bound, YYYY-MM"},
        "endPeriod": {"name": "endPeriod", "in": "query", "type": "string", "description": "Inclusive upper bound, YYYY-MM"}
    },
    "responses": {
        "BadRequest": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
        "NotFound": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Validation failed"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/dto.FieldError"}}
            }
        },
        "dto.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "example": "totalRevenue"},
                "message": {"type": "string", "example": "Must be a decimal number"}
            }
        },
        "dto.TopicsResponse": {
            "type": "object",
            "properties": {"topics": {"type": "array", "items": {"type": "string"}}}
        },
        "handler.UpdateProfitLossRequest": {
            "type": "object",
            "description": "Every field is optional; amounts are decimal strings",
            "properties": {
                "topic": {"type": "string"},
                "period": {"type": "string", "example": "2024-06"},
                "totalRevenue": {"type": "string", "example": "5750000.50"},
                "isEditable": {"type": "object", "additionalProperties": {"type": "boolean"}}
            },
            "additionalProperties": {"type": "string"}
        },
        "handler.CreatePlAccountRequest": {
            "type": "object",
            "required": ["plAccount"],
            "properties": {"plAccount": {"type": "string", "maxLength": 200, "minLength": 1}}
        },
        "statement.ProfitLossStatement": {"$ref": "#/definitions/statement.Record"},
        "statement.BalanceSheet": {"$ref": "#/definitions/statement.Record"},
        "statement.CashFlowStatement": {"$ref": "#/definitions/statement.Record"},
        "statement.Record": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "topic": {"type": "string", "example": "บริษัท ABC จำกัด"},
                "period": {"type": "string", "example": "2024-06"},
                "isEditable": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            },
            "additionalProperties": {"type": "string"}
        },
        "ledger.PlAccount": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "plAccount": {"type": "string", "example": "Sales Revenue"}
            }
        },
        "ledger.IoMapping": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "description": {"type": "string"},
                "accountId": {"type": "string"}
            }
        },
        "market.Company": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "code": {"type": "string"},
                "industry": {"type": "string"},
                "description": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Financial Dashboard API",
	Description:      "Financial statements, ledger reference data and market KPIs for the dashboard",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

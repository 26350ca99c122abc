// Package docs holds the swagger document served under /api-docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Bearer token, obtained from POST /api/authenticate"
        }
    },
    "paths": {
        "/authenticate": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange credentials for a signed token",
                "responses": {
                    "200": {"description": "token, expiresIn and user summary"},
                    "400": {"description": "missing login or password"},
                    "401": {"description": "unknown user or wrong password"}
                }
            }
        },
        "/authenticate/verify": {
            "get": {
                "tags": ["auth"],
                "security": [{"BearerAuth": []}],
                "summary": "Check the bearer token and return its user id",
                "responses": {"200": {"description": "token is valid"}}
            }
        },
        "/utilisateurs": {
            "get": {"tags": ["utilisateurs"], "security": [{"BearerAuth": []}], "summary": "List users", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["utilisateurs"], "security": [{"BearerAuth": []}], "summary": "Create a user (login derived from the name when absent)", "responses": {"201": {"description": "Created"}, "400": {"description": "validation failure"}, "409": {"description": "duplicate login"}}}
        },
        "/utilisateurs/{idUtilisateur}": {
            "get": {"tags": ["utilisateurs"], "security": [{"BearerAuth": []}], "summary": "Get a user", "responses": {"200": {"description": "OK"}, "404": {"description": "not found"}}},
            "put": {"tags": ["utilisateurs"], "security": [{"BearerAuth": []}], "summary": "Replace a user", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["utilisateurs"], "security": [{"BearerAuth": []}], "summary": "Update supplied fields of a user", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["utilisateurs"], "security": [{"BearerAuth": []}], "summary": "Delete a user", "responses": {"200": {"description": "confirmation with the removed login"}, "409": {"description": "user still owns accounts or third parties"}}}
        },
        "/categories": {
            "get": {"tags": ["categories"], "security": [{"BearerAuth": []}], "summary": "List categories", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["categories"], "security": [{"BearerAuth": []}], "summary": "Create a category", "responses": {"201": {"description": "Created"}}}
        },
        "/categories/{idCategorie}": {
            "get": {"tags": ["categories"], "security": [{"BearerAuth": []}], "summary": "Get a category", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["categories"], "security": [{"BearerAuth": []}], "summary": "Rename a category", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["categories"], "security": [{"BearerAuth": []}], "summary": "Delete a category", "responses": {"200": {"description": "confirmation"}, "409": {"description": "category still referenced"}}}
        },
        "/categories/{idCategorie}/sous-categories": {
            "get": {"tags": ["sous-categories"], "security": [{"BearerAuth": []}], "summary": "List subcategories of a category", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["sous-categories"], "security": [{"BearerAuth": []}], "summary": "Create a subcategory", "responses": {"201": {"description": "Created"}}}
        },
        "/categories/{idCategorie}/sous-categories/{idSousCategorie}": {
            "get": {"tags": ["sous-categories"], "security": [{"BearerAuth": []}], "summary": "Get a subcategory", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["sous-categories"], "security": [{"BearerAuth": []}], "summary": "Rename a subcategory", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["sous-categories"], "security": [{"BearerAuth": []}], "summary": "Delete a subcategory", "responses": {"200": {"description": "confirmation"}, "409": {"description": "subcategory still referenced"}}}
        },
        "/comptes": {
            "get": {"tags": ["comptes"], "security": [{"BearerAuth": []}], "summary": "List the caller's accounts", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["comptes"], "security": [{"BearerAuth": []}], "summary": "Create an account", "responses": {"201": {"description": "Created"}}}
        },
        "/comptes/{idCompte}": {
            "get": {"tags": ["comptes"], "security": [{"BearerAuth": []}], "summary": "Get an account", "responses": {"200": {"description": "OK"}, "404": {"description": "not found or not owned"}}},
            "put": {"tags": ["comptes"], "security": [{"BearerAuth": []}], "summary": "Replace an account, resetting the running balance", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["comptes"], "security": [{"BearerAuth": []}], "summary": "Update supplied fields of an account", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["comptes"], "security": [{"BearerAuth": []}], "summary": "Delete an account", "responses": {"200": {"description": "confirmation"}, "409": {"description": "account still carries movements"}}}
        },
        "/comptes/{idCompte}/mouvements": {
            "get": {"tags": ["mouvements"], "security": [{"BearerAuth": []}], "summary": "List the movements of one account", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["mouvements"], "security": [{"BearerAuth": []}], "summary": "Create a movement on this account", "responses": {"201": {"description": "Created"}}}
        },
        "/tiers": {
            "get": {"tags": ["tiers"], "security": [{"BearerAuth": []}], "summary": "List the caller's third parties", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["tiers"], "security": [{"BearerAuth": []}], "summary": "Create a third party", "responses": {"201": {"description": "Created"}}}
        },
        "/tiers/{idTiers}": {
            "get": {"tags": ["tiers"], "security": [{"BearerAuth": []}], "summary": "Get a third party", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["tiers"], "security": [{"BearerAuth": []}], "summary": "Rename a third party", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["tiers"], "security": [{"BearerAuth": []}], "summary": "Delete a third party", "responses": {"200": {"description": "confirmation"}, "409": {"description": "third party still referenced"}}}
        },
        "/mouvements": {
            "get": {"tags": ["mouvements"], "security": [{"BearerAuth": []}], "summary": "List the caller's movements", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["mouvements"], "security": [{"BearerAuth": []}], "summary": "Create a movement, adjusting the account balance", "responses": {"201": {"description": "Created"}, "400": {"description": "validation failure"}}}
        },
        "/mouvements/{idMouvement}": {
            "get": {"tags": ["mouvements"], "security": [{"BearerAuth": []}], "summary": "Get a movement", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["mouvements"], "security": [{"BearerAuth": []}], "summary": "Update date, category or subcategory of a movement", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["mouvements"], "security": [{"BearerAuth": []}], "summary": "Delete a movement, reversing its balance effect", "responses": {"200": {"description": "confirmation"}}}
        },
        "/virements": {
            "get": {"tags": ["virements"], "security": [{"BearerAuth": []}], "summary": "List the caller's transfers", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["virements"], "security": [{"BearerAuth": []}], "summary": "Create a transfer with its two linked movements", "responses": {"201": {"description": "Created"}}}
        },
        "/virements/{idVirement}": {
            "get": {"tags": ["virements"], "security": [{"BearerAuth": []}], "summary": "Get a transfer", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["virements"], "security": [{"BearerAuth": []}], "summary": "Update date or category of a transfer and its legs", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["virements"], "security": [{"BearerAuth": []}], "summary": "Delete a transfer, its legs and both balance effects", "responses": {"200": {"description": "confirmation"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Ecureuil bookkeeping API",
	Description:      "Personal-finance bookkeeping: users, accounts, third parties, categorized movements and inter-account transfers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

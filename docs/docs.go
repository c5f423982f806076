// Package docs registra la spec OpenAPI que sirve /swagger/*.
// Mantenida a mano; si se agregan rutas, actualizar docTemplate.
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
        "/events": {
            "get": {
                "description": "Lista todos los eventos del household, del más reciente al más antiguo.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Listar eventos",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "description": "Registra un evento de cuidado (food, litter, medicine, vitals).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Registrar evento",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/events/summary": {
            "get": {
                "description": "Último evento por tipo y mascota, con edad relativa.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Resumen de últimos eventos",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/events/day": {
            "get": {
                "description": "Agregado de un día calendario por tipo y mascota.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Vista de un día",
                "parameters": [
                    {"type": "string", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/events/days": {
            "get": {
                "description": "Días recientes con actividad, hacia atrás desde start.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Vista de varios días",
                "parameters": [
                    {"type": "string", "name": "start", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/households": {
            "post": {
                "description": "Crea un household y agrega al creador como miembro.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["households"],
                "summary": "Crear household",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/pets": {
            "get": {
                "description": "Lista las mascotas del household del solicitante.",
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "description": "Registra una mascota (cat o dog) en el household.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Crear mascota",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/saved-events/{savedID}/log": {
            "post": {
                "description": "Registra un evento a partir de una plantilla guardada.",
                "produces": ["application/json"],
                "tags": ["saved-events"],
                "summary": "Registrar desde plantilla",
                "parameters": [
                    {"type": "string", "name": "savedID", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Not Found"}
                }
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
	Title:            "Pet Care Tracker API",
	Description:      "Registro de cuidados de mascotas por hogar: eventos, resúmenes diarios y catálogo.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

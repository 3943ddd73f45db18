// Package clinic registers the API's swagger document with swag. It is
// regenerated with `swag init -g internal/clinic/http/router.go -o api/clinic`.
package clinic

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "AussieBroadWAN Team",
			"url": "https://github.com/aussiebroadwan/clinic"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/api/auth/register": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "Register a patient",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinicsdk.RegisterPatientResponse"
						}
					},
					"400": {
						"description": "Email already exists.",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"429": {
						"description": "Too many requests",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/clinicsdk.ServerErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinicsdk.RegisterPatientRequest"
						}
					}
				]
			}
		},
		"/api/auth/login": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "Patient login",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinicsdk.LoginResponse"
						}
					},
					"401": {
						"description": "Invalid email. / Invalid password.",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"429": {
						"description": "Too many requests",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinicsdk.LoginRequest"
						}
					}
				]
			}
		},
		"/api/auth/admin-login": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "Admin login (hashed password)",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinicsdk.AdminLoginResponse"
						}
					},
					"401": {
						"description": "Invalid admin email. / Invalid admin password.",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/clinicsdk.ServerErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinicsdk.LoginRequest"
						}
					}
				]
			}
		},
		"/api/auth/doctor-login": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Auth"
				],
				"summary": "Doctor login",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinicsdk.DoctorLoginResponse"
						}
					},
					"401": {
						"description": "Invalid email or password",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinicsdk.LoginRequest"
						}
					}
				]
			}
		},
		"/api/AdminAuth/register": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"AdminAuth"
				],
				"summary": "Register an admin",
				"responses": {
					"200": {
						"description": "Admin registered successfully",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"400": {
						"description": "Admin already exists",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinicsdk.RegisterAdminRequest"
						}
					}
				]
			}
		},
		"/api/AdminAuth/login": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"AdminAuth"
				],
				"summary": "Admin login",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinicsdk.AdminAuthLoginResponse"
						}
					},
					"401": {
						"description": "Invalid credentials",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinicsdk.LoginRequest"
						}
					}
				]
			}
		},
		"/api/doctors": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Doctors"
				],
				"summary": "List doctors",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/clinicsdk.DoctorSummary"
							}
						}
					}
				}
			}
		},
		"/api/doctors/list": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Doctors"
				],
				"summary": "List doctors with details",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/clinicsdk.Doctor"
							}
						}
					}
				}
			}
		},
		"/api/doctors/register": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Doctors"
				],
				"summary": "Register a doctor",
				"responses": {
					"200": {
						"description": "Doctor registered successfully!",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/clinicsdk.ValidationErrorResponse"
						}
					},
					"500": {
						"description": "Error registering doctor",
						"schema": {
							"$ref": "#/definitions/clinicsdk.ServerErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinicsdk.RegisterDoctorRequest"
						}
					}
				]
			}
		},
		"/api/doctors/details/{doctorID}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Doctors"
				],
				"summary": "Doctor details",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinicsdk.Doctor"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"404": {
						"description": "Doctor not found",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "doctorID",
						"name": "doctorID",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/doctors/byemail/{email}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Doctors"
				],
				"summary": "Doctor by email",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinicsdk.Doctor"
						}
					},
					"404": {
						"description": "Doctor not found",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "email",
						"name": "email",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/doctors/{doctorID}/appointments": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Doctors"
				],
				"summary": "Doctor appointments",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/clinicsdk.DoctorAppointment"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"404": {
						"description": "Doctor not found",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "doctorID",
						"name": "doctorID",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/doctors/complete-appointment/{appointmentID}": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Doctors"
				],
				"summary": "Complete an appointment",
				"responses": {
					"200": {
						"description": "Appointment marked as completed.",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"404": {
						"description": "Appointment not found.",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "appointmentID",
						"name": "appointmentID",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/doctors/{doctorID}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Doctors"
				],
				"summary": "Delete a doctor",
				"responses": {
					"200": {
						"description": "Doctor deleted successfully",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"404": {
						"description": "Doctor not found",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "doctorID",
						"name": "doctorID",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/patient": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Patients"
				],
				"summary": "List patients",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/clinicsdk.Patient"
							}
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Patients"
				],
				"summary": "Add a patient",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinicsdk.Patient"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinicsdk.AddPatientRequest"
						}
					}
				]
			}
		},
		"/api/patient/{patientID}/appointments": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Patients"
				],
				"summary": "Patient appointments",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/clinicsdk.Appointment"
							}
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "patientID",
						"name": "patientID",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/patient/byemail/{email}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Patients"
				],
				"summary": "Patient id by email",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinicsdk.PatientIDResponse"
						}
					},
					"404": {
						"description": "Patient not found",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "email",
						"name": "email",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/appointment": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Appointments"
				],
				"summary": "List appointments",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinicsdk.AppointmentList"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Appointments"
				],
				"summary": "Book an appointment",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinicsdk.AppointmentResult"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/clinicsdk.AppointmentResult"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/clinicsdk.ServerErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinicsdk.BookAppointmentRequest"
						}
					}
				]
			}
		},
		"/api/appointment/{appointmentID}/status": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Appointments"
				],
				"summary": "Update appointment status",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinicsdk.AppointmentResult"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clinicsdk.MessageResponse"
						}
					},
					"404": {
						"description": "Appointment not found.",
						"schema": {
							"$ref": "#/definitions/clinicsdk.AppointmentResult"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "appointmentID",
						"name": "appointmentID",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinicsdk.UpdateStatusRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/appointment/{appointmentID}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Appointments"
				],
				"summary": "Cancel an appointment",
				"responses": {
					"200": {
						"description": "Appointment cancelled.",
						"schema": {
							"$ref": "#/definitions/clinicsdk.AppointmentResult"
						}
					},
					"404": {
						"description": "Appointment not found.",
						"schema": {
							"$ref": "#/definitions/clinicsdk.AppointmentResult"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "appointmentID",
						"name": "appointmentID",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/appointment/with-details": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Appointments"
				],
				"summary": "List appointments with names",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinicsdk.AppointmentDetailsList"
						}
					}
				}
			}
		},
		"/livez": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Health"
				],
				"summary": "Health Check Endpoint",
				"responses": {
					"200": {
						"description": "status, uptime, version",
						"schema": {
							"$ref": "#/definitions/clinicsdk.HealthResponse"
						}
					}
				}
			}
		},
		"/readyz": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Health"
				],
				"summary": "Readiness Check Endpoint",
				"responses": {
					"200": {
						"description": "status, uptime, version, checks",
						"schema": {
							"$ref": "#/definitions/clinicsdk.HealthResponse"
						}
					},
					"503": {
						"description": "service not ready",
						"schema": {
							"$ref": "#/definitions/clinicsdk.HealthResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"clinicsdk.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"clinicsdk.ServerErrorResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"error": {
					"type": "string"
				}
			}
		},
		"clinicsdk.ValidationErrorResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"details": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"clinicsdk.HealthChecks": {
			"type": "object",
			"properties": {
				"database": {
					"type": "string"
				},
				"signer": {
					"type": "string"
				}
			}
		},
		"clinicsdk.HealthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"uptime": {
					"type": "string"
				},
				"version": {
					"type": "string"
				},
				"checks": {
					"$ref": "#/definitions/clinicsdk.HealthChecks"
				}
			}
		},
		"clinicsdk.RegisterPatientRequest": {
			"type": "object",
			"properties": {
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"phoneNumber": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"firstName",
				"lastName",
				"password"
			]
		},
		"clinicsdk.RegisterPatientResponse": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"clinicsdk.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"clinicsdk.LoginResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				}
			}
		},
		"clinicsdk.AdminLoginResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"clinicsdk.DoctorLoginResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"doctorId": {
					"type": "integer"
				},
				"token": {
					"type": "string"
				}
			}
		},
		"clinicsdk.RegisterAdminRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"clinicsdk.AdminAuthLoginResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"adminID": {
					"type": "integer"
				},
				"email": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"clinicsdk.RegisterDoctorRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"specialization": {
					"type": "string"
				},
				"contact": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string",
					"maxLength": 72
				}
			},
			"required": [
				"email",
				"name",
				"password"
			]
		},
		"clinicsdk.DoctorSummary": {
			"type": "object",
			"properties": {
				"doctorID": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"clinicsdk.Doctor": {
			"type": "object",
			"properties": {
				"doctorID": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"specialization": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"contact": {
					"type": "string"
				}
			}
		},
		"clinicsdk.DoctorAppointment": {
			"type": "object",
			"properties": {
				"appointmentID": {
					"type": "integer"
				},
				"patientID": {
					"type": "integer"
				},
				"date": {
					"type": "string"
				},
				"time": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"clinicsdk.Patient": {
			"type": "object",
			"properties": {
				"patientID": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"contact": {
					"type": "string"
				},
				"email": {
					"type": "string"
				}
			}
		},
		"clinicsdk.AddPatientRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"contact": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"name",
				"password"
			]
		},
		"clinicsdk.PatientIDResponse": {
			"type": "object",
			"properties": {
				"patientID": {
					"type": "integer"
				}
			}
		},
		"clinicsdk.Appointment": {
			"type": "object",
			"properties": {
				"appointmentID": {
					"type": "integer"
				},
				"patientID": {
					"type": "integer"
				},
				"doctorID": {
					"type": "integer"
				},
				"date": {
					"type": "string"
				},
				"time": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"clinicsdk.BookAppointmentRequest": {
			"type": "object",
			"properties": {
				"patientID": {
					"type": "integer"
				},
				"doctorID": {
					"type": "integer"
				},
				"date": {
					"type": "string"
				},
				"time": {
					"type": "string"
				}
			}
		},
		"clinicsdk.UpdateStatusRequest": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				}
			},
			"required": [
				"status"
			]
		},
		"clinicsdk.AppointmentResult": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"appointment": {
					"$ref": "#/definitions/clinicsdk.Appointment"
				}
			}
		},
		"clinicsdk.AppointmentList": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/clinicsdk.Appointment"
					}
				}
			}
		},
		"clinicsdk.AppointmentDetails": {
			"type": "object",
			"properties": {
				"appointmentId": {
					"type": "integer"
				},
				"date": {
					"type": "string"
				},
				"time": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"patientName": {
					"type": "string"
				},
				"doctorName": {
					"type": "string"
				}
			}
		},
		"clinicsdk.AppointmentDetailsList": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/clinicsdk.AppointmentDetails"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "JWT access token. Format: \"Bearer {token}\".",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Clinic Appointment Service API",
	Description:      "Appointment booking for patients, doctors and administrators.\n\nLogins return HS256-signed bearer tokens valid for one hour.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

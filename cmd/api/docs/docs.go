// Package docs registers the Swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/generate-content": {
            "post": {
                "description": "Generates a markdown lesson, a 10-question quiz and a 4-week study plan for a topic",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "content"
                ],
                "summary": "Generate educational content",
                "parameters": [
                    {
                        "description": "Topic details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.GenerateContentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.GenerateContentResponse"
                        }
                    },
                    "500": {
                        "description": "Model call failed ({error} only) or its reply was not JSON ({error, rawResponse})",
                        "schema": {
                            "$ref": "#/definitions/dto.ParseErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/status": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Service status",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.StatusResponse"
                        }
                    }
                }
            }
        },
        "/api/topic-history": {
            "get": {
                "description": "Returns the most recently submitted topics, oldest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "content"
                ],
                "summary": "List recent topics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TopicHistoryResponse"
                        }
                    }
                }
            }
        },
        "/test-cors": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "CORS check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.ParseErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "Failed to parse AI response as JSON"
                },
                "rawResponse": {
                    "type": "string"
                }
            }
        },
        "dto.GenerateContentRequest": {
            "description": "Topic to generate a lesson, quiz and study plan for",
            "type": "object",
            "properties": {
                "difficultyLevel": {
                    "type": "string",
                    "enum": [
                        "beginner",
                        "intermediate",
                        "advanced"
                    ],
                    "example": "intermediate"
                },
                "topicDescription": {
                    "type": "string",
                    "example": "Insertion, deletion and traversal"
                },
                "topicName": {
                    "type": "string",
                    "example": "Binary Search Trees"
                }
            }
        },
        "dto.GenerateContentResponse": {
            "description": "Lesson markdown, quiz and study plan for one topic",
            "type": "object",
            "properties": {
                "educationalContent": {
                    "type": "string"
                },
                "generatedDate": {
                    "type": "string"
                },
                "progressionPlan": {
                    "$ref": "#/definitions/dto.ProgressionPlanResponse"
                },
                "testQuestions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.QuizQuestionResponse"
                    }
                },
                "topicName": {
                    "type": "string"
                }
            }
        },
        "dto.HistoryEntryResponse": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "topic": {
                    "type": "string"
                }
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "CORS is working!"
                }
            }
        },
        "dto.ProgressionPlanResponse": {
            "type": "object",
            "properties": {
                "recommendedNextTopics": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "weeklyPlan": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.WeekPlanResponse"
                    }
                }
            }
        },
        "dto.QuizQuestionResponse": {
            "type": "object",
            "properties": {
                "correctAnswer": {
                    "type": "string",
                    "example": "A"
                },
                "explanation": {
                    "type": "string"
                },
                "options": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "question": {
                    "type": "string"
                }
            }
        },
        "dto.StatusResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "API is running"
                }
            }
        },
        "dto.TopicHistoryResponse": {
            "type": "object",
            "properties": {
                "topicHistory": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.HistoryEntryResponse"
                    }
                }
            }
        },
        "dto.WeekPlanResponse": {
            "type": "object",
            "properties": {
                "focus": {
                    "type": "string"
                },
                "objectives": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "practiceProblems": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "topics": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "week": {
                    "type": "integer",
                    "example": 1
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "DSA Tutor API",
	Description:      "Generates data structures and algorithms lessons, quizzes and study plans with a language model.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package validation checks model-produced JSON against the shapes the
// prompts ask for. Results are advisory: callers log violations and keep the
// decoded value.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const quizSchema = `{
  "type": "array",
  "minItems": 10,
  "maxItems": 10,
  "items": {
    "type": "object",
    "required": ["question", "options", "correctAnswer", "explanation"],
    "properties": {
      "question": {"type": "string", "minLength": 1},
      "options": {"type": "array", "minItems": 4, "maxItems": 4, "items": {"type": "string"}},
      "correctAnswer": {"type": "string", "enum": ["A", "B", "C", "D"]},
      "explanation": {"type": "string"}
    }
  }
}`

const planSchema = `{
  "type": "object",
  "required": ["weeklyPlan", "recommendedNextTopics"],
  "properties": {
    "weeklyPlan": {
      "type": "array",
      "minItems": 4,
      "maxItems": 4,
      "items": {
        "type": "object",
        "required": ["week", "focus", "topics", "practiceProblems", "objectives"],
        "properties": {
          "week": {"type": "integer", "minimum": 1, "maximum": 4},
          "focus": {"type": "string"},
          "topics": {"type": "array", "items": {"type": "string"}},
          "practiceProblems": {"type": "array", "items": {"type": "string"}},
          "objectives": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "recommendedNextTopics": {"type": "array", "items": {"type": "string"}}
  }
}`

// Violation is a single schema mismatch.
type Violation struct {
	Field       string
	Description string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Description)
}

// Violations is a list of schema mismatches.
type Violations []Violation

func (vs Violations) Error() string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, "; ")
}

// Strings renders each violation for logging.
func (vs Violations) Strings() []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

// Validator holds the compiled output schemas.
type Validator struct {
	quiz *gojsonschema.Schema
	plan *gojsonschema.Schema
}

// NewValidator compiles the quiz and progression plan schemas.
func NewValidator() (*Validator, error) {
	quiz, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(quizSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile quiz schema: %w", err)
	}
	plan, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(planSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile plan schema: %w", err)
	}
	return &Validator{quiz: quiz, plan: plan}, nil
}

// ValidateQuiz checks a raw quiz JSON payload.
func (v *Validator) ValidateQuiz(payload string) Violations {
	return validate(v.quiz, payload)
}

// ValidatePlan checks a raw progression plan JSON payload.
func (v *Validator) ValidatePlan(payload string) Violations {
	return validate(v.plan, payload)
}

func validate(schema *gojsonschema.Schema, payload string) Violations {
	result, err := schema.Validate(gojsonschema.NewStringLoader(payload))
	if err != nil {
		return Violations{{Field: "(root)", Description: err.Error()}}
	}
	if result.Valid() {
		return nil
	}
	out := make(Violations, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		out = append(out, Violation{Field: re.Field(), Description: re.Description()})
	}
	return out
}

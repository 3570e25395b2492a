package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	ErrLLMServiceError ErrorCode = "LLM_SERVICE_ERROR"
	ErrQuizParse       ErrorCode = "QUIZ_PARSE_ERROR"
	ErrPlanParse       ErrorCode = "PLAN_PARSE_ERROR"
)

// MsgParseFailure is the message reported to clients for undecodable model output.
const MsgParseFailure = "Failed to parse AI response as JSON"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewLLMServiceError wraps a failed call to the model service. The upstream
// message is kept as the public message so clients see what went wrong.
func NewLLMServiceError(err error) *DomainError {
	msg := "LLM service call failed"
	if err != nil {
		msg = err.Error()
	}
	return NewError(ErrLLMServiceError, msg, err)
}

// ParseError reports model output that could not be decoded as JSON.
// RawResponse holds the untouched model reply for diagnosis.
type ParseError struct {
	Code        ErrorCode
	RawResponse string
	Err         error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", MsgParseFailure, e.Err)
	}
	return MsgParseFailure
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func NewQuizParseError(raw string, err error) *ParseError {
	return &ParseError{Code: ErrQuizParse, RawResponse: raw, Err: err}
}

func NewPlanParseError(raw string, err error) *ParseError {
	return &ParseError{Code: ErrPlanParse, RawResponse: raw, Err: err}
}

// IsLLMServiceError reports whether err wraps a failed model call.
func IsLLMServiceError(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == ErrLLMServiceError
}

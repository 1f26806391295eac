package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AuthInvalidCredentials, s.traceID)

	s.NotNil(response)
	s.False(response.Success)
	s.Equal("AUTH_001", response.Code)
	s.Equal("Invalid email or password", response.Message)
	s.Equal(s.traceID, response.TraceID)
	s.Empty(response.Errors)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"Field validation failed", "Email is required"}
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails(details...))

	s.Equal("VALIDATION_001", response.Code)
	s.Equal("Validation failed", response.Message)
	s.Equal(details, response.Errors)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithCustomMessage() {
	customMessage := "Custom error message for specific context"
	response := NewErrorResponse(SystemInternalError, s.traceID, WithMessage(customMessage))

	s.Equal("SYSTEM_001", response.Code)
	s.Equal(customMessage, response.Message)
}

func (s *ResponseTestSuite) TestNewValidationError() {
	fieldErrors := map[string]string{
		"amount": "must be positive",
	}
	response := NewValidationError(fieldErrors, s.traceID)

	s.False(response.Success)
	s.Equal("VALIDATION_001", response.Code)
	s.Equal([]string{"amount: must be positive"}, response.Errors)
}

func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("pq: connection refused")
	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err, "the internal error must surface for logging")
	s.Equal("SYSTEM_001", response.Code)
	s.NotContains(response.Message, "pq:", "internal detail must not leak to clients")
}

func (s *ResponseTestSuite) TestToJSONEnvelope() {
	response := NewErrorResponse(CategoryInUse, s.traceID, WithDetails("referenced by 3 transactions"))

	raw, err := response.ToJSON()
	s.NoError(err)

	var decoded map[string]interface{}
	s.NoError(json.Unmarshal(raw, &decoded))
	s.Equal(false, decoded["success"])
	s.Equal("CATEGORY_003", decoded["code"])
	s.Equal(s.traceID, decoded["trace_id"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected int
	}{
		{"validation", ValidationGeneral, http.StatusBadRequest},
		{"category in use", CategoryInUse, http.StatusBadRequest},
		{"missing token", AuthMissingToken, http.StatusUnauthorized},
		{"transaction not found", TransactionNotFound, http.StatusNotFound},
		{"duplicate category", CategoryAlreadyExists, http.StatusConflict},
		{"duplicate email", UserAlreadyExists, http.StatusConflict},
		{"rate limited", SystemRateLimitExceeded, http.StatusTooManyRequests},
		{"internal", SystemInternalError, http.StatusInternalServerError},
		{"unknown code", ErrorCode("NOPE_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an application error so handlers and callers can
// branch without string matching.
type ErrorKind string

const (
	KindInvalidRequest      ErrorKind = "invalid_request"
	KindDocumentParse       ErrorKind = "document_parse_error"
	KindInvalidURL          ErrorKind = "invalid_url"
	KindScrapeFailed        ErrorKind = "scrape_failed"
	KindDescriptionTooShort ErrorKind = "description_too_short"
	KindUnsupportedProvider ErrorKind = "unsupported_provider"
	KindProviderAuth        ErrorKind = "provider_auth_error"
	KindProviderRateLimited ErrorKind = "provider_rate_limited"
	KindProvider            ErrorKind = "provider_error"
)

// CustomError represents a custom application error. Every failure surfaced
// to a client is one of these; the Code is the HTTP status the handler
// responds with and Suggestion, when set, is a user-actionable hint.
type CustomError struct {
	Kind       ErrorKind `json:"kind"`
	Code       int       `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// AsCustomError unwraps err to a *CustomError if there is one in the chain.
func AsCustomError(err error) (*CustomError, bool) {
	var cerr *CustomError
	if errors.As(err, &cerr) {
		return cerr, true
	}
	return nil, false
}

// Common error constructors

func NewInvalidRequestError(message string) *CustomError {
	return &CustomError{
		Kind:    KindInvalidRequest,
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewDocumentParseError(detail string) *CustomError {
	return &CustomError{
		Kind:    KindDocumentParse,
		Code:    http.StatusBadRequest,
		Message: "Failed to read CV file",
		Detail:  detail,
	}
}

func NewInvalidURLError(detail string) *CustomError {
	return &CustomError{
		Kind:    KindInvalidURL,
		Code:    http.StatusBadRequest,
		Message: "Invalid URL format",
		Detail:  detail,
	}
}

func NewScrapeFailedError(detail string) *CustomError {
	return &CustomError{
		Kind:       KindScrapeFailed,
		Code:       http.StatusBadRequest,
		Message:    "Could not fetch the job posting from the provided URL",
		Detail:     detail,
		Suggestion: "Please copy the job description from the site and paste it into the job description field",
	}
}

func NewDescriptionTooShortError() *CustomError {
	return &CustomError{
		Kind:       KindDescriptionTooShort,
		Code:       http.StatusBadRequest,
		Message:    "The job description is too short or empty",
		Suggestion: "Please paste the complete job description",
	}
}

func NewUnsupportedProviderError(provider string) *CustomError {
	return &CustomError{
		Kind:    KindUnsupportedProvider,
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("Unsupported provider: %s", provider),
	}
}

func NewProviderAuthError(provider string) *CustomError {
	return &CustomError{
		Kind:    KindProviderAuth,
		Code:    http.StatusUnauthorized,
		Message: fmt.Sprintf("Invalid or missing API key for %s", provider),
	}
}

func NewProviderRateLimitedError(provider string) *CustomError {
	return &CustomError{
		Kind:    KindProviderRateLimited,
		Code:    http.StatusTooManyRequests,
		Message: fmt.Sprintf("%s rate limit exceeded", provider),
	}
}

func NewProviderError(provider, detail string) *CustomError {
	return &CustomError{
		Kind:    KindProvider,
		Code:    http.StatusBadGateway,
		Message: fmt.Sprintf("%s request failed", provider),
		Detail:  detail,
	}
}

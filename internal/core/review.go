// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

// ReviewRequest is the inbound payload of a review call.
// Code is a pointer so that a missing or null field can be told apart from a string.
type ReviewRequest struct {
	Code *string `json:"code"`
}

// ReviewResult is the structured review returned to the caller.
type ReviewResult struct {
	Summary     string   `json:"summary" yaml:"summary"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}

// NewReviewResult returns an empty result whose Suggestions encode as [] rather than null.
func NewReviewResult() *ReviewResult {
	return &ReviewResult{
		Summary:     "",
		Suggestions: []string{},
	}
}

// ErrorResponse is the body of a client error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of a server error.
type MessageResponse struct {
	Message string `json:"message"`
}

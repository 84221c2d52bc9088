// Package services provides the business logic layer between the HTTP
// handlers and the analytics engine. Services pull record snapshots from
// the store, run the pure transforms, and shape the results for transport.
package services

import "fmt"

// ServiceError is the error shape every service method returns on a
// client-addressable failure. Code is a stable machine-readable label
// (e.g. INVALID_INTERVAL, INVALID_METHOD) the handlers map to an HTTP
// status; Details carries optional hints such as the accepted values.
type ServiceError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error renders "CODE: message" so wrapped service errors stay
// identifiable in logs.
func (e *ServiceError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewServiceError builds a ServiceError without details.
func NewServiceError(code, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

// NewServiceErrorWithDetails builds a ServiceError carrying extra hints
// for the client.
func NewServiceErrorWithDetails(code, message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{Code: code, Message: message, Details: details}
}

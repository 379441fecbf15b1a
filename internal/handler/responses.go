package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/veylan/EmberArmory_Go/internal/domain"
	"github.com/veylan/EmberArmory_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgInvalidRequestError  = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError      = "Authentication failed. Please check your API key."
	ErrMsgTooManyRequestsError = "Too many requests. Please try again later."
	ErrMsgUnavailableError     = "Server is temporarily unavailable. Please try again later."

	// Access control messages
	ErrMsgNotAuthorizedError = "You are not authorized to perform that action"

	// Catalog messages
	ErrMsgItemExistsError   = "Item already exists"
	ErrMsgUnknownItemError  = "Unknown item"
	ErrMsgInvalidTierError  = "Invalid tier"
	ErrMsgInvalidPricesErr  = "Price list must contain one price per tier"

	// Progression messages
	ErrMsgAlreadyRegisteredErr  = "User is already registered"
	ErrMsgNotRegisteredError    = "User is not registered"
	ErrMsgTierTooHighError      = "Item tier exceeds your rank"
	ErrMsgMissingEquipmentError = "You are missing equipment for the next rank"
	ErrMsgMaxTierReachedError   = "You have already reached the maximum rank"

	// Currency messages
	ErrMsgNotEnoughEmbersError = "Not enough embers"
	ErrMsgAllowanceShortError  = "Spending allowance is too low"

	// Gas messages
	ErrMsgGasReserveError = "Gas reserve is too low"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Check for specific domain errors
	switch {
	case errors.Is(err, domain.ErrAuthorizationDenied):
		return http.StatusForbidden, ErrMsgNotAuthorizedError
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, ErrMsgItemExistsError
	case errors.Is(err, domain.ErrUnknownItem):
		return http.StatusBadRequest, ErrMsgUnknownItemError
	case errors.Is(err, domain.ErrInvalidTier):
		return http.StatusBadRequest, ErrMsgInvalidTierError
	case errors.Is(err, domain.ErrInvalidPriceList):
		return http.StatusBadRequest, ErrMsgInvalidPricesErr
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return http.StatusConflict, ErrMsgAlreadyRegisteredErr
	case errors.Is(err, domain.ErrNotRegistered):
		return http.StatusBadRequest, ErrMsgNotRegisteredError
	case errors.Is(err, domain.ErrTierTooHigh):
		return http.StatusBadRequest, ErrMsgTierTooHighError
	case errors.Is(err, domain.ErrMissingEquipment):
		return http.StatusBadRequest, ErrMsgMissingEquipmentError
	case errors.Is(err, domain.ErrMaxTierReached):
		return http.StatusBadRequest, ErrMsgMaxTierReachedError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughEmbersError
	case errors.Is(err, domain.ErrTransferFailed):
		return http.StatusBadRequest, ErrMsgAllowanceShortError
	case errors.Is(err, domain.ErrInsufficientGasReserve):
		return http.StatusBadRequest, ErrMsgGasReserveError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		// Recursively check the unwrapped error
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Default to generic message for unrecognized errors
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

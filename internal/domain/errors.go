package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Authorization errors
	ErrMsgAuthorizationDenied = "authorization denied"

	// Catalog errors
	ErrMsgAlreadyExists    = "item already exists"
	ErrMsgUnknownItem      = "unknown item"
	ErrMsgInvalidTier      = "invalid tier"
	ErrMsgInvalidPriceList = "invalid price list"

	// Progression errors
	ErrMsgAlreadyRegistered = "user already registered"
	ErrMsgNotRegistered     = "user not registered"
	ErrMsgTierTooHigh       = "tier too high"
	ErrMsgMissingEquipment  = "missing equipment"
	ErrMsgMaxTierReached    = "max tier reached"

	// Currency errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgTransferFailed    = "transfer failed"

	// Gas errors
	ErrMsgInsufficientGasReserve = "insufficient gas reserve"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Authorization errors
	ErrAuthorizationDenied = errors.New(ErrMsgAuthorizationDenied)

	// Catalog errors
	ErrAlreadyExists    = errors.New(ErrMsgAlreadyExists)
	ErrUnknownItem      = errors.New(ErrMsgUnknownItem)
	ErrInvalidTier      = errors.New(ErrMsgInvalidTier)
	ErrInvalidPriceList = errors.New(ErrMsgInvalidPriceList)

	// Progression errors
	ErrAlreadyRegistered = errors.New(ErrMsgAlreadyRegistered)
	ErrNotRegistered     = errors.New(ErrMsgNotRegistered)
	ErrTierTooHigh       = errors.New(ErrMsgTierTooHigh)
	ErrMissingEquipment  = errors.New(ErrMsgMissingEquipment)
	ErrMaxTierReached    = errors.New(ErrMsgMaxTierReached)

	// Currency errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrTransferFailed    = errors.New(ErrMsgTransferFailed)

	// Gas errors
	ErrInsufficientGasReserve = errors.New(ErrMsgInsufficientGasReserve)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

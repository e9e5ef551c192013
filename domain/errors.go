package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrConfigurationMissing   = errors.New("configuration missing")
	ErrWalletUnavailable      = errors.New("wallet unavailable")
	ErrContractAddressMissing = errors.New("contract address missing")
	ErrUploadFailure          = errors.New("upload failure")
	ErrTransactionFailed      = errors.New("transaction failed")
	ErrMetadataUnresolvable   = errors.New("metadata unresolvable")
	ErrEventNotFound          = errors.New("event not found in receipt")
	ErrInvalidNumberFormat    = errors.New("invalid number format")

	// flow errors
	ErrTimeout          = errors.New("flow timed out")
	ErrCancelled        = errors.New("flow cancelled")
	ErrFlowBusy         = errors.New("another write is in flight")
	ErrActionNotOffered = errors.New("action not offered to this viewer")
	ErrNotConnected     = errors.New("wallet not connected")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")
)

package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")

	// settlement engine
	ErrInvalidPrice         = errors.New("invalid price")
	ErrInvalidTimeRange     = errors.New("invalid time range")
	ErrNotSeller            = errors.New("caller is not the seller")
	ErrListingNotActive     = errors.New("listing not active")
	ErrAuctionNotStarted    = errors.New("auction not started")
	ErrAuctionNotEnded      = errors.New("auction not ended")
	ErrAuctionEnded         = errors.New("auction ended")
	ErrBidTooLow            = errors.New("bid too low")
	ErrAlreadySettled       = errors.New("auction already settled")
	ErrCollectionNotAllowed = errors.New("collection not allowed")

	// distribution engine
	ErrInvalidSplits = errors.New("invalid splits")

	// shared
	ErrNotAuthorizedCaller = errors.New("caller not authorized")
	ErrTransferFailed      = errors.New("transfer failed")
	ErrInsufficientFunds   = errors.New("insufficient funds")
)

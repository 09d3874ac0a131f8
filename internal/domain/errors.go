package domain

import "errors"

var (
	// ErrItemNotFound is returned when an item id is not in the session store
	ErrItemNotFound = errors.New("quote item not found")

	// ErrDuplicateID is returned when a collection carries two items with the same id
	ErrDuplicateID = errors.New("duplicate item id in collection")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrExtractionFailure is returned when the extraction service request fails
	ErrExtractionFailure = errors.New("extraction service request failed")

	// ErrNoItems is returned when an operation needs items and the session has none
	ErrNoItems = errors.New("no quote items in session")
)

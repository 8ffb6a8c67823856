package state

import "errors"

var (
	// ErrSelectionFull is returned when adding beyond MaxCompareSelection.
	ErrSelectionFull = errors.New("comparison selection is full")
)

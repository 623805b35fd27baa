package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrLotFull is returned when the occupancy counter reports no
	// capacity.
	ErrLotFull = errors.New("parking lot is full")

	// ErrLotDesync is the lot-full variant raised when the counter
	// claimed capacity but the physical slot scan found none. It matches
	// ErrLotFull under errors.Is.
	ErrLotDesync = fmt.Errorf("%w (state desync detected)", ErrLotFull)

	ErrTicketNotFound = errors.New("ticket not found")

	ErrEmptyPlate = errors.New("plate number cannot be empty")
)

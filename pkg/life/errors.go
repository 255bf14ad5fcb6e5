package life

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for a row or column outside the grid.
	ErrOutOfRange = errors.New("life: cell out of range")
	// ErrZeroDimension is returned when a width or height of zero is requested.
	ErrZeroDimension = errors.New("life: width and height must be at least 1")
	// ErrUnknownPattern is returned by Place for a name with no built-in pattern.
	ErrUnknownPattern = errors.New("life: unknown pattern")
)

// RangeError describes a rejected cell address.
type RangeError struct {
	Row, Column   uint32
	Height, Width uint32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("life: cell (%d,%d) out of range for %dx%d grid", e.Row, e.Column, e.Width, e.Height)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func (u *Universe) checkBounds(row, column uint32) error {
	if row >= u.height || column >= u.width {
		return &RangeError{Row: row, Column: column, Height: u.height, Width: u.width}
	}
	return nil
}

func checkDimensions(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrZeroDimension, width, height)
	}
	return nil
}

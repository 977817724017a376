package ggbutton

import "errors"

// Sentinel errors returned by Decorator operations.
var (
	// ErrClosed is returned when a closed Decorator is asked to decorate.
	ErrClosed = errors.New("ggbutton: decorator is closed")

	// ErrNotDecorated is returned when undecorating a widget that has no
	// active decoration.
	ErrNotDecorated = errors.New("ggbutton: widget is not decorated")

	// ErrAlreadyDecorated is returned when decorating a widget twice.
	ErrAlreadyDecorated = errors.New("ggbutton: widget is already decorated")

	// ErrNilWidget is returned when a nil widget is passed.
	ErrNilWidget = errors.New("ggbutton: nil widget")

	// ErrInvalidStyle is returned by Style.Validate and New.
	ErrInvalidStyle = errors.New("ggbutton: invalid style")
)

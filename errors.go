package dlist

import "errors"

var (
	ErrInvalidValueType     = errors.New("value must be an integer, float, or text")
	ErrNotFound             = errors.New("value not found")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrEmptyContainer       = errors.New("container is empty")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the parent of every input validation error.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrInvalidURL    = fmt.Errorf("%w: invalid url", ErrInvalidInput)
	ErrInvalidCode   = fmt.Errorf("%w: invalid code", ErrInvalidInput)
	ErrInvalidExpiry = fmt.Errorf("%w: invalid expires_in_days", ErrInvalidInput)
	ErrInvalidNote   = fmt.Errorf("%w: invalid note", ErrInvalidInput)
)

var (
	ErrNotFound            = errors.New("link not found")
	ErrExpired             = errors.New("link expired")
	ErrCodeAlreadyExists   = errors.New("code already exists")
	ErrAllocationExhausted = errors.New("code allocation exhausted")
)

package config

import "errors"

var (
	ErrBaseURLEmpty   = errors.New("BASE_URL is empty")
	ErrInvalidBaseURL = errors.New("BASE_URL is invalid")

	ErrDatabaseURLEmpty   = errors.New("DATABASE_URL is empty")
	ErrInvalidDatabaseURL = errors.New("DATABASE_URL is invalid")

	ErrInvalidDuration = errors.New("invalid duration env")
	ErrInvalidInt      = errors.New("invalid int env")
	ErrInvalidBool     = errors.New("invalid bool env")

	ErrInvalidDBPool     = errors.New("invalid db pool config")
	ErrInvalidLogConfig  = errors.New("invalid log config")
	ErrInvalidCodeConfig = errors.New("invalid code allocation config")
)

package config

import "errors"

// Validation errors returned when a config group is incomplete or invalid.
var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidAccountConfigs = errors.New("invalid account configuration")
	ErrInvalidCryptoConfigs  = errors.New("invalid crypto configuration")
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)

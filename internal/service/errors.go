package service

import "errors"

var (
	// ErrKeyNotFound is returned by Unlock when no master key file exists.
	ErrKeyNotFound = errors.New("master key was not found")

	// ErrKeyExists is returned when a master key would be overwritten.
	ErrKeyExists = errors.New("master key already exists")

	// ErrKeyFile is returned when the master key file cannot be read or written.
	ErrKeyFile = errors.New("master key file error")

	// ErrExportWrite is returned when the export bundle cannot be written.
	ErrExportWrite = errors.New("failed to write export bundle")

	// ErrOperationInFlight is returned when a vault call starts while an
	// earlier one, typically timed out, has not finished yet.
	ErrOperationInFlight = errors.New("previous operation still running")
)

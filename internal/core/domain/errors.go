package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownFlag is returned when a generation flag name cannot be parsed.
	ErrUnknownFlag = zerr.New("unknown generation flag")

	// ErrDuplicateProjectName is returned when two catalog entries map to the same project name.
	ErrDuplicateProjectName = zerr.New("duplicate project name")

	// ErrUnknownLoggingLevel is returned when a logging level name cannot be parsed.
	ErrUnknownLoggingLevel = zerr.New("unknown logging level")

	// ErrInvalidExtension is returned when a configured file extension lacks its leading dot.
	ErrInvalidExtension = zerr.New("invalid file extension")

	// ErrInvalidManifest is returned when the build manifest contains unknown values.
	ErrInvalidManifest = zerr.New("invalid build manifest")

	// ErrResponseFileNotFound is returned when a compiler response file cannot be read.
	ErrResponseFileNotFound = zerr.New("response file not found")
)

// ErrRegenerationRequired is returned by status checks when project files are stale.
var ErrRegenerationRequired = zerr.New("project files need regeneration")

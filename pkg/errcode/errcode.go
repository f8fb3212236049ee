package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError
	DecodeJSONError

	// Logging errors
	CreateLogFileError

	// Laws registry errors
	LawsConfigError

	// Collector errors
	NoSpeciesError

	// Fetch errors
	TokenMissingError
	CancelledError

	// Merge errors
	MergeTargetNotFoundError

	// Images errors
	ImagesReadError
	ImagesColumnError

	// Export errors
	ExportOpenError
	ExportWriteError
)

package errors

import (
	"errors"
)

var (
	ErrUsage             = errors.New("missing file or folder path")
	ErrPathNotFound      = errors.New("path does not exist")
	ErrCredentialMissing = errors.New("wallet file not found")
	ErrCredentialInvalid = errors.New("invalid wallet file")
	ErrEmptyInput        = errors.New("no files found to upload")
	ErrIO                = errors.New("file IO")
	ErrTransaction       = errors.New("transaction failed")
	ErrNetwork           = errors.New("chunk upload failed")
)

// ExitCode maps an error returned by a run to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// IsUsage reports whether err should be followed by the usage line.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
)

// Error types for the lightning-keyword-search system
type ErrorType string

const (
	// Scan errors
	ErrorTypeScan ErrorType = "scan"
	ErrorTypeList ErrorType = "list"

	// File errors
	ErrorTypeFileNotFound ErrorType = "file_not_found"
	ErrorTypeFileTooLarge ErrorType = "file_too_large"
	ErrorTypeBinaryFile   ErrorType = "binary_file"
	ErrorTypePermission   ErrorType = "permission"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// FileError represents a failure while reading or scanning a single file.
// A FileError never aborts a scan; it is reported through the diagnostic
// sink and the file yields zero matches.
type FileError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewFileError creates a new file error with context
func NewFileError(op, path string, err error) *FileError {
	errorType := ErrorTypeFileNotFound
	if errors.Is(err, fs.ErrPermission) {
		errorType = ErrorTypePermission
	}

	return &FileError{
		Type:       errorType,
		Path:       path,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// NewFileTooLargeError creates a file error for files over the size cap
func NewFileTooLargeError(path string, size, limit int64) *FileError {
	return &FileError{
		Type:       ErrorTypeFileTooLarge,
		Path:       path,
		Operation:  "read",
		Underlying: fmt.Errorf("file is %d bytes, limit is %d", size, limit),
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *FileError) Error() string {
	return fmt.Sprintf("file %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *FileError) Unwrap() error {
	return e.Underlying
}

// ListError represents a failure to enumerate the scan directory itself.
// This is the only error class that short-circuits a run.
type ListError struct {
	Type       ErrorType
	Root       string
	Pattern    string
	Underlying error
	Timestamp  time.Time
}

// NewListError creates a new directory listing error
func NewListError(root, pattern string, err error) *ListError {
	return &ListError{
		Type:       ErrorTypeList,
		Root:       root,
		Pattern:    pattern,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ListError) Error() string {
	return fmt.Sprintf("listing %q with pattern %q failed: %v", e.Root, e.Pattern, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ListError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

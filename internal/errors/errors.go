package errors

import "fmt"

// ReadError represents a SQL file read failure
type ReadError struct {
	File    string
	Message string
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %s", e.File, e.Message)
}

// NewReadError creates a new ReadError
func NewReadError(file, message string) *ReadError {
	return &ReadError{
		File:    file,
		Message: message,
	}
}

// StoreError represents an inspection data persistence failure
type StoreError struct {
	Op      string // "save", "load", "delete"
	Path    string
	Message string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s inspection data %s: %s", e.Op, e.Path, e.Message)
}

// NewStoreError creates a new StoreError
func NewStoreError(op, path, message string) *StoreError {
	return &StoreError{
		Op:      op,
		Path:    path,
		Message: message,
	}
}

// FormatError represents a report formatting failure
type FormatError struct {
	Format  string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("failed to format report as %s: %s", e.Format, e.Message)
}

// NewFormatError creates a new FormatError
func NewFormatError(format, message string) *FormatError {
	return &FormatError{
		Format:  format,
		Message: message,
	}
}

// WatchError represents a filesystem watch failure
type WatchError struct {
	Path    string
	Message string
}

func (e *WatchError) Error() string {
	return fmt.Sprintf("failed to watch %s: %s", e.Path, e.Message)
}

// NewWatchError creates a new WatchError
func NewWatchError(path, message string) *WatchError {
	return &WatchError{
		Path:    path,
		Message: message,
	}
}

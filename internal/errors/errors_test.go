package errors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileError(t *testing.T) {
	underlying := errors.New("no such file")
	err := NewFileError("read", "/data/a.txt", underlying)

	assert.Equal(t, ErrorTypeFileNotFound, err.Type)
	assert.Equal(t, "/data/a.txt", err.Path)
	assert.Equal(t, "read", err.Operation)
	assert.Contains(t, err.Error(), "/data/a.txt")
	assert.Contains(t, err.Error(), "no such file")
	assert.Equal(t, underlying, errors.Unwrap(err))
	assert.False(t, err.Timestamp.IsZero())
}

func TestNewFileError_PermissionDetection(t *testing.T) {
	err := NewFileError("read", "/data/a.txt", fs.ErrPermission)
	assert.Equal(t, ErrorTypePermission, err.Type)
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestNewFileTooLargeError(t *testing.T) {
	err := NewFileTooLargeError("/data/huge.txt", 2048, 1024)

	assert.Equal(t, ErrorTypeFileTooLarge, err.Type)
	assert.Contains(t, err.Error(), "2048")
	assert.Contains(t, err.Error(), "1024")
}

func TestListError(t *testing.T) {
	underlying := errors.New("not a directory")
	err := NewListError("/data", "*.txt", underlying)

	assert.Equal(t, ErrorTypeList, err.Type)
	assert.Contains(t, err.Error(), `"/data"`)
	assert.Contains(t, err.Error(), `"*.txt"`)
	assert.Equal(t, underlying, errors.Unwrap(err))
}

func TestConfigError(t *testing.T) {
	underlying := errors.New("must be positive")
	err := NewConfigError("scan", "*.txt", underlying)

	assert.Contains(t, err.Error(), "scan")
	assert.Equal(t, underlying, errors.Unwrap(err))
}

// FileError supports errors.As through the sink's error interface.
func TestFileError_ErrorsAs(t *testing.T) {
	var err error = NewFileError("stat", "/data/a.txt", errors.New("gone"))

	var fileErr *FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, "stat", fileErr.Operation)
}

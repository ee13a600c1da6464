package ktx

import (
	"fmt"

	"github.com/goopsie/go-ktx/pkg/ktx/sys"
)

// Error is a non-success libktx result code. Values compare with errors.Is
// against the Err* sentinels below.
type Error int

const (
	ErrFileDataError          Error = 1
	ErrFileIsPipe             Error = 2
	ErrFileOpenFailed         Error = 3
	ErrFileOverflow           Error = 4
	ErrFileReadError          Error = 5
	ErrFileSeekError          Error = 6
	ErrFileUnexpectedEOF      Error = 7
	ErrFileWriteError         Error = 8
	ErrGLError                Error = 9
	ErrInvalidOperation       Error = 10
	ErrInvalidValue           Error = 11
	ErrNotFound               Error = 12
	ErrOutOfMemory            Error = 13
	ErrTranscodeFailed        Error = 14
	ErrUnknownFileFormat      Error = 15
	ErrUnsupportedTextureType Error = 16
	ErrUnsupportedFeature     Error = 17
	ErrLibraryNotLinked       Error = 18
)

// Error returns a host-side message so values format without a cgo call.
// The native library's own wording remains available via sys.ErrorString.
func (e Error) Error() string {
	switch e {
	case ErrFileDataError:
		return "ktx: the data in the file is inconsistent with the spec"
	case ErrFileIsPipe:
		return "ktx: the file is a pipe or named pipe"
	case ErrFileOpenFailed:
		return "ktx: the target file could not be opened"
	case ErrFileOverflow:
		return "ktx: the operation would exceed the max file size"
	case ErrFileReadError:
		return "ktx: an error occurred while reading from the file"
	case ErrFileSeekError:
		return "ktx: an error occurred while seeking in the file"
	case ErrFileUnexpectedEOF:
		return "ktx: file does not have enough data for the request"
	case ErrFileWriteError:
		return "ktx: an error occurred while writing to the file"
	case ErrGLError:
		return "ktx: GL operation error"
	case ErrInvalidOperation:
		return "ktx: the operation is not allowed in the current state"
	case ErrInvalidValue:
		return "ktx: a parameter value was not valid"
	case ErrNotFound:
		return "ktx: requested key was not found"
	case ErrOutOfMemory:
		return "ktx: not enough memory to complete the operation"
	case ErrTranscodeFailed:
		return "ktx: transcoding of block compressed texture failed"
	case ErrUnknownFileFormat:
		return "ktx: the file is not a KTX file"
	case ErrUnsupportedTextureType:
		return "ktx: the KTX file specifies an unsupported texture type"
	case ErrUnsupportedFeature:
		return "ktx: feature not included in the library or not yet implemented"
	case ErrLibraryNotLinked:
		return "ktx: a requested library was not statically linked"
	default:
		return fmt.Sprintf("ktx: error code %d", int(e))
	}
}

// NativeCode returns the libktx result code this error stands for.
func (e Error) NativeCode() int { return int(e) }

// errFromCode translates a native result code at the boundary. Success maps
// to nil; codes outside the known taxonomy degrade to ErrInvalidValue rather
// than panicking.
func errFromCode(code int) error {
	if code == sys.Success {
		return nil
	}
	e := Error(code)
	if e < ErrFileDataError || e > ErrLibraryNotLinked {
		return ErrInvalidValue
	}
	return e
}

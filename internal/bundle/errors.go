package bundle

import (
	"errors"
	"fmt"
)

// Sentinel errors for per-file intake failures.
var (
	// ErrUnsupportedType means the file extension is not pdf/png/jpg/jpeg.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrImageDecode means an image could not be decoded or converted.
	ErrImageDecode = errors.New("image decode failed")

	// ErrPDFParse means an uploaded PDF could not be parsed.
	ErrPDFParse = errors.New("pdf parse failed")

	// ErrNoDocuments means no usable documents remain after intake.
	ErrNoDocuments = errors.New("no documents to bundle")
)

// FileError wraps a per-file intake failure with the file's name.
// Intake failures are recovered: the file is excluded and the run continues.
type FileError struct {
	Name string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Warning is the user-visible form of a recovered per-file failure.
type Warning struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// warningFor converts a FileError into its user-visible message.
func warningFor(fe *FileError) Warning {
	var msg string
	switch {
	case errors.Is(fe.Err, ErrUnsupportedType):
		msg = "unsupported file type, skipped"
	case errors.Is(fe.Err, ErrImageDecode):
		msg = "image could not be converted, skipped"
	case errors.Is(fe.Err, ErrPDFParse):
		msg = "not a valid PDF, skipped"
	default:
		msg = fe.Err.Error()
	}
	return Warning{Name: fe.Name, Message: msg}
}

package ocr

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Pipeline stages, used to identify the failing step in errors.
const (
	StageExtract = "extract"
	StageOCR     = "ocr"
)

// StageError is the typed failure every engine and the pipeline surface.
// It identifies the failing stage so the HTTP layer can report a
// human-readable message without leaking stack details.
type StageError struct {
	Stage   string
	Message string
	Err     error
}

func (e *StageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s stage failed: %s: %v", e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("%s stage failed: %s", e.Stage, e.Message)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func newStageError(stage, message string, err error) *StageError {
	return &StageError{Stage: stage, Message: message, Err: err}
}

// Engine extracts text from a document on disk. Implementations always
// return a single string (possibly empty) and never panic past the boundary;
// every failure is a *StageError.
type Engine interface {
	Name() string
	ExtractText(ctx context.Context, path string) (string, error)
}

// PageSeparator joins per-page texts on the local extraction path.
const PageSeparator = "\n\n"

// IsPDF reports whether the file looks like a PDF by extension.
func IsPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// IsImage reports whether the file is a supported image by extension.
func IsImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// MimeType returns the mime type for a supported upload, or "" when the
// extension is not accepted.
func MimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	}
	return ""
}

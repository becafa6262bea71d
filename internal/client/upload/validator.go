// Package upload validates resume files before submission and simulates
// progress reporting while the real transfer is in flight.
package upload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxSize is the resume size cap in bytes.
const MaxSize = 5 * 1024 * 1024

// MIME types accepted by the backend's resume parser.
const (
	TypePDF  = "application/pdf"
	TypeDoc  = "application/msword"
	TypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrTooLarge        = errors.New("too large")
)

var allowedTypes = map[string]struct{}{
	TypePDF:  {},
	TypeDoc:  {},
	TypeDocx: {},
}

// Candidate is a file proposed for upload. It carries the declared MIME
// type only; content is never sniffed.
type Candidate struct {
	Name        string
	Size        int64
	ContentType string
}

// Validate checks the candidate against the allow-list and the size cap,
// in that order; the first failing rule wins. A rejected candidate is
// discarded by the caller, never retried.
func Validate(c Candidate) error {
	if _, ok := allowedTypes[c.ContentType]; !ok {
		return fmt.Errorf("%s: %w", c.Name, ErrUnsupportedType)
	}
	if c.Size > MaxSize {
		return fmt.Errorf("%s: %w", c.Name, ErrTooLarge)
	}
	return nil
}

// CandidateFromFile builds a Candidate for the file at path. The declared
// MIME type is derived from the extension alone, mirroring how a browser
// declares type on file selection.
func CandidateFromFile(path string) (Candidate, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Candidate{}, fmt.Errorf("stat %s: %w", path, err)
	}

	return Candidate{
		Name:        filepath.Base(path),
		Size:        info.Size(),
		ContentType: typeForExtension(path),
	}, nil
}

func typeForExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return TypePDF
	case ".doc":
		return TypeDoc
	case ".docx":
		return TypeDocx
	default:
		return "application/octet-stream"
	}
}

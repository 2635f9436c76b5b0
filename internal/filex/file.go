// Package filex contains file helpers for the resume picker boundary.
package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
)

// resumeMimeTypes maps allowed resume extensions to their MIME types.
// The allow-list is enforced here, at the picker boundary, not in the wizard.
var resumeMimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ResumeMimeType returns the MIME type for an allowed resume file name, or
// ErrUnsupportedType for anything that is not PDF/DOC/DOCX.
func ResumeMimeType(name string) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	mime, ok := resumeMimeTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
	return mime, nil
}

// ReadLimited reads the file at path, refusing files larger than maxSize
// bytes. A maxSize of zero disables the cap.
func ReadLimited(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, info.Size(), maxSize)
	}
	return os.ReadFile(path)
}

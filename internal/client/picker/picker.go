// Package picker abstracts document selection for the wizard. The type
// allow-list (PDF/DOC/DOCX) and the size cap are enforced here, at the picker
// boundary, so the wizard never sees an unsupported file.
package picker

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/ananyev/jobpilot/internal/client/models"
	"github.com/ananyev/jobpilot/internal/filex"
)

// ErrCancelled is returned when the user backs out without choosing a file.
var ErrCancelled = errors.New("document picking cancelled")

type DocumentPicker interface {
	Pick(ctx context.Context) (models.ResumeFile, error)
}

// PathPicker asks PromptFn for a file path and loads the file from disk. An
// empty path means the user cancelled.
type PathPicker struct {
	MaxSize  int64
	PromptFn func() (string, error)
}

func (p *PathPicker) Pick(ctx context.Context) (models.ResumeFile, error) {
	path, err := p.PromptFn()
	if err != nil {
		return models.ResumeFile{}, err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return models.ResumeFile{}, ErrCancelled
	}

	mime, err := filex.ResumeMimeType(path)
	if err != nil {
		return models.ResumeFile{}, err
	}
	data, err := filex.ReadLimited(path, p.MaxSize)
	if err != nil {
		return models.ResumeFile{}, err
	}

	return models.ResumeFile{
		URI:      path,
		Name:     filepath.Base(path),
		MimeType: mime,
		Data:     data,
	}, nil
}

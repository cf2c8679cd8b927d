package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is the directory reports are written under.
const DefaultDir = "reports"

// Writer persists reports under Dir.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = DefaultDir
	}
	return &Writer{Dir: dir}
}

// Path returns the destination of r. It fails when the name would resolve
// outside Dir.
func (w *Writer) Path(r *Report) (string, error) {
	name := r.FileName()
	if name != filepath.Base(name) || strings.HasPrefix(name, "..") {
		return "", fmt.Errorf("%w: report name %q leaves %s", ErrInvalidInput, name, w.Dir)
	}
	return filepath.Join(w.Dir, name), nil
}

// Save writes r as a .docx and returns its path. The document is encoded to a
// temporary file in the same directory and renamed into place, so a failure
// never leaves a partial report. An existing report of the same name is
// replaced.
func (w *Writer) Save(r *Report) (string, error) {
	path, err := w.Path(r)
	if err != nil {
		return "", err
	}
	doc, err := r.Document()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	tmp, err := os.CreateTemp(w.Dir, ".report-*.docx")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := doc.Write(tmp); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return "", fmt.Errorf("chmod document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close document: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("move document into place: %w", err)
	}
	return path, nil
}

// Package docview materializes a fetched binary document into a short-lived
// local file so an external viewer can open it. The file is a scoped
// resource: acquired by Open, released by Close, whichever comes first wins
// for the caller.
package docview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is a scoped handle on a materialized blob.
type Document struct {
	Path      string
	MediaType string

	closed bool
}

// Open writes data to a temp file whose extension follows name and returns
// the handle. Callers must Close the document when the viewing surface goes
// away.
func Open(name, mediaType string, data []byte) (*Document, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		ext = ".bin"
	}

	f, err := os.CreateTemp("", "trace-*"+ext)
	if err != nil {
		return nil, fmt.Errorf("materialize document: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("materialize document: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("materialize document: %w", err)
	}

	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return &Document{Path: f.Name(), MediaType: mediaType}, nil
}

// Close removes the materialized file. Closing twice is a no-op.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	if err := os.Remove(d.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("release document: %w", err)
	}
	return nil
}

// SaveTo copies the document into dir under fileName and returns the
// destination path. Used by the download flow, which outlives the viewer.
func (d *Document) SaveTo(dir, fileName string) (string, error) {
	if strings.TrimSpace(fileName) == "" {
		fileName = filepath.Base(d.Path)
	}
	dst := filepath.Join(dir, filepath.Base(fileName))

	data, err := os.ReadFile(d.Path)
	if err != nil {
		return "", fmt.Errorf("save document: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o660); err != nil {
		return "", fmt.Errorf("save document: %w", err)
	}
	return dst, nil
}

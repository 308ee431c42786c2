package publisher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FilePublisher writes the snapshot to a local path. Mainly useful for
// development and for serving the document behind a static web server.
type FilePublisher struct {
	dest string
}

// NewFilePublisher creates a file publisher targeting dest
func NewFilePublisher(dest string) *FilePublisher {
	if dest == "" {
		dest = "snapshot.json"
	}
	return &FilePublisher{dest: dest}
}

// Mode returns the publisher identifier
func (p *FilePublisher) Mode() string { return "file" }

// Publish writes the document and returns a file:// URL to it.
func (p *FilePublisher) Publish(_ context.Context, document []byte) (string, error) {
	if dir := filepath.Dir(p.dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create destination directory: %w", err)
		}
	}
	if err := os.WriteFile(p.dest, document, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot file: %w", err)
	}
	abs, err := filepath.Abs(p.dest)
	if err != nil {
		return "", err
	}
	return "file://" + abs, nil
}

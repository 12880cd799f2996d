// Package file persists built flow documents as human-formatted JSON
// artifacts for offline inspection.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zonder-ai/beaflow/pkg/flow"
)

// DefaultArtifactName matches the artifact the team has always reviewed.
const DefaultArtifactName = "esi_conversation_flow.json"

// Store writes flow documents under a base directory.
type Store struct {
	BasePath string
}

// New creates a Store rooted at basePath. Empty means current directory.
func New(basePath string) *Store {
	if basePath == "" {
		basePath = "."
	}
	return &Store{BasePath: basePath}
}

// Save writes the document atomically: temp file in the same directory,
// then rename. The output is indented UTF-8 with Spanish text unescaped.
// Returns the final path.
func (s *Store) Save(doc *flow.Document, filename string) (string, error) {
	if filename == "" {
		filename = DefaultArtifactName
	}

	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return "", fmt.Errorf("file: ensure directory: %w", err)
	}
	destPath := filepath.Join(s.BasePath, filename)

	data, err := doc.MarshalIndent()
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.BasePath, "tmp-flow-*.json")
	if err != nil {
		return "", fmt.Errorf("file: create temp: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("file: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("file: sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("file: close temp: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return "", fmt.Errorf("file: rename into place: %w", err)
	}
	return destPath, nil
}

// Load reads a previously saved artifact back, for round-trip checks.
func (s *Store) Load(filename string) (*flow.Document, error) {
	if filename == "" {
		filename = DefaultArtifactName
	}
	f, err := os.Open(filepath.Join(s.BasePath, filename))
	if err != nil {
		return nil, fmt.Errorf("file: open artifact: %w", err)
	}
	defer f.Close()
	return flow.Decode(f)
}

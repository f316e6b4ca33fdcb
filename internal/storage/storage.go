// Package storage persists generated artifacts as JSON files on disk.
// Files are grouped per artifact kind under the storage root, one file
// per artifact, named {timestamp}_{id}.json so a directory listing
// sorts chronologically.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Subdirectories per artifact kind.
const (
	DirAnalyses  = "analyses"
	DirBriefs    = "briefs"
	DirArticles  = "articles"
	DirCalendars = "calendars"
)

// ErrNotFound indicates no stored file matches the requested ID.
var ErrNotFound = errors.New("stored artifact not found")

// Manager writes and reads artifact JSON files under a root directory.
type Manager struct {
	root string
}

// New creates the storage root and its per-kind subdirectories.
func New(root string) (*Manager, error) {
	for _, dir := range []string{DirAnalyses, DirBriefs, DirArticles, DirCalendars} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage dir %s: %w", dir, err)
		}
	}
	return &Manager{root: root}, nil
}

// Save writes the payload as pretty-printed JSON and returns the filename.
func (m *Manager) Save(kind, id string, payload any) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode artifact: %w", err)
	}

	name := fmt.Sprintf("%s_%s.json", time.Now().Format("20060102_150405"), id)
	path := filepath.Join(m.root, kind, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	return name, nil
}

// Load reads the artifact with the given ID into dst.
func (m *Manager) Load(kind, id string, dst any) error {
	name, err := m.findByID(kind, id)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Join(m.root, kind, name))
	if err != nil {
		return fmt.Errorf("failed to read artifact: %w", err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode artifact: %w", err)
	}
	return nil
}

// List returns the stored filenames for a kind, newest first.
func (m *Manager) List(kind string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(m.root, kind))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	return names, nil
}

func (m *Manager) findByID(kind, id string) (string, error) {
	names, err := m.List(kind)
	if err != nil {
		return "", err
	}

	suffix := "_" + id + ".json"
	for _, name := range names {
		if strings.HasSuffix(name, suffix) {
			return name, nil
		}
	}
	return "", ErrNotFound
}

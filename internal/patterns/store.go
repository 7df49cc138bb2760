// Package patterns persists the user-editable ownership classification
// pattern list as a JSON file on disk.
package patterns

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/Leonidas-cyber/energia-Mexico/internal/domain"
)

// Store is a file-backed pattern list. Reads always succeed: a missing or
// unreadable file yields the built-in defaults so classification never
// stalls on persistence problems.
type Store struct {
	path   string
	logger *slog.Logger

	mu       sync.RWMutex
	patterns []domain.ClassificationPattern
}

// NewStore creates a store over the given file path and loads the current
// pattern list from it.
func NewStore(path string, logger *slog.Logger) *Store {
	s := &Store{path: path, logger: logger}
	s.patterns = s.load()
	return s
}

// Patterns returns a copy of the active pattern list.
func (s *Store) Patterns() []domain.ClassificationPattern {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ClassificationPattern, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Replace validates and persists a new pattern list, then makes it the
// active list. An empty list restores the built-in defaults.
func (s *Store) Replace(patterns []domain.ClassificationPattern) error {
	if len(patterns) == 0 {
		patterns = domain.DefaultPatterns()
	}
	for i, p := range patterns {
		if p.Substring == "" {
			return fmt.Errorf("pattern %d: empty substring", i)
		}
		switch p.Sector {
		case domain.SectorPublic, domain.SectorPrivate, domain.SectorUndetermined:
		default:
			return fmt.Errorf("pattern %d: invalid sector %q", i, p.Sector)
		}
	}

	if err := s.save(patterns); err != nil {
		return err
	}

	s.mu.Lock()
	s.patterns = patterns
	s.mu.Unlock()
	return nil
}

// Classifier returns a pattern classifier over the active list.
func (s *Store) Classifier() *domain.PatternClassifier {
	return domain.NewPatternClassifier(s.Patterns())
}

func (s *Store) load() []domain.ClassificationPattern {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("reading pattern file failed, using defaults", "path", s.path, "error", err)
		}
		return domain.DefaultPatterns()
	}

	var patterns []domain.ClassificationPattern
	if err := json.Unmarshal(data, &patterns); err != nil {
		s.logger.Warn("pattern file is corrupt, using defaults", "path", s.path, "error", err)
		return domain.DefaultPatterns()
	}
	if len(patterns) == 0 {
		return domain.DefaultPatterns()
	}
	return patterns
}

// save writes the list to a temp file in the same directory and renames it
// into place, so a crash mid-write never leaves a truncated pattern file.
func (s *Store) save(patterns []domain.ClassificationPattern) error {
	data, err := json.MarshalIndent(patterns, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal patterns: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create pattern dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "patterns-*.json")
	if err != nil {
		return fmt.Errorf("create temp pattern file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write pattern file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close pattern file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace pattern file: %w", err)
	}
	return nil
}

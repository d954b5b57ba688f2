// Package history keeps a list of the exports written to disk, newest first.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Limit caps how many entries are kept.
const Limit = 50

type Entry struct {
	Prompt    string    `json:"prompt"`
	Format    string    `json:"format"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

// Log is a JSON history file.
type Log struct {
	path string
}

// Open returns the log stored at path.
func Open(path string) *Log {
	return &Log{path: path}
}

// Default returns the log in ~/.pagecraft/history.json.
func Default() (*Log, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return Open(filepath.Join(home, ".pagecraft", "history.json")), nil
}

// Load returns the entries. A missing or unreadable file yields none.
func (l *Log) Load() ([]Entry, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return []Entry{}, nil
	}
	return entries, nil
}

func (l *Log) save(entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(l.path, data, 0644)
}

// Add prepends an entry and drops anything past Limit.
func (l *Log) Add(prompt, format, path string) error {
	entries, err := l.Load()
	if err != nil {
		return err
	}
	entries = append([]Entry{{
		Prompt:    prompt,
		Format:    format,
		Path:      path,
		CreatedAt: time.Now(),
	}}, entries...)
	if len(entries) > Limit {
		entries = entries[:Limit]
	}
	return l.save(entries)
}

// DeleteOld removes entries older than days.
func (l *Log) DeleteOld(days int) (int, error) {
	entries, err := l.Load()
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	kept := entries[:0]
	for _, e := range entries {
		if !e.CreatedAt.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	removed := len(entries) - len(kept)
	return removed, l.save(kept)
}

// Clear removes every entry.
func (l *Log) Clear() error {
	return l.save([]Entry{})
}

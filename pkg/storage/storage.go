// Package storage reads and writes the JSON documents of the pipeline and
// maps input trees onto output trees.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dtnitsch/corpus-enricher/models"
)

type Storage struct{}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// ReadRawDocument loads one extracted document.
func (s *Storage) ReadRawDocument(filePath string) (*models.RawDocument, error) {
	data, err := s.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var doc models.RawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", filePath, err)
	}
	if doc.Paragraphs == nil {
		doc.Paragraphs = []string{}
	}
	return &doc, nil
}

// ReadRecord loads one enriched record.
func (s *Storage) ReadRecord(filePath string) (*models.EnrichedRecord, error) {
	data, err := s.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var rec models.EnrichedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", filePath, err)
	}
	return &rec, nil
}

// MarshalJSON renders v with two-space indentation, HTML characters and
// non-ASCII text left unescaped, and a trailing newline.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON marshals v and saves it, creating parent directories.
func (s *Storage) WriteJSON(filePath string, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", filePath, err)
	}
	return s.SaveFile(filePath, data)
}

// MirrorPath places relPath under root with its extension replaced by ext.
func MirrorPath(root, relPath, ext string) string {
	base := strings.TrimSuffix(relPath, filepath.Ext(relPath))
	return filepath.Join(root, base+ext)
}

// DiscoverFiles returns the paths under root with extension ext (matched
// case-insensitively), relative to root, in lexical order.
func DiscoverFiles(root, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

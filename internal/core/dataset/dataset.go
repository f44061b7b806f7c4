// Package dataset reads recorded entity data from YAML or JSON documents and
// feeds it into a models.Collection.
package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/pkg/concurrent"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/pkg/sequence"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// Format is the encoding of a dataset document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Document is a decoded dataset file.
type Document struct {
	Source   string   `json:"-" yaml:"-"`
	Entities []Record `json:"entities" yaml:"entities"`
}

// Record describes one entity. Field values stay untyped until they are
// applied to an entity, which drops anything non-numeric.
type Record struct {
	ID     string         `json:"id" yaml:"id"`
	Fields map[string]any `json:"fields" yaml:"fields"`
}

// FormatFromPath picks the format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Decode reads a single document from r.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json dataset: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &doc, nil
}

// LoadFile reads and decodes the document at path.
func LoadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	doc, err := Decode(bytes.NewReader(raw), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// LoadFiles decodes paths with at most workers files in flight. Documents are
// returned in the order of paths.
func LoadFiles(ctx context.Context, workers int, paths ...string) ([]*Document, error) {
	return concurrent.ParallelMap(ctx, sequence.From(paths), workers, func(_ context.Context, path string) (*Document, error) {
		return LoadFile(path)
	})
}

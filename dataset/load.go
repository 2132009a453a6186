package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a dataset document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// LoadOption configures [Load].
type LoadOption func(*loadOptions)

type loadOptions struct {
	log zerolog.Logger
}

// WithLogger sets the logger Load reports to. The default discards output.
func WithLogger(l zerolog.Logger) LoadOption {
	return func(o *loadOptions) { o.log = l }
}

// Load reads the dataset document at path. The format follows the file
// extension: .json, .yaml or .yml.
func Load(path string, opts ...LoadOption) (*Dataset, error) {
	o := loadOptions{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	ev := o.log.Debug()
	if ev.Enabled() {
		sum, err := d.Fingerprint()
		if err != nil {
			return nil, err
		}
		ev.Str("path", path).
			Str("format", string(format)).
			Int("employees", len(d.employees)).
			Int("projects", len(d.projects)).
			Str("fingerprint", sum).
			Msg("dataset loaded")
	}
	return d, nil
}

// Decode reads a dataset document from r and builds a [Dataset] from it.
// Unknown fields are rejected so that misspelt keys do not silently drop data.
func Decode(r io.Reader, format Format) (*Dataset, error) {
	var doc document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("dataset: decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("dataset: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return New(doc.Employees, doc.Projects)
}

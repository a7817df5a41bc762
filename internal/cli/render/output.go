package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects how a result is written
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

// StructuredRenderer writes any result as JSON or YAML
type StructuredRenderer[T any] struct {
	out    io.Writer
	format Format
}

// NewStructuredRenderer creates a renderer for the JSON or YAML format
func NewStructuredRenderer[T any](out io.Writer, format Format) *StructuredRenderer[T] {
	return &StructuredRenderer[T]{out: out, format: format}
}

// Render encodes result
func (r *StructuredRenderer[T]) Render(result T) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported structured format %d", r.format)
	}
}

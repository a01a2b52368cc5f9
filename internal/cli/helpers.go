// Package cli implements the platformctl commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// These variables will be set by the main package
var (
	Verbose      *bool
	OutputFormat *string
)

func outputFormat() string {
	if OutputFormat != nil && *OutputFormat != "" {
		return *OutputFormat
	}
	return "text"
}

// render writes v to w in the requested output format. The text format is
// produced by the text callback; json and yaml marshal v directly.
func render(w io.Writer, v interface{}, text func(io.Writer)) error {
	switch format := outputFormat(); format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(v)
	case "text":
		text(w)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

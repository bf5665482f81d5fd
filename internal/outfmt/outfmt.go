// Package outfmt writes CLI results as yaml or json.
package outfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format defines the output format for CLI commands.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DefaultFormat is the default output format.
var DefaultFormat Format = FormatYAML

// globalFormat is set by the root command's --output flag.
var globalFormat Format = FormatYAML

// SetFormat sets the global output format.
func SetFormat(format string) {
	switch format {
	case "json":
		globalFormat = FormatJSON
	case "yaml":
		globalFormat = FormatYAML
	default:
		globalFormat = DefaultFormat
	}
}

// GetFormat returns the current global output format.
func GetFormat() Format {
	return globalFormat
}

// Output writes data to stdout in the configured format.
func Output(data any) error {
	return OutputTo(os.Stdout, globalFormat, data)
}

// OutputTo writes data to the given writer in the specified format.
func OutputTo(w io.Writer, format Format, data any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(data)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// writeOutput renders v as indented JSON or as block YAML carrying the JSON field names.
func writeOutput(w io.Writer, format string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	switch format {
	case outputJSON:
		_, err = fmt.Fprintln(w, string(raw))
		return err
	case outputYAML:
		// JSON is a YAML subset; decoding into a node keeps key order.
		var node yaml.Node
		if err := yaml.Unmarshal(raw, &node); err != nil {
			return fmt.Errorf("convert result to yaml: %w", err)
		}
		clearStyle(&node)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q (want %s or %s)", format, outputJSON, outputYAML)
	}
}

// clearStyle drops the flow and quoting styles inherited from the JSON source.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		clearStyle(child)
	}
}

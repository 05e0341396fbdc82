// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/menu-engine/pkg/types"
)

// Encode writes m to w as JSON or YAML. Pretty indents JSON; YAML is
// always indented.
func Encode(w io.Writer, m *types.Menu, format types.OutputFormat, pretty bool) error {
	switch format {
	case types.OutputJSON, "":
		enc := json.NewEncoder(w)
		if pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

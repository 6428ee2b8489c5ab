// Package output - JSON report
package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders the report as indented JSON. Monetary values stay
// raw decimals; machine consumers do their own formatting.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the JSON report
func (f *JSONFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

package runner

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var ErrUnknownFormat = errors.New("runner: unknown output format")

// Encode writes results to w as YAML or JSON.
func Encode(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(jsonSafe(results)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// jsonSafe replaces non-finite float outputs, which JSON cannot carry, with
// their string form.
func jsonSafe(results []Result) []Result {
	out := make([]Result, len(results))
	for i, r := range results {
		if f, ok := r.Output.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
			r.Output = strconv.FormatFloat(f, 'g', -1, 64)
		}
		out[i] = r
	}
	return out
}

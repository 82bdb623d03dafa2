// Package handlers provides the standard output post-processors behind the
// colorizer.OutputHandler contract: colorized terminal text, plain
// ANSI-stripped text, YAML re-rendering, and raw structure echo.
package handlers

import (
	"encoding/json"

	"github.com/charmbracelet/x/ansi"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/colordoll/pkg/colorizer"
	"github.com/arthur-debert/colordoll/pkg/errors"
)

// Term renders data as the colorized themed string. It matches what Render
// does when no handler is set, made explicit for callers that switch
// handlers at runtime.
type Term struct {
	Colorizer *colorizer.Colorizer
}

// Handle implements colorizer.OutputHandler.
func (h Term) Handle(data interface{}, theme colorizer.Theme) (interface{}, error) {
	return h.Colorizer.ThemeColorize(data, theme), nil
}

// Plain renders data as the themed string with every ANSI escape sequence
// stripped out.
type Plain struct {
	Colorizer *colorizer.Colorizer
}

// Handle implements colorizer.OutputHandler.
func (h Plain) Handle(data interface{}, theme colorizer.Theme) (interface{}, error) {
	return ansi.Strip(h.Colorizer.ThemeColorize(data, theme)), nil
}

// Data echoes the structured value unchanged. JSON strings are decoded first
// so callers get the structure, not the serialized text.
type Data struct{}

// Handle implements colorizer.OutputHandler.
func (Data) Handle(data interface{}, _ colorizer.Theme) (interface{}, error) {
	return decodeIfJSON(data), nil
}

// YAML re-renders the value as a YAML document. Ordered mappings
// (colorizer.Object) keep their key order in the output.
type YAML struct{}

// Handle implements colorizer.OutputHandler.
func (YAML) Handle(data interface{}, _ colorizer.Theme) (interface{}, error) {
	out, err := yaml.Marshal(yamlReady(decodeIfJSON(data)))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrHandler, "failed to render value as YAML")
	}
	return string(out), nil
}

func decodeIfJSON(data interface{}) interface{} {
	if text, ok := data.(string); ok {
		if parsed, err := colorizer.ParseJSON(text); err == nil {
			return parsed
		}
	}
	return data
}

// yamlReady converts json.Number values into native ints and floats so the
// YAML encoder does not quote them as strings.
func yamlReady(v interface{}) interface{} {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = yamlReady(item)
		}
		return out
	case *colorizer.Object:
		obj := colorizer.NewObject()
		for _, key := range t.Keys() {
			value, _ := t.Get(key)
			obj.Set(key, yamlReady(value))
		}
		return obj
	}
	return v
}

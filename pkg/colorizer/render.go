package colorizer

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// punctuationColor is the role used for structural punctuation ({ } [ ] ,).
// The built-in palette has no entry for it, so by default punctuation renders
// unstyled; an override config may register "grey" to color it.
const punctuationColor = "grey"

// maxRenderDepth bounds recursion so that pathological inputs (cycles that
// survive normalization) degrade into an opaque rendering instead of
// unbounded stack growth.
const maxRenderDepth = 64

// ThemeColorize walks data and produces an indented, colorized rendering.
// Mappings and sequences nest with two spaces per level; strings are
// opportunistically reinterpreted as JSON, then as numbers, then as booleans
// before falling back to a quoted literal. The dispatch order is part of the
// contract and must not be reordered.
func (c *Colorizer) ThemeColorize(data interface{}, theme Theme) string {
	return c.render(data, theme, 0, 0)
}

func (c *Colorizer) render(data interface{}, theme Theme, level, depth int) string {
	if depth > maxRenderDepth {
		// Do not stringify here: the value may be cyclic, and fmt would not
		// terminate on it.
		c.logger.Error().Int("depth", depth).Msg("Recursion limit reached, rendering subtree as a placeholder")
		return c.Colorize(fmt.Sprintf("<max depth %d exceeded>", maxRenderDepth), theme.Other, "")
	}

	indent := strings.Repeat("  ", level)
	data = c.normalize(data)

	switch v := data.(type) {
	case *Object:
		return c.renderObject(v, theme, indent, level, depth)

	case map[string]interface{}:
		// Normalization failed (cycle or unserializable value). Render the
		// map directly, with sorted keys for deterministic output.
		obj := NewObject()
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			obj.Set(key, v[key])
		}
		return c.renderObject(obj, theme, indent, level, depth)

	case []interface{}:
		return c.renderArray(v, theme, indent, level, depth)

	case string:
		// A JSON document renders exactly as its decoded structure would at
		// this level, so string and structure inputs are interchangeable.
		if parsed, err := ParseJSON(v); err == nil {
			return c.render(parsed, theme, level, depth+1)
		}
		if isNumericString(v) {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return c.render(f, theme, level, depth+1)
			}
		}
		if lower := strings.ToLower(v); lower == "true" || lower == "false" {
			return c.render(lower == "true", theme, level, depth+1)
		}
		return c.Colorize(`"`+v+`"`, theme.String, "")

	case bool:
		// Booleans are a distinct role and take precedence over numbers.
		return c.Colorize(strconv.FormatBool(v), theme.Bool, "")

	case json.Number:
		return c.Colorize(v.String(), theme.Number, "")

	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return c.Colorize(fmt.Sprintf("%d", v), theme.Number, "")

	case float32, float64:
		return c.Colorize(fmt.Sprintf("%v", v), theme.Number, "")

	case nil:
		return c.Colorize("null", theme.Null, "")

	default:
		if k := reflect.ValueOf(v).Kind(); k == reflect.Map || k == reflect.Slice || k == reflect.Array {
			// A container dispatch cannot walk; fmt could loop on a cycle,
			// so render a typed placeholder instead.
			return c.Colorize(fmt.Sprintf("<unserializable %T>", v), theme.Other, "")
		}
		return c.Colorize(sprint(v), theme.Other, "")
	}
}

func (c *Colorizer) renderObject(obj *Object, theme Theme, indent string, level, depth int) string {
	var b strings.Builder
	b.WriteString(c.Colorize("{", punctuationColor, ""))
	for _, key := range obj.Keys() {
		value, _ := obj.Get(key)
		b.WriteString("\n" + indent + "  \"" + c.Colorize(key, theme.Key, "") + "\" : ")
		b.WriteString(c.render(value, theme, level+1, depth+1))
		b.WriteString(c.Colorize(",", punctuationColor, ""))
	}
	b.WriteString("\n" + indent + c.Colorize("}", punctuationColor, ""))
	return b.String()
}

func (c *Colorizer) renderArray(items []interface{}, theme Theme, indent string, level, depth int) string {
	var b strings.Builder
	b.WriteString(c.Colorize("[", punctuationColor, ""))
	for _, item := range items {
		b.WriteString("\n" + indent + "  ")
		b.WriteString(c.render(item, theme, level+1, depth+1))
		b.WriteString(c.Colorize(",", punctuationColor, ""))
	}
	b.WriteString("\n" + indent + c.Colorize("]", punctuationColor, ""))
	return b.String()
}

// normalize round-trips mapping and sequence values through JSON so that only
// plain, order-preserving shapes reach dispatch. Values that cannot be
// serialized (cycles, channels, functions) are returned as-is and fall
// through to the direct-map or opaque rules.
func (c *Colorizer) normalize(data interface{}) interface{} {
	switch data.(type) {
	case *Object, []interface{}, nil:
		return data
	}
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		encoded, err := json.Marshal(data)
		if err != nil {
			c.logger.Debug().Err(err).Msg("Value is not JSON-serializable, using it as-is")
			return data
		}
		decoded, err := ParseJSON(string(encoded))
		if err != nil {
			return data
		}
		return decoded
	}
	return data
}

// isNumericString reports whether s consists entirely of digits.
func isNumericString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// sprint renders a value as text, recovering from panicking Stringer
// implementations so rendering never faults.
func sprint(v interface{}) (text string) {
	defer func() {
		if recover() != nil {
			text = fmt.Sprintf("<unprintable %T>", v)
		}
	}()
	return fmt.Sprint(v)
}

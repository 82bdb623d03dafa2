package color

import "strings"

// Table resolves color names to Color values for foreground and background
// use. It is built once from the built-in palette plus optional overrides
// and is read-only afterwards.
type Table struct {
	foreground map[string]Color
	background map[string]Color
}

// NewTable builds a lookup table from the built-in palette merged with the
// given overrides. Override keys starting with bg_ land in the background
// mapping under the base color name; everything else is a foreground entry.
func NewTable(overrides map[string]int) *Table {
	t := &Table{
		foreground: make(map[string]Color, len(foregroundCodes)),
		background: make(map[string]Color, len(backgroundCodes)),
	}
	for name, code := range foregroundCodes {
		t.foreground[name] = Color{Code: code, Name: name}
	}
	for name, code := range backgroundCodes {
		t.background[name] = Color{Code: code, Name: "bg_" + name}
	}
	for name, code := range overrides {
		key := strings.ToLower(name)
		if base, ok := strings.CutPrefix(key, "bg_"); ok {
			t.background[base] = Color{Code: code, Name: key}
		} else {
			t.foreground[key] = Color{Code: code, Name: key}
		}
	}
	return t
}

// Foreground resolves a foreground color by name. Lookups are
// case-insensitive; an unknown name is not an error, it means "no styling".
func (t *Table) Foreground(name string) (Color, bool) {
	c, ok := t.foreground[strings.ToLower(name)]
	return c, ok
}

// Background resolves a background color by name, accepting either the base
// color name or its bg_ prefixed form.
func (t *Table) Background(name string) (Color, bool) {
	key := strings.TrimPrefix(strings.ToLower(name), "bg_")
	c, ok := t.background[key]
	return c, ok
}

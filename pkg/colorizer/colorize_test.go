package colorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newColorizer(t *testing.T, opts ...Option) *Colorizer {
	t.Helper()
	c, err := New(opts...)
	require.NoError(t, err)
	return c
}

func TestColorizeIdentity(t *testing.T) {
	c := newColorizer(t)

	tests := []struct {
		name       string
		text       string
		color      string
		background string
	}{
		{"no colors", "hello", "", ""},
		{"unknown foreground", "hello", "chartreuse", ""},
		{"unknown background", "hello", "", "chartreuse"},
		{"both unknown", "hello", "nope", "nope"},
		{"empty text no colors", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.text, c.Colorize(tt.text, tt.color, tt.background))
		})
	}
}

func TestColorizeForeground(t *testing.T) {
	c := newColorizer(t)
	assert.Equal(t, "\x1b[31mhello\x1b[0m", c.Colorize("hello", "red", ""))
	assert.Equal(t, "\x1b[92mhello\x1b[0m", c.Colorize("hello", "bright_green", ""))
}

func TestColorizeBackground(t *testing.T) {
	c := newColorizer(t)
	assert.Equal(t, "\x1b[41mhello\x1b[0m", c.Colorize("hello", "", "red"))
	assert.Equal(t, "\x1b[41mhello\x1b[0m", c.Colorize("hello", "", "bg_red"))
}

func TestColorizeCombined(t *testing.T) {
	c := newColorizer(t)

	got := c.Colorize("hello", "red", "blue")
	// One combined opening sequence, not two consecutive ones.
	assert.Equal(t, "\x1b[31;44mhello\x1b[0m", got)
}

func TestColorizeEmptyTextWithColor(t *testing.T) {
	c := newColorizer(t)
	// An empty span still gets open+reset wrapping so decorators compose.
	assert.Equal(t, "\x1b[31m\x1b[0m", c.Colorize("", "red", ""))
}

func TestColorizeNested(t *testing.T) {
	c := newColorizer(t)

	inner := c.Colorize("mid", "green", "")
	got := c.Colorize("pre"+inner+"post", "red", "")

	// The inner reset must be followed by a re-emission of the outer tag so
	// that "post" renders red again.
	want := "\x1b[31mpre\x1b[32mmid\x1b[0m\x1b[31mpost\x1b[0m"
	assert.Equal(t, want, got)
}

func TestColorizeNestedWithBackground(t *testing.T) {
	c := newColorizer(t)

	inner := c.Colorize("mid", "red", "bright_black")
	got := c.Colorize("a"+inner+"b", "yellow", "bright_blue")

	want := "\x1b[33;104ma\x1b[31;100mmid\x1b[0m\x1b[33;104mb\x1b[0m"
	assert.Equal(t, want, got)
}

func TestColorizeMultipleEmbeddedResets(t *testing.T) {
	c := newColorizer(t)

	text := c.Colorize("one", "green", "") + " and " + c.Colorize("two", "blue", "")
	got := c.Colorize(text, "red", "")

	want := "\x1b[31m" +
		"\x1b[32mone\x1b[0m\x1b[31m" +
		" and " +
		"\x1b[34mtwo\x1b[0m\x1b[31m" +
		"\x1b[0m"
	assert.Equal(t, want, got)
}

func TestColorizeWithOverrides(t *testing.T) {
	c := newColorizer(t, WithOverrides(map[string]interface{}{
		"orange":    map[string]interface{}{"code": 38},
		"bg_orange": map[string]interface{}{"code": 48},
	}))

	assert.Equal(t, "\x1b[38mhello\x1b[0m", c.Colorize("hello", "orange", ""))
	assert.Equal(t, "\x1b[48mhello\x1b[0m", c.Colorize("hello", "", "orange"))
	assert.Equal(t, "\x1b[38;48mhello\x1b[0m", c.Colorize("hello", "orange", "orange"))
}

package colorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type panickyStringer struct{}

func (panickyStringer) String() string { panic("not printable") }

func TestColorDecorator(t *testing.T) {
	c := newColorizer(t)
	decorate := c.ColorDecorator("red")

	wrapped := decorate(func() interface{} { return "ERROR" })
	assert.Equal(t, "\x1b[31mERROR\x1b[0m", wrapped())
}

func TestColorDecoratorStringifiesValues(t *testing.T) {
	c := newColorizer(t)
	decorate := c.ColorDecorator("yellow")

	tests := []struct {
		name   string
		result interface{}
		want   string
	}{
		{"int", 42, "\x1b[33m42\x1b[0m"},
		{"float", 2.5, "\x1b[33m2.5\x1b[0m"},
		{"bool", true, "\x1b[33mtrue\x1b[0m"},
		{"map", map[string]int{"a": 1}, "\x1b[33mmap[a:1]\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := decorate(func() interface{} { return tt.result })
			assert.Equal(t, tt.want, wrapped())
		})
	}
}

func TestColorDecoratorUnknownColor(t *testing.T) {
	c := newColorizer(t)
	wrapped := c.ColorDecorator("chartreuse")(func() interface{} { return "text" })
	// Unknown colors degrade to no styling.
	assert.Equal(t, "text", wrapped())
}

func TestColorDecoratorBestEffort(t *testing.T) {
	c := newColorizer(t)
	wrapped := c.ColorDecorator("red")(func() interface{} { return panickyStringer{} })

	// Decoration never throws; the original value passes through.
	result := wrapped()
	assert.Equal(t, panickyStringer{}, result)
}

func TestThemedDecorator(t *testing.T) {
	c := newColorizer(t)

	wrapped := c.ThemedDecorator("dark", Dark)(func() interface{} {
		return map[string]interface{}{"k": 1}
	})

	want := c.ThemeColorize(map[string]interface{}{"k": 1}, Dark)
	assert.Equal(t, want, wrapped())
}

func TestThemedDecoratorWithJSONString(t *testing.T) {
	c := newColorizer(t)

	wrapped := c.MinimalistTheme()(func() interface{} {
		return `{"app": "demo"}`
	})

	want := c.ThemeColorize(`{"app": "demo"}`, Minimalist)
	assert.Equal(t, want, wrapped())
}

func TestBuiltinThemedDecorators(t *testing.T) {
	c := newColorizer(t)
	payload := func() interface{} { return []interface{}{1, "two", nil} }

	tests := []struct {
		name  string
		deco  Decorator
		theme Theme
	}{
		{"dark", c.DarkTheme(), Dark},
		{"light", c.LightTheme(), Light},
		{"minimalist", c.MinimalistTheme(), Minimalist},
		{"vibrant", c.VibrantTheme(), Vibrant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, c.ThemeColorize(payload(), tt.theme), tt.deco(payload)())
		})
	}
}

func TestInline(t *testing.T) {
	c := newColorizer(t)

	red := c.Inline("red")
	assert.Equal(t, "\x1b[31mhi\x1b[0m", red("hi"))
	assert.Equal(t, "\x1b[31m\x1b[0m", red(""), "empty span still wraps")
}

func TestInlineConvenienceMethods(t *testing.T) {
	c := newColorizer(t)

	tests := []struct {
		name string
		fn   func(string) string
		want string
	}{
		{"black", c.Black, "\x1b[30mx\x1b[0m"},
		{"red", c.Red, "\x1b[31mx\x1b[0m"},
		{"green", c.Green, "\x1b[32mx\x1b[0m"},
		{"yellow", c.Yellow, "\x1b[33mx\x1b[0m"},
		{"blue", c.Blue, "\x1b[34mx\x1b[0m"},
		{"magenta", c.Magenta, "\x1b[35mx\x1b[0m"},
		{"cyan", c.Cyan, "\x1b[36mx\x1b[0m"},
		{"white", c.White, "\x1b[37mx\x1b[0m"},
		{"bright black", c.BrightBlack, "\x1b[90mx\x1b[0m"},
		{"bright red", c.BrightRed, "\x1b[91mx\x1b[0m"},
		{"bright green", c.BrightGreen, "\x1b[92mx\x1b[0m"},
		{"bright yellow", c.BrightYellow, "\x1b[93mx\x1b[0m"},
		{"bright blue", c.BrightBlue, "\x1b[94mx\x1b[0m"},
		{"bright magenta", c.BrightMagenta, "\x1b[95mx\x1b[0m"},
		{"bright cyan", c.BrightCyan, "\x1b[96mx\x1b[0m"},
		{"bright white", c.BrightWhite, "\x1b[97mx\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn("x"))
		})
	}
}

package colorizer

import "fmt"

// Producer is a zero-argument callable whose return value a decorator
// recolors.
type Producer func() interface{}

// Decorator wraps a Producer in a new Producer with the same shape.
type Decorator func(Producer) Producer

// ColorDecorator returns a decorator that stringifies the wrapped producer's
// result and colorizes it with the named foreground color. Decoration is
// best-effort: a value that cannot be rendered as text passes through
// unchanged rather than failing.
func (c *Colorizer) ColorDecorator(colorName string) Decorator {
	return func(fn Producer) Producer {
		return func() interface{} {
			result := fn()
			text, ok := stringify(result)
			if !ok {
				return result
			}
			return c.Colorize(text, colorName, "")
		}
	}
}

// ThemedDecorator returns a decorator that renders the wrapped producer's
// result through ThemeColorize. The result does not need to be
// pre-stringified; ThemeColorize's own dispatch handles mappings, sequences,
// scalars and JSON strings uniformly.
func (c *Colorizer) ThemedDecorator(name string, theme Theme) Decorator {
	c.logger.Debug().Str("theme", name).Msg("Built themed decorator")
	return func(fn Producer) Producer {
		return func() interface{} {
			return c.ThemeColorize(fn(), theme)
		}
	}
}

// Themed decorators for the built-in themes.

func (c *Colorizer) DarkTheme() Decorator       { return c.ThemedDecorator("dark", Dark) }
func (c *Colorizer) LightTheme() Decorator      { return c.ThemedDecorator("light", Light) }
func (c *Colorizer) MinimalistTheme() Decorator { return c.ThemedDecorator("minimalist", Minimalist) }
func (c *Colorizer) VibrantTheme() Decorator    { return c.ThemedDecorator("vibrant", Vibrant) }

// Inline derives a plain-text colorizer from ColorDecorator applied to the
// identity producer.
func (c *Colorizer) Inline(colorName string) func(string) string {
	decorate := c.ColorDecorator(colorName)
	return func(text string) string {
		result := decorate(func() interface{} { return text })()
		colored, ok := result.(string)
		if !ok {
			return text
		}
		return colored
	}
}

// stringify renders a value as text, recovering from panicking Stringer
// implementations.
func stringify(v interface{}) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()
	return fmt.Sprint(v), true
}

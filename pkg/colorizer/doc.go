/*
Package colorizer renders text and structured data with ANSI color codes.

The Colorizer owns a read-only color table (built-in 16-color palette plus
optional overrides from pkg/config) and exposes two rendering operations:

  - Colorize wraps a single span of text in foreground and/or background
    escape sequences, repairing any reset sequences already embedded in the
    text so that nested spans keep the outer style.
  - ThemeColorize walks arbitrary data (mappings, sequences, scalars,
    JSON-encoded strings) and produces an indented, colorized rendering,
    picking colors per data role from a Theme.

On top of these sit decorator factories that recolor a Producer's return
value, and an OutputHandler hook that lets callers swap the final rendering
for raw data, YAML text, or ANSI-stripped output (see pkg/handlers).

# Usage

	c, err := colorizer.New()
	if err != nil {
		return err
	}
	fmt.Println(c.Colorize("hello", "red", "bg_blue"))
	fmt.Println(c.ThemeColorize(map[string]any{"port": 8080}, colorizer.Dark))

Unknown color names are not errors; they resolve to "no styling". Only
configuration problems fail, and they fail at construction time.
*/
package colorizer

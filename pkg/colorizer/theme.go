package colorizer

import "strings"

// Theme assigns a palette color name to each data role the structural
// renderer distinguishes. Themes are pure data; callers may build their own
// or use one of the built-ins below.
type Theme struct {
	Key    string
	String string
	Number string
	Bool   string
	Null   string
	Other  string
}

// Built-in themes.
var (
	Dark = Theme{
		Key:    "bright_cyan",
		String: "yellow",
		Number: "bright_red",
		Bool:   "magenta",
		Null:   "bright_magenta",
		Other:  "yellow",
	}

	Light = Theme{
		Key:    "blue",
		String: "bright_yellow",
		Number: "bright_cyan",
		Bool:   "bright_magenta",
		Null:   "bright_magenta",
		Other:  "yellow",
	}

	Minimalist = Theme{
		Key:    "bright_black",
		String: "yellow",
		Number: "magenta",
		Bool:   "bright_black",
		Null:   "white",
		Other:  "white",
	}

	Vibrant = Theme{
		Key:    "bright_yellow",
		String: "bright_green",
		Number: "bright_magenta",
		Bool:   "bright_cyan",
		Null:   "yellow",
		Other:  "bright_white",
	}
)

// ThemeByName resolves one of the built-in themes from its name.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(name) {
	case "dark":
		return Dark, true
	case "light":
		return Light, true
	case "minimalist":
		return Minimalist, true
	case "vibrant":
		return Vibrant, true
	}
	return Theme{}, false
}

// ThemeNames lists the built-in theme names.
func ThemeNames() []string {
	return []string{"dark", "light", "minimalist", "vibrant"}
}

package color

import "fmt"

// Color represents a single ANSI display attribute: a numeric escape code
// plus the name it was registered under. Values are immutable once built.
type Color struct {
	Code int
	Name string
}

// String returns the escape sequence that activates the attribute.
func (c Color) String() string {
	return fmt.Sprintf("\x1b[%dm", c.Code)
}

// Equal reports whether two colors render the same escape code. Names are
// not part of the identity.
func (c Color) Equal(other Color) bool {
	return c.Code == other.Code
}

// Reset clears all active styling.
var Reset = Color{Code: 0, Name: "reset"}

package colorizer

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/colordoll/pkg/color"
)

// Colorize wraps text in the escape sequences for the named foreground and
// background colors. An empty or unknown name applies no styling; when
// neither resolves, text is returned unchanged, byte for byte.
//
// When both colors resolve, the opening tag is a single combined sequence
// (ESC[<fg>;<bg>m), not two consecutive ones. Any reset sequence already
// embedded in text (from an inner Colorize call) is followed by a re-emission
// of the opening tag, so the remainder of the span stays in the outer style.
// The result always ends with exactly one reset.
func (c *Colorizer) Colorize(text, foreground, background string) string {
	fg, fgOK := c.table.Foreground(foreground)
	bg, bgOK := c.table.Background(background)

	if !fgOK && !bgOK {
		return text
	}

	var start string
	switch {
	case fgOK && bgOK:
		start = fmt.Sprintf("\x1b[%d;%dm", fg.Code, bg.Code)
	case fgOK:
		start = fg.String()
	default:
		start = bg.String()
	}

	reset := color.Reset.String()
	body := strings.ReplaceAll(text, reset, reset+start)
	return start + body + reset
}

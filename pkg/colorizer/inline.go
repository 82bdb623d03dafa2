package colorizer

// Per-color inline colorizers, one for each base palette entry. Each is the
// corresponding ColorDecorator applied to the identity producer.

func (c *Colorizer) Black(text string) string   { return c.Inline("black")(text) }
func (c *Colorizer) Red(text string) string     { return c.Inline("red")(text) }
func (c *Colorizer) Green(text string) string   { return c.Inline("green")(text) }
func (c *Colorizer) Yellow(text string) string  { return c.Inline("yellow")(text) }
func (c *Colorizer) Blue(text string) string    { return c.Inline("blue")(text) }
func (c *Colorizer) Magenta(text string) string { return c.Inline("magenta")(text) }
func (c *Colorizer) Cyan(text string) string    { return c.Inline("cyan")(text) }
func (c *Colorizer) White(text string) string   { return c.Inline("white")(text) }

func (c *Colorizer) BrightBlack(text string) string   { return c.Inline("bright_black")(text) }
func (c *Colorizer) BrightRed(text string) string     { return c.Inline("bright_red")(text) }
func (c *Colorizer) BrightGreen(text string) string   { return c.Inline("bright_green")(text) }
func (c *Colorizer) BrightYellow(text string) string  { return c.Inline("bright_yellow")(text) }
func (c *Colorizer) BrightBlue(text string) string    { return c.Inline("bright_blue")(text) }
func (c *Colorizer) BrightMagenta(text string) string { return c.Inline("bright_magenta")(text) }
func (c *Colorizer) BrightCyan(text string) string    { return c.Inline("bright_cyan")(text) }
func (c *Colorizer) BrightWhite(text string) string   { return c.Inline("bright_white")(text) }

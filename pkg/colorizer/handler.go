package colorizer

// OutputHandler post-processes a themed render. Implementations receive the
// same inputs ThemeColorize takes and return either a string or a structured
// value. The standard handlers live in pkg/handlers.
type OutputHandler interface {
	Handle(data interface{}, theme Theme) (interface{}, error)
}

// SetOutputHandler selects the handler Render routes through. Last writer
// wins; the setting is guarded so concurrent callers never race a swap
// mid-render.
func (c *Colorizer) SetOutputHandler(h OutputHandler) {
	c.mu.Lock()
	c.handler = h
	c.mu.Unlock()
}

// Render produces the caller-visible result for data: the active handler's
// output, or the ThemeColorize string when no handler is set.
func (c *Colorizer) Render(data interface{}, theme Theme) (interface{}, error) {
	c.mu.RLock()
	h := c.handler
	c.mu.RUnlock()

	if h == nil {
		return c.ThemeColorize(data, theme), nil
	}
	return h.Handle(data, theme)
}

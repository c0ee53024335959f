package parser

// lineCursor is a forward-only position over the lines of a text file.
// Each scan rule advances it by the number of lines it consumes.
type lineCursor struct {
	lines []string
	pos   int
}

func newLineCursor(lines []string) *lineCursor {
	return &lineCursor{lines: lines}
}

// Done reports whether every line has been consumed.
func (c *lineCursor) Done() bool {
	return c.pos >= len(c.lines)
}

// Peek returns the current line without consuming it. It returns "" when done.
func (c *lineCursor) Peek() string {
	if c.Done() {
		return ""
	}
	return c.lines[c.pos]
}

// Next consumes and returns the current line.
func (c *lineCursor) Next() string {
	line := c.Peek()
	c.Advance(1)
	return line
}

// Advance consumes n lines, stopping at the end of input.
func (c *lineCursor) Advance(n int) {
	c.pos += n
	if c.pos > len(c.lines) {
		c.pos = len(c.lines)
	}
}

// Pos returns the zero-based index of the current line.
func (c *lineCursor) Pos() int {
	return c.pos
}

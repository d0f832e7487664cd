package record

// cursor is a position-tracked read head over the raw input. It never
// skips anything: every byte the format names must be consumed
// explicitly, in order.
type cursor struct {
	input string
	pos   int
}

// peek returns the byte at the read head without consuming it.
// ok is false at end of input.
func (c *cursor) peek() (b byte, ok bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	return c.input[c.pos], true
}

// expect consumes the literal if it appears byte-for-byte at the read
// head, or returns a SyntaxError locating the first mismatching byte.
func (c *cursor) expect(literal string) error {
	for i := 0; i < len(literal); i++ {
		b, ok := c.peek()
		if !ok {
			return &SyntaxError{Offset: c.pos, Expected: string(literal[i]), Found: endOfInput}
		}
		if b != literal[i] {
			return &SyntaxError{Offset: c.pos, Expected: string(literal[i]), Found: foundByte(b)}
		}
		c.pos++
	}
	return nil
}

// until consumes up to but not including the next occurrence of delim
// and returns the consumed span. Fails if the input ends first.
func (c *cursor) until(delim byte) (string, error) {
	start := c.pos
	for {
		b, ok := c.peek()
		if !ok {
			return "", &SyntaxError{Offset: c.pos, Expected: string(delim), Found: endOfInput}
		}
		if b == delim {
			return c.input[start:c.pos], nil
		}
		c.pos++
	}
}

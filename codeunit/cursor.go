package codeunit

// Cursor navigates a string by scalar values.
//
// The cursor is bound to one string. Movement is in scalar steps, while the
// position is also tracked as a code-unit offset. Surrogate pairs are always
// stepped over as a whole; isolated surrogates count as one scalar.
type Cursor struct {
	str     String
	offset  int // code-unit offset
	scalars int // number of scalars before offset
}

// NewCursor creates a scalar cursor at the start of s.
func (s String) NewCursor() *Cursor {
	return &Cursor{str: s}
}

// Offset returns the current code-unit offset.
func (c *Cursor) Offset() int {
	if c == nil {
		return 0
	}
	return c.offset
}

// Index returns the number of scalars before the cursor position.
func (c *Cursor) Index() int {
	if c == nil {
		return 0
	}
	return c.scalars
}

// Reset moves the cursor back to the start of its string.
func (c *Cursor) Reset() {
	if c == nil {
		return
	}
	c.offset, c.scalars = 0, 0
}

// SeekScalars moves the cursor to absolute scalar index n.
func (c *Cursor) SeekScalars(n int) error {
	if c == nil || n < 0 {
		return ErrIndexOutOfBounds
	}
	if n < c.scalars {
		c.Reset()
	}
	for c.scalars < n {
		if _, ok := c.Next(); !ok {
			return ErrIndexOutOfBounds
		}
	}
	return nil
}

// Next returns the scalar at the current position and advances past it.
//
// If the cursor is at end-of-string, ok is false.
func (c *Cursor) Next() (r rune, ok bool) {
	if c == nil || c.offset >= len(c.str.units) {
		return 0, false
	}
	r, w := decodeAt(c.str.units, c.offset)
	c.offset += w
	c.scalars++
	return r, true
}

// Prev returns the scalar before the current position and moves back over it.
//
// If the cursor is at start-of-string, ok is false.
func (c *Cursor) Prev() (r rune, ok bool) {
	if c == nil || c.offset == 0 {
		return 0, false
	}
	r, w := decodeLastAt(c.str.units, c.offset)
	c.offset -= w
	c.scalars--
	return r, true
}

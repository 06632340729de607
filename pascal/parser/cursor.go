package parser

// Cursor is a forward-only read head over an ordered sequence. There is
// no backtracking: every parsing decision downstream is made from the
// single item under the head.
type Cursor[T any] struct {
	items []T
	pos   int
}

func NewCursor[T any](items []T) *Cursor[T] {
	return &Cursor[T]{items: items}
}

// IsOpen reports whether more items remain.
func (c *Cursor[T]) IsOpen() bool {
	return c.pos < len(c.items)
}

// Current returns the item under the head without advancing. Callers
// must check IsOpen at the end of the sequence; once the cursor is
// exhausted Current returns the zero value.
func (c *Cursor[T]) Current() T {
	if c.pos >= len(c.items) {
		var zero T
		return zero
	}
	return c.items[c.pos]
}

// Consume returns the item under the head and advances past it.
// Consuming is irreversible.
func (c *Cursor[T]) Consume() T {
	item := c.Current()
	if c.pos < len(c.items) {
		c.pos++
	}
	return item
}

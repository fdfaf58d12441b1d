package ssig

// ScopedConnection is a Connection that disconnects its slot on Close,
// typically deferred by the owner of the connection.
type ScopedConnection[A, R any] struct {
	Connection[A, R]
}

// Scope makes c scoped. Copies of c keep referring to the same slot.
func Scope[A, R any](c Connection[A, R]) ScopedConnection[A, R] {
	return ScopedConnection[A, R]{Connection: c}
}

// Close disconnects the slot if it is still connected. It never fails.
func (c *ScopedConnection[A, R]) Close() error {
	c.Connection.release()
	return nil
}

func (c *Connection[A, R]) release() {
	if sl := c.target(); sl != nil {
		sl.clear()
	}
}

package ssig

import "weak"

// Disconnector is implemented by every connection type in this package.
type Disconnector interface {
	IsConnected() bool
	Disconnect() error
}

var (
	_ Disconnector = (*Connection[int, int])(nil)
	_ Disconnector = (*ScopedConnection[int, int])(nil)
)

// Connection is a handle to one slot of a Signal. It does not keep the
// slot alive.
//
// Copies of a Connection refer to the same slot: disconnecting through one
// disconnects all of them. The zero value is disconnected.
type Connection[A, R any] struct {
	slot weak.Pointer[slot[A, R]]
}

// NewConnection connects fn to s. It is equivalent to s.Connect(fn).
func NewConnection[A, R any](s *Signal[A, R], fn func(A) R) Connection[A, R] {
	return s.Connect(fn)
}

func newConnection[A, R any](sl *slot[A, R]) Connection[A, R] {
	return Connection[A, R]{slot: weak.Make(sl)}
}

// IsConnected reports whether the slot is still connected to its signal.
// A handle that observes a disconnected slot forgets it.
func (c *Connection[A, R]) IsConnected() bool {
	return c.target() != nil
}

// Disconnect removes the slot from its signal. It returns
// ErrDisconnectedConnection if the connection is not connected.
func (c *Connection[A, R]) Disconnect() error {
	sl := c.target()
	if sl == nil {
		return ErrDisconnectedConnection
	}
	sl.clear()
	return nil
}

// InvokeSlot calls the connected slot alone, bypassing the signal.
func (c *Connection[A, R]) InvokeSlot(args A) (r R, err error) {
	sl := c.target()
	if sl == nil {
		return r, ErrDisconnectedConnection
	}
	return sl.call(args), nil
}

// Take returns a copy of c and leaves c disconnected.
func (c *Connection[A, R]) Take() Connection[A, R] {
	t := *c
	*c = Connection[A, R]{}
	return t
}

// target returns the connected slot, or nil. The strong pointer it
// returns keeps the slot alive for the caller's use.
func (c *Connection[A, R]) target() *slot[A, R] {
	sl := c.slot.Value()
	if sl == nil {
		return nil
	}
	if sl.empty() {
		c.slot = weak.Pointer[slot[A, R]]{}
		return nil
	}
	return sl
}

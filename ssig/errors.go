package ssig

import "errors"

var (
	// ErrReentrantInvocation is returned when a signal is invoked from
	// inside one of its own slots.
	ErrReentrantInvocation = errors.New("ssig: recursive signal invocation is not supported")

	// ErrEmptySignalInvocation is returned when a result-returning signal
	// is invoked with no connected slots.
	ErrEmptySignalInvocation = errors.New("ssig: attempt to invoke empty signal with non-void return type")

	// ErrDisconnectedConnection is returned by Disconnect and InvokeSlot on
	// a connection that is not connected.
	ErrDisconnectedConnection = errors.New("ssig: attempt to use a disconnected connection")
)

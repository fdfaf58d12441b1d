package ssig

// Signal calls every connected func(A) R when invoked and returns the
// result of the slot called last. Slots run in reverse connection order:
// the most recently connected slot runs first.
//
// The zero value is an empty signal ready to use. A Signal must not be
// copied after first use and is not safe for concurrent use.
type Signal[A, R any] struct {
	head    *node[A, R]
	calling bool
}

// Connect registers fn and returns a connection to it.
func (s *Signal[A, R]) Connect(fn func(A) R) Connection[A, R] {
	sl := &slot[A, R]{fn: fn}
	s.head = &node[A, R]{slot: sl, next: s.head}
	return newConnection(sl)
}

// ConnectScoped is Connect returning a connection that disconnects on Close.
func (s *Signal[A, R]) ConnectScoped(fn func(A) R) ScopedConnection[A, R] {
	return Scope(s.Connect(fn))
}

// Invoke calls every connected slot with args.
//
// Slots connected while the dispatch is running are not called by it. A
// slot disconnected before the dispatch reaches it is skipped.
func (s *Signal[A, R]) Invoke(args A) (R, error) {
	return s.dispatch(args, false)
}

// Empty reports whether no connected slot remains.
func (s *Signal[A, R]) Empty() bool {
	if !s.calling {
		s.popCleared()
	}
	for n := s.head; n != nil; n = n.next {
		if !n.slot.empty() {
			return false
		}
	}
	return true
}

func (s *Signal[A, R]) popCleared() {
	for s.head != nil && s.head.slot.empty() {
		s.head = s.head.next
	}
}

func (s *Signal[A, R]) dispatch(args A, void bool) (r R, err error) {
	release, err := acquire(&s.calling)
	if err != nil {
		return r, err
	}
	defer release()

	s.popCleared()

	// Only nodes after the cursor are unlinked. New connections go in front
	// of the head the walk started from, so the walk never sees them.
	for n := s.head; n != nil; n = n.next {
		r = n.slot.call(args)
		for n.next != nil && n.next.slot.empty() {
			n.next = n.next.next
		}
		if n.next == nil {
			return r, nil
		}
	}

	if void {
		return r, nil
	}
	return r, ErrEmptySignalInvocation
}

// Void is a Signal whose slots return nothing. Invoking an empty Void is
// not an error.
type Void[A any] struct {
	sig Signal[A, struct{}]
}

// Connect registers fn and returns a connection to it.
func (v *Void[A]) Connect(fn func(A)) Connection[A, struct{}] {
	return v.sig.Connect(func(args A) struct{} {
		fn(args)
		return struct{}{}
	})
}

// ConnectScoped is Connect returning a connection that disconnects on Close.
func (v *Void[A]) ConnectScoped(fn func(A)) ScopedConnection[A, struct{}] {
	return Scope(v.Connect(fn))
}

// Invoke calls every connected slot with args. The only possible error is
// ErrReentrantInvocation.
func (v *Void[A]) Invoke(args A) error {
	_, err := v.sig.dispatch(args, true)
	return err
}

// Empty reports whether no connected slot remains.
func (v *Void[A]) Empty() bool {
	return v.sig.Empty()
}

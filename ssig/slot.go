package ssig

// slot holds one connected callable. Once cleared it stays cleared.
type slot[A, R any] struct {
	fn func(A) R
}

func (s *slot[A, R]) clear() {
	s.fn = nil
}

func (s *slot[A, R]) empty() bool {
	return s.fn == nil
}

func (s *slot[A, R]) call(args A) R {
	if s.fn == nil {
		panic("ssig: call on a cleared slot")
	}
	return s.fn(args)
}

// node is one link of a signal's slot list. The list owns the only
// strong reference to each slot.
type node[A, R any] struct {
	slot *slot[A, R]
	next *node[A, R]
}

package ssig

// acquire marks a signal as dispatching. The returned release must run on
// every exit path of the dispatch.
func acquire(calling *bool) (release func(), err error) {
	if *calling {
		return nil, ErrReentrantInvocation
	}
	*calling = true
	return func() { *calling = false }, nil
}

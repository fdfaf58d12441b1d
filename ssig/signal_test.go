package ssig_test

import (
	"testing"

	"github.com/delaneyj/ssig/ssig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func disconnectArg(c ssig.Disconnector) bool {
	if err := c.Disconnect(); err != nil {
		panic(err)
	}
	return false
}

func nop(ssig.Disconnector) bool {
	return true
}

func TestSignalConstruction(t *testing.T) {
	var s ssig.Signal[float32, float64]
	assert.True(t, s.Empty())

	var v ssig.Void[int]
	assert.True(t, v.Empty())
}

func TestConnectingAndInvokingVoid(t *testing.T) {
	test := 2

	var s ssig.Void[int]
	require.NoError(t, s.Invoke(0), "void signal without slots is a no-op")

	s.Connect(func(int) { test += 4 })
	assert.False(t, s.Empty())
	s.Connect(func(int) { test /= 2 })
	require.NoError(t, s.Invoke(0))

	// most recently connected runs first
	assert.Equal(t, 2/2+4, test)
}

func TestConnectingAndInvokingBasic(t *testing.T) {
	calls := 0
	foo := func(struct{}) int {
		calls++
		return calls
	}

	var s ssig.Signal[struct{}, int]
	s.Connect(foo)
	assert.False(t, s.Empty())
	s.Connect(foo)

	n, err := s.Invoke(struct{}{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, calls)
}

func TestInvokingEmptySignal(t *testing.T) {
	var s ssig.Signal[error, float64]
	_, err := s.Invoke(nil)
	assert.ErrorIs(t, err, ssig.ErrEmptySignalInvocation)

	c := s.Connect(func(error) float64 { return 1 })
	require.NoError(t, c.Disconnect())
	_, err = s.Invoke(nil)
	assert.ErrorIs(t, err, ssig.ErrEmptySignalInvocation)
}

func TestDispatchOrderIsReverseOfConnection(t *testing.T) {
	var order []int
	var s ssig.Void[struct{}]
	for i := 0; i < 5; i++ {
		s.Connect(func(struct{}) { order = append(order, i) })
	}

	require.NoError(t, s.Invoke(struct{}{}))
	assert.Equal(t, []int{4, 3, 2, 1, 0}, order)
}

func TestResultOfEarliestConnectedSlot(t *testing.T) {
	var calls []string
	var s ssig.Signal[int, int]
	s.Connect(func(x int) int {
		calls = append(calls, "a")
		return x + 1
	})
	s.Connect(func(x int) int {
		calls = append(calls, "b")
		return x * 2
	})

	r, err := s.Invoke(5)
	require.NoError(t, err)
	assert.Equal(t, 6, r)
	assert.Equal(t, []string{"b", "a"}, calls)
}

func TestDisconnectedSlotIsNotInvoked(t *testing.T) {
	var called []string
	var s ssig.Void[int]
	a := s.Connect(func(int) { called = append(called, "a") })
	s.Connect(func(int) { called = append(called, "b") })
	c := s.Connect(func(int) { called = append(called, "c") })

	require.NoError(t, a.Disconnect())
	require.NoError(t, c.Disconnect())
	require.NoError(t, s.Invoke(1))
	assert.Equal(t, []string{"b"}, called)

	require.NoError(t, s.Invoke(1))
	assert.Equal(t, []string{"b", "b"}, called)
}

func TestDisconnectWhileCalled(t *testing.T) {
	var s ssig.Signal[ssig.Disconnector, bool]

	t.Run("only slot", func(t *testing.T) {
		c := s.Connect(disconnectArg)
		r, err := s.Invoke(&c)
		require.NoError(t, err)
		assert.False(t, r)
		assert.False(t, c.IsConnected())
		assert.True(t, s.Empty())
	})

	t.Run("between peers", func(t *testing.T) {
		c1 := s.ConnectScoped(nop)
		c := s.Connect(disconnectArg)
		c2 := s.ConnectScoped(nop)

		r, err := s.Invoke(&c)
		require.NoError(t, err)
		assert.True(t, r, "c1 runs last")
		assert.False(t, c.IsConnected())
		assert.True(t, c1.IsConnected())
		assert.True(t, c2.IsConnected())

		require.NoError(t, c1.Close())
		require.NoError(t, c2.Close())
		assert.True(t, s.Empty())
	})
}

func TestDisconnectNextCalled(t *testing.T) {
	var s ssig.Signal[ssig.Disconnector, bool]
	c := s.Connect(nop)
	c1 := s.ConnectScoped(disconnectArg)
	defer c1.Close()

	r, err := s.Invoke(&c)
	require.NoError(t, err)
	assert.False(t, r, "c was skipped, so c1's result is returned")
	assert.False(t, c.IsConnected())

	require.NoError(t, c1.Close())
	assert.True(t, s.Empty())
}

func TestDisconnectPeerFurtherAhead(t *testing.T) {
	var called []string
	var s ssig.Void[struct{}]
	var b ssig.Connection[struct{}, struct{}]

	s.Connect(func(struct{}) { called = append(called, "a") })
	b = s.Connect(func(struct{}) { called = append(called, "b") })
	s.Connect(func(struct{}) { called = append(called, "c") })
	s.Connect(func(struct{}) {
		called = append(called, "d")
		require.NoError(t, b.Disconnect())
	})

	require.NoError(t, s.Invoke(struct{}{}))
	assert.Equal(t, []string{"d", "c", "a"}, called)
}

func TestSlotConnectedDuringDispatch(t *testing.T) {
	var called []string
	var s ssig.Void[struct{}]
	connected := false
	s.Connect(func(struct{}) {
		called = append(called, "outer")
		if !connected {
			connected = true
			s.Connect(func(struct{}) { called = append(called, "inner") })
		}
	})

	require.NoError(t, s.Invoke(struct{}{}))
	assert.Equal(t, []string{"outer"}, called)

	called = nil
	require.NoError(t, s.Invoke(struct{}{}))
	assert.Equal(t, []string{"inner", "outer"}, called)
}

func TestReentrantInvocation(t *testing.T) {
	var s ssig.Signal[int, int]
	var innerErr error
	s.Connect(func(depth int) int {
		if depth == 0 {
			_, innerErr = s.Invoke(depth + 1)
		}
		return depth
	})

	r, err := s.Invoke(0)
	require.NoError(t, err)
	assert.Equal(t, 0, r)
	assert.ErrorIs(t, innerErr, ssig.ErrReentrantInvocation)

	r, err = s.Invoke(7)
	require.NoError(t, err)
	assert.Equal(t, 7, r)
}

func TestIndirectReentrantInvocation(t *testing.T) {
	var a, b ssig.Void[struct{}]
	var innerErr error
	bCalls := 0

	a.Connect(func(struct{}) {
		require.NoError(t, b.Invoke(struct{}{}), "a different signal may be invoked")
	})
	b.Connect(func(struct{}) {
		bCalls++
		innerErr = a.Invoke(struct{}{})
	})

	require.NoError(t, a.Invoke(struct{}{}))
	assert.Equal(t, 1, bCalls)
	assert.ErrorIs(t, innerErr, ssig.ErrReentrantInvocation)
	require.NoError(t, a.Invoke(struct{}{}))
	assert.Equal(t, 2, bCalls)
}

func TestPanickingSlotReleasesGuard(t *testing.T) {
	var s ssig.Signal[bool, string]
	s.Connect(func(fail bool) string {
		if fail {
			panic("boom")
		}
		return "ok"
	})

	assert.PanicsWithValue(t, "boom", func() {
		s.Invoke(true)
	})

	r, err := s.Invoke(false)
	require.NoError(t, err)
	assert.Equal(t, "ok", r)
}

func TestEarlierSideEffectsSurviveFailure(t *testing.T) {
	var s ssig.Void[struct{}]
	calls := 0
	s.Connect(func(struct{}) { panic("late failure") })
	s.Connect(func(struct{}) { calls++ })

	assert.Panics(t, func() {
		s.Invoke(struct{}{})
	})
	assert.Equal(t, 1, calls)
}

func TestEmpty(t *testing.T) {
	var s ssig.Signal[int, int]
	conns := make([]ssig.Connection[int, int], 3)
	for i := range conns {
		conns[i] = s.Connect(func(x int) int { return x })
	}
	assert.False(t, s.Empty())

	require.NoError(t, conns[0].Disconnect())
	require.NoError(t, conns[2].Disconnect())
	assert.False(t, s.Empty())

	require.NoError(t, conns[1].Disconnect())
	assert.True(t, s.Empty())

	_, err := s.Invoke(1)
	assert.ErrorIs(t, err, ssig.ErrEmptySignalInvocation)
}

func TestEmptyDuringDispatch(t *testing.T) {
	var s ssig.Void[struct{}]
	var self ssig.Connection[struct{}, struct{}]
	var before, after bool
	self = s.Connect(func(struct{}) {
		before = s.Empty()
		require.NoError(t, self.Disconnect())
		after = s.Empty()
	})

	require.NoError(t, s.Invoke(struct{}{}))
	assert.False(t, before)
	assert.True(t, after)
	assert.True(t, s.Empty())
}

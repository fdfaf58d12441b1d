package ssig

import mapset "github.com/deckarep/golang-set/v2"

// Group disconnects a set of connections together. The zero value is an
// empty group.
type Group struct {
	conns mapset.Set[Disconnector]
}

// Add puts conns in the group. Adding a handle twice has no effect.
func (g *Group) Add(conns ...Disconnector) {
	if g.conns == nil {
		g.conns = mapset.NewThreadUnsafeSet[Disconnector]()
	}
	for _, c := range conns {
		if c != nil {
			g.conns.Add(c)
		}
	}
}

// Len returns how many handles in the group are still connected.
func (g *Group) Len() int {
	if g.conns == nil {
		return 0
	}
	n := 0
	for _, c := range g.conns.ToSlice() {
		if c.IsConnected() {
			n++
		}
	}
	return n
}

// Close disconnects every handle that is still connected and empties the
// group. The first disconnect error, if any, is returned.
func (g *Group) Close() error {
	if g.conns == nil {
		return nil
	}
	var err error
	for _, c := range g.conns.ToSlice() {
		if !c.IsConnected() {
			continue
		}
		if dErr := c.Disconnect(); dErr != nil && err == nil {
			err = dErr
		}
	}
	g.conns.Clear()
	return err
}

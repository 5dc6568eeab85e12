package far

// keyKind separates limit points from edge points in sharedKey.
type keyKind uint8

const (
	limitKey keyKind = iota
	edgeKey
)

// sharedKey names a logical control point independently of the face it is
// reached from: the limit point of v, or the edge point of v toward w.
type sharedKey struct {
	kind keyKind
	v, w int
}

// pointKey returns the sharing key of control point i of a face with
// corners fv. Face points have none.
func pointKey(fv [4]int, i int) (sharedKey, bool) {
	c := i / numPointKinds
	switch PointKind(i % numPointKinds) {
	case PointP:
		return sharedKey{kind: limitKey, v: fv[c], w: -1}, true
	case PointEp:
		return sharedKey{kind: edgeKey, v: fv[c], w: fv[(c+1)%4]}, true
	case PointEm:
		return sharedKey{kind: edgeKey, v: fv[c], w: fv[(c+3)%4]}, true
	}
	return sharedKey{}, false
}

// sharedVertexMap records the slot of every shareable point emitted so far.
// Disabled, it never finds anything and records nothing.
// Not safe for concurrent use; the factory mutex guards it.
type sharedVertexMap struct {
	enabled bool
	slots   map[sharedKey]int
}

func newSharedVertexMap(enabled bool) *sharedVertexMap {
	return &sharedVertexMap{enabled: enabled, slots: make(map[sharedKey]int)}
}

// lookup returns the slot recorded for key.
func (m *sharedVertexMap) lookup(key sharedKey) (int, bool) {
	if !m.enabled {
		return -1, false
	}
	slot, ok := m.slots[key]
	return slot, ok
}

// allocate records slot for key. The first writer wins.
func (m *sharedVertexMap) allocate(key sharedKey, slot int) {
	if !m.enabled {
		return
	}
	if _, ok := m.slots[key]; !ok {
		m.slots[key] = slot
	}
}

// resolveSlot returns the slot recorded for key, or records next and
// reports it as new.
func (m *sharedVertexMap) resolveSlot(key sharedKey, next int) (slot int, isNew bool) {
	if slot, ok := m.lookup(key); ok {
		return slot, false
	}
	m.allocate(key, next)

	return next, true
}

// len returns the number of recorded keys.
func (m *sharedVertexMap) len() int { return len(m.slots) }

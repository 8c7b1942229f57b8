package world

import (
	"fmt"

	"github.com/vovakirdan/fogscout/internal/visibility"
)

// ObjectID is a generational handle to a tracked object. The zero value
// refers to nothing; a handle goes stale once its object is removed, even if
// the slot is later reused.
type ObjectID struct {
	index uint32
	gen   uint32
}

// IsZero reports whether id is the zero handle.
func (id ObjectID) IsZero() bool {
	return id.gen == 0
}

// String formats the handle as index.generation.
func (id ObjectID) String() string {
	return fmt.Sprintf("%d.%d", id.index, id.gen)
}

// Kind classifies a tracked object.
type Kind int

const (
	KindLandmark Kind = iota
	KindLoot
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLandmark:
		return "landmark"
	case KindLoot:
		return "loot"
	default:
		return "unknown"
	}
}

// Meta is the game-side data attached to a tracked object.
type Meta struct {
	Kind  Kind
	Name  string
	Count int

	seq uint64 // spawn order
}

// Entry is a read-only copy of one tracked object.
type Entry struct {
	ID ObjectID
	Meta
	visibility.Object
}

type slot struct {
	gen   uint32
	dense int
	live  bool
}

// arena stores tracked objects densely so the classifier can walk them as a
// plain slice. objects, meta and ids are parallel; slots map handles to
// dense positions.
type arena struct {
	slots []slot
	free  []uint32

	objects []visibility.Object
	meta    []Meta
	ids     []ObjectID

	nextSeq uint64
}

func (a *arena) spawn(obj visibility.Object, m Meta) ObjectID {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	}

	s := &a.slots[idx]
	s.gen++
	s.live = true
	s.dense = len(a.objects)

	m.seq = a.nextSeq
	a.nextSeq++

	id := ObjectID{index: idx, gen: s.gen}
	a.objects = append(a.objects, obj)
	a.meta = append(a.meta, m)
	a.ids = append(a.ids, id)
	return id
}

// lookup returns the dense index of id, or false if id is stale.
func (a *arena) lookup(id ObjectID) (int, bool) {
	if id.gen == 0 || int(id.index) >= len(a.slots) {
		return 0, false
	}
	s := a.slots[id.index]
	if !s.live || s.gen != id.gen {
		return 0, false
	}
	return s.dense, true
}

func (a *arena) remove(id ObjectID) bool {
	i, ok := a.lookup(id)
	if !ok {
		return false
	}

	last := len(a.objects) - 1
	if i != last {
		a.objects[i] = a.objects[last]
		a.meta[i] = a.meta[last]
		a.ids[i] = a.ids[last]
		a.slots[a.ids[i].index].dense = i
	}
	a.objects = a.objects[:last]
	a.meta = a.meta[:last]
	a.ids = a.ids[:last]

	a.slots[id.index].live = false
	a.free = append(a.free, id.index)
	return true
}

func (a *arena) entry(i int) Entry {
	return Entry{ID: a.ids[i], Meta: a.meta[i], Object: a.objects[i]}
}

func (a *arena) len() int {
	return len(a.objects)
}

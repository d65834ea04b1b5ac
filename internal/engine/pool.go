package engine

// Handle identifies a slot in a Pool.
type Handle int

// Pool is a fixed-capacity arena of entities. Slots are never allocated after
// construction; killing an entity marks its slot free for the next Spawn.
type Pool[T any] struct {
	slots  []T
	active []bool
	free   []Handle // stack, lowest handle on top
	count  int
}

// NewPool creates a pool with room for capacity entities.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool[T]{
		slots:  make([]T, capacity),
		active: make([]bool, capacity),
		free:   make([]Handle, 0, capacity),
	}
	p.Reset()
	return p
}

// Reset deactivates every slot.
func (p *Pool[T]) Reset() {
	var zero T
	p.free = p.free[:0]
	for i := len(p.slots) - 1; i >= 0; i-- {
		p.slots[i] = zero
		p.active[i] = false
		p.free = append(p.free, Handle(i))
	}
	p.count = 0
}

// Spawn stores v in a free slot. It returns false when the pool is full.
func (p *Pool[T]) Spawn(v T) (Handle, bool) {
	if len(p.free) == 0 {
		return -1, false
	}
	h := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.slots[h] = v
	p.active[h] = true
	p.count++
	return h, true
}

// Kill deactivates the entity at h. Killing an inactive slot is a no-op.
func (p *Pool[T]) Kill(h Handle) bool {
	if !p.Active(h) {
		return false
	}
	var zero T
	p.slots[h] = zero
	p.active[h] = false
	p.free = append(p.free, h)
	p.count--
	return true
}

// Active reports whether h refers to a live entity.
func (p *Pool[T]) Active(h Handle) bool {
	return h >= 0 && int(h) < len(p.slots) && p.active[h]
}

// Get returns the live entity at h, or nil.
func (p *Pool[T]) Get(h Handle) *T {
	if !p.Active(h) {
		return nil
	}
	return &p.slots[h]
}

// Each calls fn for every live entity in slot order.
// fn may Kill the entity it is given.
func (p *Pool[T]) Each(fn func(Handle, *T)) {
	for i := range p.slots {
		if p.active[i] {
			fn(Handle(i), &p.slots[i])
		}
	}
}

// ActiveCount returns the number of live entities.
func (p *Pool[T]) ActiveCount() int {
	return p.count
}

// Cap returns the pool capacity.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Find returns the first live entity, in slot order, for which pred is true.
func (p *Pool[T]) Find(pred func(Handle, *T) bool) (Handle, bool) {
	for i := range p.slots {
		if p.active[i] && pred(Handle(i), &p.slots[i]) {
			return Handle(i), true
		}
	}
	return -1, false
}

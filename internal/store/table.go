package store

// table is one entity collection: rows keyed by id, insertion order, and
// the next id to hand out. Ids are never reused.
type table[T any] struct {
	rows   map[uint]T
	order  []uint
	nextID uint
	clone  func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{
		rows:   make(map[uint]T),
		nextID: 1,
		clone:  clone,
	}
}

func (t *table[T]) list() []T {
	out := make([]T, 0, len(t.rows))
	for _, id := range t.order {
		out = append(out, t.clone(t.rows[id]))
	}
	return out
}

func (t *table[T]) get(id uint) (T, bool) {
	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(v), true
}

func (t *table[T]) has(id uint) bool {
	_, ok := t.rows[id]
	return ok
}

func (t *table[T]) insert(build func(id uint) T) T {
	id := t.nextID
	t.nextID++

	v := build(id)
	t.rows[id] = v
	t.order = append(t.order, id)
	return t.clone(v)
}

func (t *table[T]) update(id uint, apply func(*T)) (T, bool) {
	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	apply(&v)
	t.rows[id] = v
	return t.clone(v), true
}

func (t *table[T]) remove(id uint) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) len() int {
	return len(t.rows)
}

package memory

import "sync"

// table colección en memoria que conserva el orden de inserción. Guarda copias:
// quien lee nunca recibe un puntero a la fila almacenada.
type table[T any] struct {
	mu   sync.RWMutex
	ids  []string
	rows map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(id string, v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; ok {
		return false
	}
	t.ids = append(t.ids, id)
	t.rows[id] = v
	return true
}

func (t *table[T]) get(id string) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return &v, true
}

func (t *table[T]) update(id string, v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = v
	return true
}

func (t *table[T]) remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return
	}
	delete(t.rows, id)
	for i, cur := range t.ids {
		if cur == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
}

func (t *table[T]) list(keep func(*T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*T, 0, len(t.ids))
	for _, id := range t.ids {
		v := t.rows[id]
		if keep == nil || keep(&v) {
			out = append(out, &v)
		}
	}
	return out
}

package state

import (
	"slices"
	"sync"
)

// notifier serializa la entrega de notificaciones de todo el store: los callbacks se ejecutan
// de a uno, en el orden en que se encolaron las transiciones y sin ningún lock tomado,
// de modo que un suscriptor puede leer snapshots o despachar operaciones desde el callback.
type notifier struct {
	mu       sync.Mutex
	queue    []func()
	draining bool
}

// enqueue agrega fn a la cola. Devuelve true si el llamador debe drenar.
func (n *notifier) enqueue(fn func()) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.queue = append(n.queue, fn)
	if n.draining {
		return false
	}
	n.draining = true
	return true
}

func (n *notifier) drain() {
	for {
		n.mu.Lock()
		if len(n.queue) == 0 {
			n.draining = false
			n.mu.Unlock()
			return
		}
		fn := n.queue[0]
		n.queue[0] = nil
		n.queue = n.queue[1:]
		n.mu.Unlock()
		fn()
	}
}

// subscribers lista de callbacks con baja por id.
type subscribers[S any] struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(S)
}

func (s *subscribers[S]) add(fn func(S)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fns == nil {
		s.fns = make(map[int]func(S))
	}
	id := s.next
	s.next++
	s.fns[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.fns, id)
			s.mu.Unlock()
		})
	}
}

func (s *subscribers[S]) publish(v S) {
	s.mu.Lock()
	ids := make([]int, 0, len(s.fns))
	for id := range s.fns {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(S), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.fns[id])
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(v)
	}
}

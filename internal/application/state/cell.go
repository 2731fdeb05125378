package state

import (
	"context"
	"sync"

	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// hooks transiciones comunes pending/rejected de un tipo de estado.
type hooks[S any] struct {
	pending  func(*S)
	rejected func(*S, string)
}

// cell guarda el snapshot actual de un slice. Cada transición produce un valor nuevo;
// nunca se muta un snapshot ya publicado.
type cell[S any] struct {
	name     string
	log      *logger.Logger
	n        *notifier
	hooks    hooks[S]
	onChange func()

	mu   sync.Mutex
	cur  S
	subs subscribers[S]
}

func (c *cell[S]) snapshot() S {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur
}

// apply ejecuta una transición atómica y encola la notificación bajo el mismo lock
// para que los suscriptores vean las transiciones en orden.
func (c *cell[S]) apply(fn func(*S)) {
	c.mu.Lock()
	next := c.cur
	fn(&next)
	c.cur = next
	mustDrain := c.n.enqueue(func() { c.deliver(next) })
	c.mu.Unlock()
	if mustDrain {
		c.n.drain()
	}
}

func (c *cell[S]) deliver(s S) {
	c.subs.publish(s)
	if c.onChange != nil {
		c.onChange()
	}
}

// launch despacha una operación asíncrona: pending de inmediato, y fulfilled/rejected
// cuando call termina. El contexto se desacopla de la cancelación del llamador.
func launch[S, T any](c *cell[S], ctx context.Context, op, fallback string, call func(context.Context) (T, error), fulfilled func(*S, T)) *Pending[T] {
	p := newPending[T]()
	opName := c.name + "/" + op
	c.apply(c.hooks.pending)
	ctx = context.WithoutCancel(ctx)

	go func() {
		v, err := call(ctx)
		if err != nil {
			oe := newOpError(opName, fallback, err)
			c.log.Warn().Err(err).Str("op", opName).Int("status", oe.Status).Msg("operación rechazada")
			c.apply(func(s *S) { c.hooks.rejected(s, oe.Message) })
			p.settle(Result[T]{Err: oe})
			return
		}
		c.log.Debug().Str("op", opName).Msg("operación completada")
		c.apply(func(s *S) { fulfilled(s, v) })
		p.settle(Result[T]{Value: v})
	}()
	return p
}

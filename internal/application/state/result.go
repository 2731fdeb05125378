package state

import (
	"context"
	"errors"
)

// OpError error tipado de una operación rechazada. Message es lo que ve la vista:
// el mensaje del backend si lo hubo, o el texto por defecto de la operación.
type OpError struct {
	Op      string // p.ej. "categories/create"
	Message string
	Status  int // status HTTP si hubo respuesta, 0 en otro caso
	Cause   error
}

func (e *OpError) Error() string { return e.Message }

func (e *OpError) Unwrap() error { return e.Cause }

// backendMessage lo implementan los errores del transporte que traen un mensaje legible.
type backendMessage interface {
	UserMessage() string
	HTTPStatus() int
}

func newOpError(op, fallback string, cause error) *OpError {
	oe := &OpError{Op: op, Message: fallback, Cause: cause}
	var bm backendMessage
	if errors.As(cause, &bm) {
		oe.Status = bm.HTTPStatus()
		if msg := bm.UserMessage(); msg != "" {
			oe.Message = msg
		}
	}
	return oe
}

// Result resultado discriminado de una operación: Value si Err es nil.
type Result[T any] struct {
	Value T
	Err   *OpError
}

// Ok indica si la operación se completó con éxito.
func (r Result[T]) Ok() bool { return r.Err == nil }

// Pending handle de una operación despachada. La operación no se puede cancelar;
// cancelar el contexto de Await solo deja de esperar.
type Pending[T any] struct {
	done chan struct{}
	res  Result[T]
}

func newPending[T any]() *Pending[T] {
	return &Pending[T]{done: make(chan struct{})}
}

func (p *Pending[T]) settle(r Result[T]) {
	p.res = r
	close(p.done)
}

// Done se cierra cuando la operación se asienta.
func (p *Pending[T]) Done() <-chan struct{} { return p.done }

// Await espera el resultado o la cancelación de ctx.
func (p *Pending[T]) Await(ctx context.Context) Result[T] {
	select {
	case <-p.done:
		return p.res
	case <-ctx.Done():
		return Result[T]{Err: &OpError{Op: "await", Message: ctx.Err().Error(), Cause: ctx.Err()}}
	}
}

// Unwrap como Await pero con la convención (valor, error) de Go.
func (p *Pending[T]) Unwrap(ctx context.Context) (T, error) {
	r := p.Await(ctx)
	if r.Err != nil {
		return r.Value, r.Err
	}
	return r.Value, nil
}

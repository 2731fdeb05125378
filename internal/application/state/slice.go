package state

import (
	"context"

	"github.com/jhoicas/catalog-admin/internal/application/ports"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// Messages textos por defecto de cada operación cuando el backend no envía message.
type Messages struct {
	FetchAll string
	FetchOne string
	Create   string
	Update   string
	Delete   string
}

// EntitySlice caché de una colección del catálogo más sus operaciones CRUD asíncronas.
// Las operaciones no leen el estado de otros slices.
type EntitySlice[E Entity, In ports.FormPayload] struct {
	cell *cell[Record[E]]
	gw   ports.EntityGateway[E, In]
	msgs Messages
}

func newEntitySlice[E Entity, In ports.FormPayload](name string, gw ports.EntityGateway[E, In], msgs Messages, n *notifier, log *logger.Logger) *EntitySlice[E, In] {
	return &EntitySlice[E, In]{
		cell: &cell[Record[E]]{
			name: name,
			log:  log.Named(name),
			n:    n,
			hooks: hooks[Record[E]]{
				pending:  beginRecord[E],
				rejected: rejectRecord[E],
			},
			cur: Record[E]{Items: []E{}},
		},
		gw:   gw,
		msgs: msgs,
	}
}

// Name nombre del slice dentro del store ("categories", ...).
func (s *EntitySlice[E, In]) Name() string { return s.cell.name }

// Snapshot devuelve el registro actual. No debe mutarse.
func (s *EntitySlice[E, In]) Snapshot() Record[E] { return s.cell.snapshot() }

// Subscribe registra fn para cada nuevo snapshot. Devuelve la función de baja.
func (s *EntitySlice[E, In]) Subscribe(fn func(Record[E])) func() { return s.cell.subs.add(fn) }

// FetchAll lista la colección. En éxito reemplaza Items por completo (servidor autoritativo).
func (s *EntitySlice[E, In]) FetchAll(ctx context.Context, filter ports.ListFilter) *Pending[[]E] {
	return launch(s.cell, ctx, "getAll", s.msgs.FetchAll,
		func(ctx context.Context) ([]E, error) { return s.gw.List(ctx, filter) },
		func(r *Record[E], items []E) {
			settleRecord(r)
			r.Items = replaceAll(items)
		})
}

// FetchOne carga un ítem en Current.
func (s *EntitySlice[E, In]) FetchOne(ctx context.Context, id string) *Pending[E] {
	return launch(s.cell, ctx, "getById", s.msgs.FetchOne,
		func(ctx context.Context) (E, error) { return s.gw.Get(ctx, id) },
		func(r *Record[E], it E) {
			settleRecord(r)
			r.Current = &it
		})
}

// Create crea un ítem y lo agrega al final de Items. El ítem creado se devuelve al llamador.
func (s *EntitySlice[E, In]) Create(ctx context.Context, in In) *Pending[E] {
	return launch(s.cell, ctx, "create", s.msgs.Create,
		func(ctx context.Context) (E, error) { return s.gw.Create(ctx, in) },
		func(r *Record[E], it E) {
			settleRecord(r)
			r.Items = appendItem(r.Items, it)
		})
}

// Update reemplaza el ítem con el mismo id. Si el id no está en Items, la colección no cambia.
func (s *EntitySlice[E, In]) Update(ctx context.Context, id string, in In) *Pending[E] {
	return launch(s.cell, ctx, "update", s.msgs.Update,
		func(ctx context.Context) (E, error) { return s.gw.Update(ctx, id, in) },
		func(r *Record[E], it E) {
			settleRecord(r)
			r.Items = replaceItem(r.Items, it)
		})
}

// Delete elimina el ítem por id y devuelve ese id. Un id ausente no es error.
func (s *EntitySlice[E, In]) Delete(ctx context.Context, id string) *Pending[string] {
	return launch(s.cell, ctx, "delete", s.msgs.Delete,
		func(ctx context.Context) (string, error) { return id, s.gw.Delete(ctx, id) },
		func(r *Record[E], id string) {
			settleRecord(r)
			r.Items = removeItem(r.Items, id)
		})
}

// ClearError reconoce el error actual. Idempotente: sin error no hay transición.
func (s *EntitySlice[E, In]) ClearError() {
	if s.cell.snapshot().Error == "" {
		return
	}
	s.cell.apply(func(r *Record[E]) { r.Error = "" })
}

// ClearCurrent descarta el ítem cargado con FetchOne.
func (s *EntitySlice[E, In]) ClearCurrent() {
	if s.cell.snapshot().Current == nil {
		return
	}
	s.cell.apply(func(r *Record[E]) { r.Current = nil })
}

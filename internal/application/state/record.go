package state

// Entity lo implementan las entidades cacheables: Key es su id.
type Entity interface {
	Key() string
}

// Record snapshot de una colección: ítems en orden de inserción, estado de carga y error.
// Error vacío equivale a "sin error".
type Record[E Entity] struct {
	Items     []E
	Current   *E
	IsLoading bool
	Error     string
}

// HasError indica si la última operación falló y el error no se ha reconocido.
func (r Record[E]) HasError() bool { return r.Error != "" }

// Find busca un ítem por id.
func (r Record[E]) Find(id string) (E, bool) {
	for _, it := range r.Items {
		if it.Key() == id {
			return it, true
		}
	}
	var zero E
	return zero, false
}

func beginRecord[E Entity](r *Record[E]) {
	r.IsLoading = true
	r.Error = ""
}

func rejectRecord[E Entity](r *Record[E], msg string) {
	r.IsLoading = false
	r.Error = msg
}

func settleRecord[E Entity](r *Record[E]) {
	r.IsLoading = false
	r.Error = ""
}

// Las mutaciones de colección siempre construyen un slice nuevo.

func replaceAll[E Entity](items []E) []E {
	out := make([]E, len(items))
	copy(out, items)
	return out
}

// appendItem agrega al final. Si el backend devuelve un id ya presente se reemplaza en su
// posición, así la colección nunca tiene ids repetidos.
func appendItem[E Entity](items []E, it E) []E {
	for i := range items {
		if items[i].Key() == it.Key() {
			out := make([]E, len(items))
			copy(out, items)
			out[i] = it
			return out
		}
	}
	out := make([]E, 0, len(items)+1)
	out = append(out, items...)
	return append(out, it)
}

// replaceItem reemplaza por id; si el id no está, devuelve items sin cambios.
func replaceItem[E Entity](items []E, it E) []E {
	for i := range items {
		if items[i].Key() == it.Key() {
			out := make([]E, len(items))
			copy(out, items)
			out[i] = it
			return out
		}
	}
	return items
}

// removeItem elimina todas las entradas con ese id; si no hay ninguna, devuelve items sin cambios.
func removeItem[E Entity](items []E, id string) []E {
	out := make([]E, 0, len(items))
	for _, it := range items {
		if it.Key() != id {
			out = append(out, it)
		}
	}
	if len(out) == len(items) {
		return items
	}
	return out
}

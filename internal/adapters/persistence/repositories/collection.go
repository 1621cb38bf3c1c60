package repositories

import (
	"context"
	"log"

	"pizzaria-crm/internal/adapters/persistence/store"
)

// Collection maps record lifecycle operations onto the document store,
// uniformly for every entity type, under one collection name.
//
// Failure policy: every operation catches store errors, logs them with
// collection and id context, and degrades to a safe default (false, nil,
// empty, 0). Callers never see a raw storage error, only boolean/optional
// results. Validation problems never reach this layer.
type Collection struct {
	store store.Store
	name  string
}

// NewCollection binds a collection name to a store handle.
func NewCollection(s store.Store, name string) *Collection {
	return &Collection{store: s, name: name}
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// Criar writes the complete record at collection/id, unconditionally
// overwriting whatever was there (last-write-wins, no existence check).
// Returns false for an empty id or nil fields.
func (c *Collection) Criar(ctx context.Context, id string, fields store.Document) bool {
	if id == "" {
		log.Printf("[%s] criação rejeitada: id vazio", c.name)
		return false
	}
	if fields == nil {
		log.Printf("[%s] criação rejeitada para '%s': campos ausentes", c.name, id)
		return false
	}
	if err := c.store.Put(ctx, c.name, id, fields); err != nil {
		log.Printf("[%s] erro ao criar registro '%s': %v", c.name, id, err)
		return false
	}
	return true
}

// BuscarPorID returns the record, or nil for an empty id, a missing
// record or an empty record.
func (c *Collection) BuscarPorID(ctx context.Context, id string) store.Document {
	if id == "" {
		return nil
	}
	doc, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		log.Printf("[%s] erro ao buscar registro '%s': %v", c.name, id, err)
		return nil
	}
	if len(doc) == 0 {
		return nil
	}
	return doc
}

// ListarTodos returns the value-list of the collection's children map,
// empty if the collection is absent or unreadable.
func (c *Collection) ListarTodos(ctx context.Context) []store.Document {
	children, err := c.store.List(ctx, c.name)
	if err != nil {
		log.Printf("[%s] erro ao listar registros: %v", c.name, err)
		return []store.Document{}
	}
	out := make([]store.Document, 0, len(children))
	for _, doc := range children {
		if len(doc) == 0 {
			continue
		}
		out = append(out, doc)
	}
	return out
}

// Atualizar patches an existing record. It checks existence first and
// returns false without writing when the record does not exist; updating
// never silently creates. The check and the write are two separate store
// calls; concurrent callers on the same id race (last writer wins).
func (c *Collection) Atualizar(ctx context.Context, id string, fields store.Document) bool {
	if id == "" || fields == nil {
		return false
	}
	if c.BuscarPorID(ctx, id) == nil {
		log.Printf("[%s] tentativa de atualizar registro inexistente: %s", c.name, id)
		return false
	}
	if err := c.store.Patch(ctx, c.name, id, fields); err != nil {
		log.Printf("[%s] erro ao atualizar registro '%s': %v", c.name, id, err)
		return false
	}
	return true
}

// Deletar removes an existing record, returning false if there was
// nothing to delete. Same non-atomic check-then-act as Atualizar.
func (c *Collection) Deletar(ctx context.Context, id string) bool {
	if id == "" {
		return false
	}
	if c.BuscarPorID(ctx, id) == nil {
		log.Printf("[%s] tentativa de deletar registro inexistente: %s", c.name, id)
		return false
	}
	if err := c.store.Remove(ctx, c.name, id); err != nil {
		log.Printf("[%s] erro ao deletar registro '%s': %v", c.name, id, err)
		return false
	}
	return true
}

// Existe reports whether the record exists.
func (c *Collection) Existe(ctx context.Context, id string) bool {
	return c.BuscarPorID(ctx, id) != nil
}

// Contar returns the size of the collection's children map, 0 if absent.
func (c *Collection) Contar(ctx context.Context) int {
	children, err := c.store.List(ctx, c.name)
	if err != nil {
		log.Printf("[%s] erro ao contar registros: %v", c.name, err)
		return 0
	}
	return len(children)
}

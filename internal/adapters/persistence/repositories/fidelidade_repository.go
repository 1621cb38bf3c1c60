package repositories

import (
	"context"
	"log"

	"pizzaria-crm/internal/adapters/persistence/store"
	"pizzaria-crm/internal/core/domain"

	"github.com/google/uuid"
)

// fidelidadeRepository implements FidelidadeRepository over the
// "fidelidade" collection.
type fidelidadeRepository struct {
	col *Collection
}

// NewFidelidadeRepository creates a new fidelidade repository.
func NewFidelidadeRepository(s store.Store) FidelidadeRepository {
	return &fidelidadeRepository{col: NewCollection(s, "fidelidade")}
}

// Criar persists a loyalty account, generating an id when absent.
func (r *fidelidadeRepository) Criar(ctx context.Context, f *domain.Fidelidade) (string, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if !r.col.Criar(ctx, f.ID, f.Representation()) {
		return "", ErrOperacaoFalhou
	}
	return f.ID, nil
}

func (r *fidelidadeRepository) BuscarPorID(ctx context.Context, id string) *domain.Fidelidade {
	doc := r.col.BuscarPorID(ctx, id)
	if doc == nil {
		return nil
	}
	return domain.FidelidadeFromRepresentation(doc)
}

// BuscarPorCliente returns the first account owned by the given customer.
func (r *fidelidadeRepository) BuscarPorCliente(ctx context.Context, clienteID string) *domain.Fidelidade {
	if clienteID == "" {
		return nil
	}
	for _, f := range r.ListarTodas(ctx) {
		if f.ClienteID == clienteID {
			return f
		}
	}
	return nil
}

func (r *fidelidadeRepository) ListarTodas(ctx context.Context) []*domain.Fidelidade {
	docs := r.col.ListarTodos(ctx)
	out := make([]*domain.Fidelidade, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.FidelidadeFromRepresentation(doc))
	}
	return out
}

// ListarExpiradas returns accounts whose expiry date already passed.
func (r *fidelidadeRepository) ListarExpiradas(ctx context.Context) []*domain.Fidelidade {
	out := []*domain.Fidelidade{}
	for _, f := range r.ListarTodas(ctx) {
		if f.EstaExpirada() {
			out = append(out, f)
		}
	}
	return out
}

func (r *fidelidadeRepository) Atualizar(ctx context.Context, f *domain.Fidelidade) bool {
	if f.ID == "" {
		log.Printf("[fidelidade] atualização rejeitada: registro sem id")
		return false
	}
	return r.col.Atualizar(ctx, f.ID, f.Representation())
}

func (r *fidelidadeRepository) Deletar(ctx context.Context, id string) bool {
	return r.col.Deletar(ctx, id)
}

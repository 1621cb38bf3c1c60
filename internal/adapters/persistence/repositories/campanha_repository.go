package repositories

import (
	"context"
	"log"

	"pizzaria-crm/internal/adapters/persistence/store"
	"pizzaria-crm/internal/core/domain"

	"github.com/google/uuid"
)

// campanhaRepository implements CampanhaRepository over the "campanhas"
// collection.
type campanhaRepository struct {
	col *Collection
}

// NewCampanhaRepository creates a new campanha repository.
func NewCampanhaRepository(s store.Store) CampanhaRepository {
	return &campanhaRepository{col: NewCollection(s, "campanhas")}
}

// Criar persists a campaign, generating an id when absent.
func (r *campanhaRepository) Criar(ctx context.Context, c *domain.Campanha) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if !r.col.Criar(ctx, c.ID, c.Representation()) {
		return "", ErrOperacaoFalhou
	}
	return c.ID, nil
}

func (r *campanhaRepository) BuscarPorID(ctx context.Context, id string) *domain.Campanha {
	doc := r.col.BuscarPorID(ctx, id)
	if doc == nil {
		return nil
	}
	return domain.CampanhaFromRepresentation(doc)
}

func (r *campanhaRepository) ListarTodas(ctx context.Context) []*domain.Campanha {
	docs := r.col.ListarTodos(ctx)
	out := make([]*domain.Campanha, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.CampanhaFromRepresentation(doc))
	}
	return out
}

// ListarAtivas returns campaigns whose window contains the given date
// (YYYY-MM-DD), both ends inclusive.
func (r *campanhaRepository) ListarAtivas(ctx context.Context, data string) []*domain.Campanha {
	out := []*domain.Campanha{}
	if data == "" {
		return out
	}
	for _, c := range r.ListarTodas(ctx) {
		if c.EstaAtiva(data) {
			out = append(out, c)
		}
	}
	return out
}

func (r *campanhaRepository) Atualizar(ctx context.Context, c *domain.Campanha) bool {
	if c.ID == "" {
		log.Printf("[campanhas] atualização rejeitada: campanha sem id")
		return false
	}
	return r.col.Atualizar(ctx, c.ID, c.Representation())
}

func (r *campanhaRepository) Deletar(ctx context.Context, id string) bool {
	return r.col.Deletar(ctx, id)
}

package repositories

import (
	"context"
	"log"
	"math"
	"strings"

	"pizzaria-crm/internal/adapters/persistence/store"
	"pizzaria-crm/internal/core/domain"

	"github.com/google/uuid"
)

// EstatisticasMotoboys summarizes the courier fleet. Means consider only
// couriers with a recorded value (> 0); with no couriers at all every
// field is zero.
type EstatisticasMotoboys struct {
	Total                  int     `json:"total"`
	Ativos                 int     `json:"ativos"`
	Inativos               int     `json:"inativos"`
	AvaliacaoMediaGeral    float64 `json:"avaliacao_media_geral"`
	TempoMedioEntregaGeral float64 `json:"tempo_medio_entrega_geral"`
}

// motoboyRepository implements MotoboyRepository over the "motoboys"
// collection.
type motoboyRepository struct {
	col *Collection
}

// NewMotoboyRepository creates a new motoboy repository.
func NewMotoboyRepository(s store.Store) MotoboyRepository {
	return &motoboyRepository{col: NewCollection(s, "motoboys")}
}

// Criar persists a courier, generating an id when absent. A courier with
// the same normalized CPF or CNH as an existing one is rejected with
// domain.ErrDuplicateEntry.
func (r *motoboyRepository) Criar(ctx context.Context, m *domain.Motoboy) (string, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if r.BuscarPorCPF(ctx, m.CPF) != nil || r.BuscarPorCNH(ctx, m.CNH) != nil {
		log.Printf("[motoboys] criação rejeitada: CPF ou CNH já cadastrado")
		return "", domain.ErrDuplicateEntry
	}
	if !r.col.Criar(ctx, m.ID, m.Representation()) {
		return "", ErrOperacaoFalhou
	}
	return m.ID, nil
}

func (r *motoboyRepository) BuscarPorID(ctx context.Context, id string) *domain.Motoboy {
	doc := r.col.BuscarPorID(ctx, id)
	if doc == nil {
		return nil
	}
	return domain.MotoboyFromRepresentation(doc)
}

// BuscarPorNome returns the first exact name match, case-insensitive.
func (r *motoboyRepository) BuscarPorNome(ctx context.Context, nome string) *domain.Motoboy {
	if nome == "" {
		return nil
	}
	for _, m := range r.ListarTodos(ctx) {
		if strings.EqualFold(m.Nome, nome) {
			return m
		}
	}
	return nil
}

// BuscarPorCPF compares only the digits.
func (r *motoboyRepository) BuscarPorCPF(ctx context.Context, cpf string) *domain.Motoboy {
	alvo := domain.SomenteDigitos(cpf)
	if alvo == "" {
		return nil
	}
	for _, m := range r.ListarTodos(ctx) {
		if domain.SomenteDigitos(m.CPF) == alvo {
			return m
		}
	}
	return nil
}

// BuscarPorCNH compares only the digits.
func (r *motoboyRepository) BuscarPorCNH(ctx context.Context, cnh string) *domain.Motoboy {
	alvo := domain.SomenteDigitos(cnh)
	if alvo == "" {
		return nil
	}
	for _, m := range r.ListarTodos(ctx) {
		if domain.SomenteDigitos(m.CNH) == alvo {
			return m
		}
	}
	return nil
}

func (r *motoboyRepository) ListarTodos(ctx context.Context) []*domain.Motoboy {
	docs := r.col.ListarTodos(ctx)
	out := make([]*domain.Motoboy, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.MotoboyFromRepresentation(doc))
	}
	return out
}

// ListarAtivos returns couriers available for assignment (status Online).
func (r *motoboyRepository) ListarAtivos(ctx context.Context) []*domain.Motoboy {
	out := []*domain.Motoboy{}
	for _, m := range r.ListarTodos(ctx) {
		if m.EstaDisponivel() {
			out = append(out, m)
		}
	}
	return out
}

func (r *motoboyRepository) ListarPorStatus(ctx context.Context, status string) []*domain.Motoboy {
	out := []*domain.Motoboy{}
	if status == "" {
		return out
	}
	for _, m := range r.ListarTodos(ctx) {
		if m.StatusOperacional == status {
			out = append(out, m)
		}
	}
	return out
}

func (r *motoboyRepository) ListarPorZona(ctx context.Context, zona string) []*domain.Motoboy {
	out := []*domain.Motoboy{}
	if zona == "" {
		return out
	}
	for _, m := range r.ListarTodos(ctx) {
		if m.AtendeZona(zona) {
			out = append(out, m)
		}
	}
	return out
}

// ObterEstatisticas aggregates the whole fleet in memory.
func (r *motoboyRepository) ObterEstatisticas(ctx context.Context) EstatisticasMotoboys {
	todos := r.ListarTodos(ctx)
	stats := EstatisticasMotoboys{Total: len(todos)}
	if stats.Total == 0 {
		return stats
	}

	var somaAvaliacao, somaTempo float64
	var comAvaliacao, comTempo int
	for _, m := range todos {
		if m.EstaDisponivel() {
			stats.Ativos++
		}
		if m.AvaliacaoMedia > 0 {
			somaAvaliacao += m.AvaliacaoMedia
			comAvaliacao++
		}
		if m.TempoMedioEntrega > 0 {
			somaTempo += float64(m.TempoMedioEntrega)
			comTempo++
		}
	}
	stats.Inativos = stats.Total - stats.Ativos
	if comAvaliacao > 0 {
		stats.AvaliacaoMediaGeral = arredondar2(somaAvaliacao / float64(comAvaliacao))
	}
	if comTempo > 0 {
		stats.TempoMedioEntregaGeral = arredondar2(somaTempo / float64(comTempo))
	}
	return stats
}

func (r *motoboyRepository) Atualizar(ctx context.Context, m *domain.Motoboy) bool {
	if m.ID == "" {
		log.Printf("[motoboys] atualização rejeitada: motoboy sem id")
		return false
	}
	return r.col.Atualizar(ctx, m.ID, m.Representation())
}

func (r *motoboyRepository) Deletar(ctx context.Context, id string) bool {
	return r.col.Deletar(ctx, id)
}

func arredondar2(v float64) float64 {
	return math.Round(v*100) / 100
}

func arredondar1(v float64) float64 {
	return math.Round(v*10) / 10
}

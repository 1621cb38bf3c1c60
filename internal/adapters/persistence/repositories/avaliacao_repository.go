package repositories

import (
	"context"
	"log"
	"sort"
	"strings"

	"pizzaria-crm/internal/adapters/persistence/store"
	"pizzaria-crm/internal/core/domain"

	"github.com/google/uuid"
)

// EstatisticasAvaliacoes summarizes every stored rating. The zero value
// is the answer for an empty collection; aggregating nothing is not an
// error.
type EstatisticasAvaliacoes struct {
	Total               int            `json:"total"`
	Positivas           int            `json:"positivas"`
	Negativas           int            `json:"negativas"`
	Neutras             int            `json:"neutras"`
	MediaGeral          float64        `json:"media_geral"`
	DistribuicaoNotas   map[string]int `json:"distribuicao_notas"`
	PercentualPositivas float64        `json:"percentual_positivas"`
	PercentualNegativas float64        `json:"percentual_negativas"`
}

// avaliacaoRepository implements AvaliacaoRepository over the
// "avaliacoes" collection.
type avaliacaoRepository struct {
	col *Collection
}

// NewAvaliacaoRepository creates a new avaliacao repository.
func NewAvaliacaoRepository(s store.Store) AvaliacaoRepository {
	return &avaliacaoRepository{col: NewCollection(s, "avaliacoes")}
}

// Criar persists a rating, generating an id when absent.
func (r *avaliacaoRepository) Criar(ctx context.Context, a *domain.Avaliacao) (string, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if !r.col.Criar(ctx, a.ID, a.Representation()) {
		return "", ErrOperacaoFalhou
	}
	return a.ID, nil
}

func (r *avaliacaoRepository) BuscarPorID(ctx context.Context, id string) *domain.Avaliacao {
	doc := r.col.BuscarPorID(ctx, id)
	if doc == nil {
		return nil
	}
	return domain.AvaliacaoFromRepresentation(doc)
}

func (r *avaliacaoRepository) ListarTodas(ctx context.Context) []*domain.Avaliacao {
	docs := r.col.ListarTodos(ctx)
	out := make([]*domain.Avaliacao, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.AvaliacaoFromRepresentation(doc))
	}
	return out
}

func (r *avaliacaoRepository) ListarPorAvaliador(ctx context.Context, avaliador string) []*domain.Avaliacao {
	out := []*domain.Avaliacao{}
	if avaliador == "" {
		return out
	}
	for _, a := range r.ListarTodas(ctx) {
		if a.Avaliador == avaliador {
			out = append(out, a)
		}
	}
	return out
}

func (r *avaliacaoRepository) ListarPorAvaliado(ctx context.Context, avaliado string) []*domain.Avaliacao {
	out := []*domain.Avaliacao{}
	if avaliado == "" {
		return out
	}
	for _, a := range r.ListarTodas(ctx) {
		if a.Avaliado == avaliado {
			out = append(out, a)
		}
	}
	return out
}

// ListarPorNota returns ratings with score inside [notaMinima, notaMaxima].
func (r *avaliacaoRepository) ListarPorNota(ctx context.Context, notaMinima, notaMaxima float64) []*domain.Avaliacao {
	out := []*domain.Avaliacao{}
	for _, a := range r.ListarTodas(ctx) {
		if a.Nota >= notaMinima && a.Nota <= notaMaxima {
			out = append(out, a)
		}
	}
	return out
}

func (r *avaliacaoRepository) ListarPositivas(ctx context.Context) []*domain.Avaliacao {
	out := []*domain.Avaliacao{}
	for _, a := range r.ListarTodas(ctx) {
		if a.EhPositiva() {
			out = append(out, a)
		}
	}
	return out
}

func (r *avaliacaoRepository) ListarNegativas(ctx context.Context) []*domain.Avaliacao {
	out := []*domain.Avaliacao{}
	for _, a := range r.ListarTodas(ctx) {
		if a.EhNegativa() {
			out = append(out, a)
		}
	}
	return out
}

// ListarRecentes returns the newest ratings first, at most limite of
// them. The timestamp format sorts lexicographically.
func (r *avaliacaoRepository) ListarRecentes(ctx context.Context, limite int) []*domain.Avaliacao {
	todas := r.ListarTodas(ctx)
	sort.Slice(todas, func(i, j int) bool {
		return todas[i].DataHora > todas[j].DataHora
	})
	if limite >= 0 && limite < len(todas) {
		todas = todas[:limite]
	}
	return todas
}

func (r *avaliacaoRepository) ListarComComentarios(ctx context.Context) []*domain.Avaliacao {
	out := []*domain.Avaliacao{}
	for _, a := range r.ListarTodas(ctx) {
		if strings.TrimSpace(a.Comentario) != "" {
			out = append(out, a)
		}
	}
	return out
}

// CalcularMediaPorAvaliado returns the mean score received by avaliado,
// rounded to two decimals, 0.0 when there are no matching ratings.
func (r *avaliacaoRepository) CalcularMediaPorAvaliado(ctx context.Context, avaliado string) float64 {
	lista := r.ListarPorAvaliado(ctx, avaliado)
	if len(lista) == 0 {
		return 0.0
	}
	var total float64
	for _, a := range lista {
		total += a.Nota
	}
	return arredondar2(total / float64(len(lista)))
}

// ObterEstatisticasGerais aggregates all ratings in memory.
func (r *avaliacaoRepository) ObterEstatisticasGerais(ctx context.Context) EstatisticasAvaliacoes {
	todas := r.ListarTodas(ctx)
	stats := EstatisticasAvaliacoes{Total: len(todas)}
	if stats.Total == 0 {
		return stats
	}

	stats.DistribuicaoNotas = map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	var soma float64
	for _, a := range todas {
		soma += a.Nota
		switch {
		case a.EhPositiva():
			stats.Positivas++
		case a.EhNegativa():
			stats.Negativas++
		default:
			stats.Neutras++
		}
		nota := int(a.Nota)
		if nota >= 1 && nota <= 5 {
			stats.DistribuicaoNotas[notaLabel(nota)]++
		}
	}
	total := float64(stats.Total)
	stats.MediaGeral = arredondar2(soma / total)
	stats.PercentualPositivas = arredondar1(float64(stats.Positivas) / total * 100)
	stats.PercentualNegativas = arredondar1(float64(stats.Negativas) / total * 100)
	return stats
}

func (r *avaliacaoRepository) Atualizar(ctx context.Context, a *domain.Avaliacao) bool {
	if a.ID == "" {
		log.Printf("[avaliacoes] atualização rejeitada: avaliação sem id")
		return false
	}
	return r.col.Atualizar(ctx, a.ID, a.Representation())
}

func (r *avaliacaoRepository) Deletar(ctx context.Context, id string) bool {
	return r.col.Deletar(ctx, id)
}

func notaLabel(n int) string {
	return string(rune('0' + n))
}

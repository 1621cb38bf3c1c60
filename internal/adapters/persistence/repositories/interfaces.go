package repositories

import (
	"context"
	"errors"

	"pizzaria-crm/internal/core/domain"
)

// ErrOperacaoFalhou is the "did not succeed" signal entity repositories
// return when the underlying store misbehaved. The storage error itself
// is logged at the collection layer and never propagated.
var ErrOperacaoFalhou = errors.New("operação não concluída")

// UsuarioRepository persists login credential records.
type UsuarioRepository interface {
	Criar(ctx context.Context, u *domain.Usuario) (string, error)
	BuscarPorID(ctx context.Context, id string) *domain.Usuario
	BuscarPorNome(ctx context.Context, nome string) *domain.Usuario
	ListarTodos(ctx context.Context) []*domain.Usuario
	Atualizar(ctx context.Context, u *domain.Usuario) bool
	Deletar(ctx context.Context, id string) bool
	Autenticar(ctx context.Context, nome, senha string) (*domain.Usuario, bool)
}

// ClienteRepository persists customers and answers the marketing queries
// over them.
type ClienteRepository interface {
	Criar(ctx context.Context, c *domain.Cliente) (string, error)
	BuscarPorID(ctx context.Context, id string) *domain.Cliente
	BuscarPorNome(ctx context.Context, nome string) *domain.Cliente
	BuscarPorEmail(ctx context.Context, email string) *domain.Cliente
	BuscarPorCPF(ctx context.Context, cpf string) *domain.Cliente
	ListarTodos(ctx context.Context) []*domain.Cliente
	ListarPorCidade(ctx context.Context, cidade string) []*domain.Cliente
	ListarComOptIn(ctx context.Context, canal string) []*domain.Cliente
	ContarPorCidade(ctx context.Context) map[string]int
	Atualizar(ctx context.Context, c *domain.Cliente) bool
	Deletar(ctx context.Context, id string) bool
}

// MotoboyRepository persists couriers and their operational queries.
type MotoboyRepository interface {
	Criar(ctx context.Context, m *domain.Motoboy) (string, error)
	BuscarPorID(ctx context.Context, id string) *domain.Motoboy
	BuscarPorNome(ctx context.Context, nome string) *domain.Motoboy
	BuscarPorCPF(ctx context.Context, cpf string) *domain.Motoboy
	BuscarPorCNH(ctx context.Context, cnh string) *domain.Motoboy
	ListarTodos(ctx context.Context) []*domain.Motoboy
	ListarAtivos(ctx context.Context) []*domain.Motoboy
	ListarPorStatus(ctx context.Context, status string) []*domain.Motoboy
	ListarPorZona(ctx context.Context, zona string) []*domain.Motoboy
	ObterEstatisticas(ctx context.Context) EstatisticasMotoboys
	Atualizar(ctx context.Context, m *domain.Motoboy) bool
	Deletar(ctx context.Context, id string) bool
}

// AvaliacaoRepository persists rating events and the aggregations the
// dashboards are built on.
type AvaliacaoRepository interface {
	Criar(ctx context.Context, a *domain.Avaliacao) (string, error)
	BuscarPorID(ctx context.Context, id string) *domain.Avaliacao
	ListarTodas(ctx context.Context) []*domain.Avaliacao
	ListarPorAvaliador(ctx context.Context, avaliador string) []*domain.Avaliacao
	ListarPorAvaliado(ctx context.Context, avaliado string) []*domain.Avaliacao
	ListarPorNota(ctx context.Context, notaMinima, notaMaxima float64) []*domain.Avaliacao
	ListarPositivas(ctx context.Context) []*domain.Avaliacao
	ListarNegativas(ctx context.Context) []*domain.Avaliacao
	ListarRecentes(ctx context.Context, limite int) []*domain.Avaliacao
	ListarComComentarios(ctx context.Context) []*domain.Avaliacao
	CalcularMediaPorAvaliado(ctx context.Context, avaliado string) float64
	ObterEstatisticasGerais(ctx context.Context) EstatisticasAvaliacoes
	Atualizar(ctx context.Context, a *domain.Avaliacao) bool
	Deletar(ctx context.Context, id string) bool
}

// CampanhaRepository persists marketing campaigns.
type CampanhaRepository interface {
	Criar(ctx context.Context, c *domain.Campanha) (string, error)
	BuscarPorID(ctx context.Context, id string) *domain.Campanha
	ListarTodas(ctx context.Context) []*domain.Campanha
	ListarAtivas(ctx context.Context, data string) []*domain.Campanha
	Atualizar(ctx context.Context, c *domain.Campanha) bool
	Deletar(ctx context.Context, id string) bool
}

// FidelidadeRepository persists loyalty accounts.
type FidelidadeRepository interface {
	Criar(ctx context.Context, f *domain.Fidelidade) (string, error)
	BuscarPorID(ctx context.Context, id string) *domain.Fidelidade
	BuscarPorCliente(ctx context.Context, clienteID string) *domain.Fidelidade
	ListarTodas(ctx context.Context) []*domain.Fidelidade
	ListarExpiradas(ctx context.Context) []*domain.Fidelidade
	Atualizar(ctx context.Context, f *domain.Fidelidade) bool
	Deletar(ctx context.Context, id string) bool
}

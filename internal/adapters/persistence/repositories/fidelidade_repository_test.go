package repositories

import (
	"context"
	"testing"
	"time"

	"pizzaria-crm/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func criarFidelidade(t *testing.T, repo FidelidadeRepository, clienteID string, pontos int, validade string) string {
	t.Helper()
	f, err := domain.NovaFidelidade("", clienteID, "Cliente "+clienteID, pontos, domain.NivelBronze, validade)
	require.NoError(t, err)
	id, err := repo.Criar(context.Background(), f)
	require.NoError(t, err)
	return id
}

func TestFidelidadeRepositoryBuscarPorCliente(t *testing.T) {
	repo := NewFidelidadeRepository(setupStore(t))
	ctx := context.Background()

	criarFidelidade(t, repo, "c1", 100, "2030-12-31")
	criarFidelidade(t, repo, "c2", 50, "2030-12-31")

	got := repo.BuscarPorCliente(ctx, "c1")
	require.NotNil(t, got)
	assert.Equal(t, 100, got.Pontos)

	assert.Nil(t, repo.BuscarPorCliente(ctx, "c3"))
	assert.Nil(t, repo.BuscarPorCliente(ctx, ""))
}

func TestFidelidadeRepositoryListarExpiradas(t *testing.T) {
	repo := NewFidelidadeRepository(setupStore(t))
	ctx := context.Background()

	ontem := time.Now().AddDate(0, 0, -1).Format(domain.LayoutData)
	amanha := time.Now().AddDate(0, 0, 1).Format(domain.LayoutData)

	criarFidelidade(t, repo, "c1", 100, ontem)
	criarFidelidade(t, repo, "c2", 50, amanha)

	expiradas := repo.ListarExpiradas(ctx)
	require.Len(t, expiradas, 1)
	assert.Equal(t, "c1", expiradas[0].ClienteID)
}

func TestFidelidadeRepositoryResgatePersiste(t *testing.T) {
	repo := NewFidelidadeRepository(setupStore(t))
	ctx := context.Background()

	id := criarFidelidade(t, repo, "c1", 100, "2030-12-31")

	f := repo.BuscarPorID(ctx, id)
	require.NotNil(t, f)
	require.True(t, f.ResgatarPontos(40, "pizza grátis"))
	require.True(t, repo.Atualizar(ctx, f))

	got := repo.BuscarPorID(ctx, id)
	assert.Equal(t, 60, got.Pontos)
	require.Len(t, got.Historico, 1)
	assert.Contains(t, got.Historico[0], "-40 pontos")
}

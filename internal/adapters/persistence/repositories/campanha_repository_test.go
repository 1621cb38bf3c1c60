package repositories

import (
	"context"
	"testing"

	"pizzaria-crm/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func criarCampanha(t *testing.T, repo CampanhaRepository, nome, inicio, fim string) string {
	t.Helper()
	c, err := domain.NovaCampanha("", nome, "", inicio, fim, []string{"email"}, nil)
	require.NoError(t, err)
	id, err := repo.Criar(context.Background(), c)
	require.NoError(t, err)
	return id
}

func TestCampanhaRepositoryListarAtivas(t *testing.T) {
	repo := NewCampanhaRepository(setupStore(t))
	ctx := context.Background()

	criarCampanha(t, repo, "Junho", "2024-06-01", "2024-06-30")
	criarCampanha(t, repo, "Julho", "2024-07-01", "2024-07-31")

	ativas := repo.ListarAtivas(ctx, "2024-06-15")
	require.Len(t, ativas, 1)
	assert.Equal(t, "Junho", ativas[0].Nome)

	// window edges are inclusive
	assert.Len(t, repo.ListarAtivas(ctx, "2024-06-30"), 1)
	assert.Len(t, repo.ListarAtivas(ctx, "2024-07-01"), 1)
	assert.Empty(t, repo.ListarAtivas(ctx, "2024-08-15"))
}

func TestCampanhaRepositoryResultadosPersistem(t *testing.T) {
	repo := NewCampanhaRepository(setupStore(t))
	ctx := context.Background()

	id := criarCampanha(t, repo, "Junho", "2024-06-01", "2024-06-30")

	c := repo.BuscarPorID(ctx, id)
	require.NotNil(t, c)
	require.NoError(t, c.RegistrarResultados(80, 25, 10, -5))
	require.True(t, repo.Atualizar(ctx, c))

	got := repo.BuscarPorID(ctx, id)
	assert.Equal(t, 80, got.ClientesAtingidos)
	assert.Equal(t, -5.0, got.ROI)
}

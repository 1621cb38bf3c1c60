package services

import (
	"context"
	"testing"
	"time"

	"pizzaria-crm/internal/adapters/persistence/repositories"
	"pizzaria-crm/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDashboardService(t *testing.T) (*DashboardService, context.Context) {
	t.Helper()
	st := setupStore(t)
	ctx := context.Background()

	clienteRepo := repositories.NewClienteRepository(st)
	motoboyRepo := repositories.NewMotoboyRepository(st)
	avaliacaoRepo := repositories.NewAvaliacaoRepository(st)
	campanhaRepo := repositories.NewCampanhaRepository(st)
	fidelidadeRepo := repositories.NewFidelidadeRepository(st)

	c1, err := domain.NovoCliente("c1", "Ana", "123.456.789-01", "ana@b.com", "11987654321", "Rua A, Suzano", nil, nil)
	require.NoError(t, err)
	_, err = clienteRepo.Criar(ctx, c1)
	require.NoError(t, err)

	c2, err := domain.NovoCliente("c2", "Bia", "987.654.321-09", "bia@b.com", "11912345678", "Rua B, Suzano", nil, nil)
	require.NoError(t, err)
	_, err = clienteRepo.Criar(ctx, c2)
	require.NoError(t, err)

	online, err := domain.NovoMotoboy("m1", "Carlos", "111.222.333-44", "12345678901", "11911112222",
		domain.StatusOnline, []string{"centro"}, nil, 0, 0)
	require.NoError(t, err)
	_, err = motoboyRepo.Criar(ctx, online)
	require.NoError(t, err)

	offline, err := domain.NovoMotoboy("m2", "Davi", "555.666.777-88", "10987654321", "11933334444",
		domain.StatusOffline, []string{"zona sul"}, nil, 0, 0)
	require.NoError(t, err)
	_, err = motoboyRepo.Criar(ctx, offline)
	require.NoError(t, err)

	for _, nota := range []float64{5, 1} {
		a, err := domain.NovaAvaliacao("", "cliente:c1", "motoboy:m1", nota, "", "")
		require.NoError(t, err)
		_, err = avaliacaoRepo.Criar(ctx, a)
		require.NoError(t, err)
	}

	hoje := time.Now().Format(domain.LayoutData)
	camp, err := domain.NovaCampanha("cp1", "Promo Pizza", "reativar clientes", hoje, hoje,
		[]string{"whatsapp"}, []string{"todos"})
	require.NoError(t, err)
	require.NoError(t, camp.RegistrarResultados(200, 40.0, 10.0, 2.5))
	_, err = campanhaRepo.Criar(ctx, camp)
	require.NoError(t, err)

	amanha := time.Now().AddDate(0, 0, 1).Format(domain.LayoutData)
	f1, err := domain.NovaFidelidade("f1", "c1", "Ana", 100, domain.NivelOuro, amanha)
	require.NoError(t, err)
	_, err = fidelidadeRepo.Criar(ctx, f1)
	require.NoError(t, err)

	f2, err := domain.NovaFidelidade("f2", "c2", "Bia", 10, domain.NivelBronze, amanha)
	require.NoError(t, err)
	_, err = fidelidadeRepo.Criar(ctx, f2)
	require.NoError(t, err)

	return NewDashboardService(clienteRepo, motoboyRepo, avaliacaoRepo, campanhaRepo, fidelidadeRepo), ctx
}

func TestObterVisaoGeral(t *testing.T) {
	svc, ctx := setupDashboardService(t)

	visao := svc.ObterVisaoGeral(ctx)

	assert.Equal(t, 2, visao.TotalClientes)
	assert.Equal(t, 2, visao.ClientesPorCidade["suzano"])
	assert.Equal(t, 2, visao.TotalMotoboys)
	assert.Equal(t, 1, visao.MotoboysOnline)

	assert.Equal(t, 2, visao.Avaliacoes.Total)
	assert.InDelta(t, 3.0, visao.Avaliacoes.MediaGeral, 0.001)

	assert.Equal(t, map[string]int{domain.NivelOuro: 1, domain.NivelBronze: 1}, visao.FidelidadePorNivel)

	assert.Equal(t, 1, visao.TotalCampanhas)
	assert.Equal(t, 200, visao.ClientesAtingidos)
	assert.InDelta(t, 40.0, visao.TaxaRespostaMedia, 0.001)
	assert.InDelta(t, 10.0, visao.ConversaoMedia, 0.001)
}

func TestObterVisaoGeralVazia(t *testing.T) {
	st := setupStore(t)
	svc := NewDashboardService(
		repositories.NewClienteRepository(st),
		repositories.NewMotoboyRepository(st),
		repositories.NewAvaliacaoRepository(st),
		repositories.NewCampanhaRepository(st),
		repositories.NewFidelidadeRepository(st),
	)

	visao := svc.ObterVisaoGeral(context.Background())

	assert.Zero(t, visao.TotalClientes)
	assert.Zero(t, visao.TotalMotoboys)
	assert.Zero(t, visao.Avaliacoes.Total)
	assert.Zero(t, visao.Avaliacoes.MediaGeral)
	assert.Empty(t, visao.FidelidadePorNivel)
	assert.Zero(t, visao.TotalCampanhas)
	assert.Zero(t, visao.TaxaRespostaMedia)
}

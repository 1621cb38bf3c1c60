package repositories

import (
	"context"
	"testing"

	"pizzaria-crm/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoCliente(t *testing.T, nome, cpf, email, endereco string, optIn map[string]bool) *domain.Cliente {
	t.Helper()
	c, err := domain.NovoCliente("", nome, cpf, email, "11987654321", endereco, nil, optIn)
	require.NoError(t, err)
	return c
}

func TestClienteRepositoryCriarEBuscar(t *testing.T) {
	repo := NewClienteRepository(setupStore(t))
	ctx := context.Background()

	c := novoCliente(t, "Ana", "123.456.789-01", "ana@b.com", "Rua A, Centro, Suzano", nil)
	id, err := repo.Criar(ctx, c)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got := repo.BuscarPorID(ctx, id)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Nome)
}

func TestClienteRepositoryRejectsDuplicates(t *testing.T) {
	repo := NewClienteRepository(setupStore(t))
	ctx := context.Background()

	_, err := repo.Criar(ctx, novoCliente(t, "Ana", "123.456.789-01", "ana@b.com", "", nil))
	require.NoError(t, err)

	// same CPF under different formatting
	_, err = repo.Criar(ctx, novoCliente(t, "Outra", "12345678901", "outra@b.com", "", nil))
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)

	// same e-mail under different casing
	_, err = repo.Criar(ctx, novoCliente(t, "Outra", "987.654.321-09", "ANA@B.COM", "", nil))
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
}

func TestClienteRepositoryBuscarPorCPF(t *testing.T) {
	repo := NewClienteRepository(setupStore(t))
	ctx := context.Background()

	_, err := repo.Criar(ctx, novoCliente(t, "Ana", "123.456.789-01", "ana@b.com", "", nil))
	require.NoError(t, err)

	got := repo.BuscarPorCPF(ctx, "12345678901")
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Nome)

	assert.Nil(t, repo.BuscarPorCPF(ctx, "98765432109"))
	assert.Nil(t, repo.BuscarPorCPF(ctx, ""))
}

func TestClienteRepositoryListarPorCidade(t *testing.T) {
	repo := NewClienteRepository(setupStore(t))
	ctx := context.Background()

	_, err := repo.Criar(ctx, novoCliente(t, "Ana", "123.456.789-01", "ana@b.com",
		"Rua A, Centro, Suzano", nil))
	require.NoError(t, err)
	_, err = repo.Criar(ctx, novoCliente(t, "Bia", "987.654.321-09", "bia@b.com",
		"Av. B, Mogi das Cruzes", nil))
	require.NoError(t, err)

	deSuzano := repo.ListarPorCidade(ctx, "suzano")
	require.Len(t, deSuzano, 1)
	assert.Equal(t, "Ana", deSuzano[0].Nome)

	assert.Empty(t, repo.ListarPorCidade(ctx, "guararema"))
	assert.Empty(t, repo.ListarPorCidade(ctx, ""))
}

func TestClienteRepositoryContarPorCidade(t *testing.T) {
	repo := NewClienteRepository(setupStore(t))
	ctx := context.Background()

	for _, c := range []*domain.Cliente{
		novoCliente(t, "Ana", "123.456.789-01", "ana@b.com", "Rua A, Suzano", nil),
		novoCliente(t, "Bia", "987.654.321-09", "bia@b.com", "Rua B, Suzano", nil),
		novoCliente(t, "Caio", "111.222.333-44", "caio@b.com", "", nil),
	} {
		_, err := repo.Criar(ctx, c)
		require.NoError(t, err)
	}

	contagem := repo.ContarPorCidade(ctx)
	assert.Equal(t, 2, contagem["suzano"])
	assert.Equal(t, 1, contagem["não informado"])
}

func TestClienteRepositoryListarComOptIn(t *testing.T) {
	repo := NewClienteRepository(setupStore(t))
	ctx := context.Background()

	_, err := repo.Criar(ctx, novoCliente(t, "Ana", "123.456.789-01", "ana@b.com", "",
		map[string]bool{"email": true, "sms": false}))
	require.NoError(t, err)
	_, err = repo.Criar(ctx, novoCliente(t, "Bia", "987.654.321-09", "bia@b.com", "", nil))
	require.NoError(t, err)

	comEmail := repo.ListarComOptIn(ctx, "email")
	require.Len(t, comEmail, 1)
	assert.Equal(t, "Ana", comEmail[0].Nome)

	assert.Empty(t, repo.ListarComOptIn(ctx, "sms"), "explicit false is not consent")
}

func TestClienteRepositoryAtualizarNeverCreates(t *testing.T) {
	repo := NewClienteRepository(setupStore(t))
	ctx := context.Background()

	c := novoCliente(t, "Ana", "123.456.789-01", "ana@b.com", "", nil)
	c.ID = "fantasma"
	assert.False(t, repo.Atualizar(ctx, c))
	assert.Nil(t, repo.BuscarPorID(ctx, "fantasma"))
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNovaFidelidade(t *testing.T) {
	f, err := NovaFidelidade("f1", "c1", "Ana", 100, NivelPrata, "2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, 100, f.Pontos)
	assert.Empty(t, f.Historico)
}

func TestNovaFidelidadeRejectsBadFields(t *testing.T) {
	_, err := NovaFidelidade("", "", "Ana", 0, NivelBronze, "2025-12-31")
	assert.True(t, IsValidationError(err), "missing cliente_id")

	_, err = NovaFidelidade("", "c1", "Ana", -10, NivelBronze, "2025-12-31")
	assert.True(t, IsValidationError(err), "negative balance")

	_, err = NovaFidelidade("", "c1", "Ana", 0, "diamante", "2025-12-31")
	assert.True(t, IsValidationError(err), "unknown tier")

	_, err = NovaFidelidade("", "c1", "Ana", 0, NivelBronze, "31/12/2025")
	assert.True(t, IsValidationError(err), "bad date layout")
}

func TestAdicionarPontos(t *testing.T) {
	f, err := NovaFidelidade("", "c1", "Ana", 0, NivelBronze, "2025-12-31")
	require.NoError(t, err)

	require.NoError(t, f.AdicionarPontos(50, "pedido #42"))
	assert.Equal(t, 50, f.Pontos)
	require.Len(t, f.Historico, 1)
	assert.Contains(t, f.Historico[0], "+50 pontos: pedido #42")

	assert.True(t, IsValidationError(f.AdicionarPontos(0, "nada")))
	assert.True(t, IsValidationError(f.AdicionarPontos(-5, "nada")))
	assert.Equal(t, 50, f.Pontos)
}

func TestResgatarPontos(t *testing.T) {
	f, err := NovaFidelidade("", "c1", "Ana", 100, NivelOuro, "2025-12-31")
	require.NoError(t, err)

	// over-balance redemption fails and mutates nothing
	assert.False(t, f.ResgatarPontos(150, "pizza grátis"))
	assert.Equal(t, 100, f.Pontos)
	assert.Empty(t, f.Historico)

	assert.True(t, f.ResgatarPontos(40, "pizza grátis"))
	assert.Equal(t, 60, f.Pontos)
	require.Len(t, f.Historico, 1)
	assert.Contains(t, f.Historico[0], "-40 pontos: pizza grátis")

	assert.False(t, f.ResgatarPontos(0, "nada"))
	assert.False(t, f.ResgatarPontos(-10, "nada"))
	assert.Equal(t, 60, f.Pontos)
}

func TestEstaExpirada(t *testing.T) {
	ontem := time.Now().AddDate(0, 0, -1).Format(LayoutData)
	hoje := time.Now().Format(LayoutData)
	amanha := time.Now().AddDate(0, 0, 1).Format(LayoutData)

	assert.True(t, (&Fidelidade{Validade: ontem}).EstaExpirada())
	assert.False(t, (&Fidelidade{Validade: hoje}).EstaExpirada(), "expires end of day, not during")
	assert.False(t, (&Fidelidade{Validade: amanha}).EstaExpirada())
}

func TestFidelidadeRepresentationRoundTrip(t *testing.T) {
	f, err := NovaFidelidade("f1", "c1", "Ana", 100, NivelPrata, "2025-12-31")
	require.NoError(t, err)
	require.NoError(t, f.AdicionarPontos(10, "pedido"))

	got := FidelidadeFromRepresentation(f.Representation())
	assert.Equal(t, f, got)
}

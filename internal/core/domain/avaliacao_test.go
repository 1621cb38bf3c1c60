package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNovaAvaliacao(t *testing.T) {
	a, err := NovaAvaliacao("av1", "cliente:1", "motoboy:9", 4.5, "rápido", "2024-06-15 20:30:00")
	require.NoError(t, err)
	assert.Equal(t, 4.5, a.Nota)
	assert.Equal(t, "2024-06-15 20:30:00", a.DataHora)
}

func TestNovaAvaliacaoDefaultsDataHora(t *testing.T) {
	a, err := NovaAvaliacao("", "cliente:1", "motoboy:9", 3, "", "")
	require.NoError(t, err)
	assert.True(t, ValidData(a.DataHora, LayoutDataHora))
}

func TestNovaAvaliacaoRejectsBadFields(t *testing.T) {
	_, err := NovaAvaliacao("", "", "motoboy:9", 3, "", "")
	assert.True(t, IsValidationError(err))

	_, err = NovaAvaliacao("", "cliente:1", "", 3, "", "")
	assert.True(t, IsValidationError(err))

	_, err = NovaAvaliacao("", "cliente:1", "motoboy:9", 0, "", "")
	assert.True(t, IsValidationError(err), "nota below 1")

	_, err = NovaAvaliacao("", "cliente:1", "motoboy:9", 5.5, "", "")
	assert.True(t, IsValidationError(err), "nota above 5")

	_, err = NovaAvaliacao("", "cliente:1", "motoboy:9", 3, "", "15/06/2024")
	assert.True(t, IsValidationError(err), "bad timestamp layout")
}

func TestAvaliacaoPositivaNegativa(t *testing.T) {
	pos := &Avaliacao{Nota: 4}
	assert.True(t, pos.EhPositiva())
	assert.False(t, pos.EhNegativa())

	neg := &Avaliacao{Nota: 2}
	assert.False(t, neg.EhPositiva())
	assert.True(t, neg.EhNegativa())

	neutra := &Avaliacao{Nota: 3}
	assert.False(t, neutra.EhPositiva())
	assert.False(t, neutra.EhNegativa())
}

func TestAvaliacaoCategoria(t *testing.T) {
	assert.Equal(t, CategoriaExcelente, (&Avaliacao{Nota: 4.5}).Categoria())
	assert.Equal(t, CategoriaBoa, (&Avaliacao{Nota: 3.5}).Categoria())
	assert.Equal(t, CategoriaRegular, (&Avaliacao{Nota: 2.5}).Categoria())
	assert.Equal(t, CategoriaRuim, (&Avaliacao{Nota: 2.4}).Categoria())
	assert.Equal(t, CategoriaRuim, (&Avaliacao{Nota: 1}).Categoria())
}

func TestAvaliacaoRepresentationRoundTrip(t *testing.T) {
	a, err := NovaAvaliacao("av1", "cliente:1", "motoboy:9", 4, "ok", "2024-06-15 20:30:00")
	require.NoError(t, err)

	got := AvaliacaoFromRepresentation(a.Representation())
	assert.Equal(t, a, got)
}

func TestAvaliacaoFromRepresentationCoercesJSONNumbers(t *testing.T) {
	// numbers decoded from JSON arrive as float64; ints must coerce too
	got := AvaliacaoFromRepresentation(Representation{
		"id":   "av1",
		"nota": 4, // untyped int constant
	})
	assert.Equal(t, 4.0, got.Nota)
}

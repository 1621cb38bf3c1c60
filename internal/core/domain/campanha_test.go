package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNovaCampanha(t *testing.T) {
	c, err := NovaCampanha("cp1", "Semana da Pizza", "retenção",
		"2024-06-01", "2024-06-30", []string{"email", "whatsapp"}, []string{"vip"})
	require.NoError(t, err)
	assert.Equal(t, []string{"email", "whatsapp"}, c.Canais)
	assert.Equal(t, 0, c.ClientesAtingidos)
	assert.NotEmpty(t, c.DataCriacao)
}

func TestNovaCampanhaRejectsEndBeforeStart(t *testing.T) {
	_, err := NovaCampanha("", "Teste", "", "2024-06-30", "2024-06-01", nil, nil)
	assert.True(t, IsValidationError(err))
}

func TestNovaCampanhaAcceptsOneDayWindow(t *testing.T) {
	c, err := NovaCampanha("", "Relâmpago", "", "2024-06-15", "2024-06-15", nil, nil)
	require.NoError(t, err)
	assert.True(t, c.EstaAtiva("2024-06-15"))
}

func TestNovaCampanhaRejectsUnknownChannel(t *testing.T) {
	_, err := NovaCampanha("", "Teste", "", "2024-06-01", "2024-06-30", []string{"pombo"}, nil)
	assert.True(t, IsValidationError(err))
}

func TestSetDataFimRequiresDataInicio(t *testing.T) {
	c := &Campanha{}
	err := c.SetDataFim("2024-06-30")
	assert.True(t, IsValidationError(err))

	require.NoError(t, c.SetDataInicio("2024-06-01"))
	assert.NoError(t, c.SetDataFim("2024-06-30"))
}

func TestRegistrarResultados(t *testing.T) {
	c, err := NovaCampanha("", "Teste", "", "2024-06-01", "2024-06-30", nil, nil)
	require.NoError(t, err)

	// ROI is unrestricted, campaigns can lose money
	require.NoError(t, c.RegistrarResultados(120, 35.5, 12.0, -20.0))
	assert.Equal(t, 120, c.ClientesAtingidos)
	assert.Equal(t, -20.0, c.ROI)

	assert.True(t, IsValidationError(c.RegistrarResultados(-1, 0, 0, 0)))
	assert.True(t, IsValidationError(c.RegistrarResultados(0, 101, 0, 0)))
	assert.True(t, IsValidationError(c.RegistrarResultados(0, 0, -1, 0)))
}

func TestCampanhaEstaAtiva(t *testing.T) {
	c := &Campanha{DataInicio: "2024-06-01", DataFim: "2024-06-30"}
	assert.True(t, c.EstaAtiva("2024-06-01"), "inclusive start")
	assert.True(t, c.EstaAtiva("2024-06-30"), "inclusive end")
	assert.True(t, c.EstaAtiva("2024-06-15"))
	assert.False(t, c.EstaAtiva("2024-05-31"))
	assert.False(t, c.EstaAtiva("2024-07-01"))
}

func TestCampanhaRepresentationRoundTrip(t *testing.T) {
	c, err := NovaCampanha("cp1", "Semana da Pizza", "retenção",
		"2024-06-01", "2024-06-30", []string{"email"}, []string{"vip"})
	require.NoError(t, err)
	require.NoError(t, c.RegistrarResultados(50, 10, 5, 2.5))

	got := CampanhaFromRepresentation(c.Representation())
	assert.Equal(t, c, got)
}

func TestCampanhaFromRepresentationNormalizesNilSlices(t *testing.T) {
	got := CampanhaFromRepresentation(Representation{"id": "cp1"})
	assert.NotNil(t, got.Canais)
	assert.NotNil(t, got.PublicosSegmentados)
}

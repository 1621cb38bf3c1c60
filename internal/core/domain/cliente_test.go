package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNovoCliente(t *testing.T) {
	c, err := NovoCliente("c1", "Ana", "123.456.789-01", "ana@b.com", "11 98765-4321",
		"Rua A, 10, Suzano", []string{"calabresa"}, map[string]bool{"email": true})
	require.NoError(t, err)
	assert.Equal(t, PerfilCliente, c.Perfil)
	assert.True(t, c.AceitaMarketing("email"))
	assert.False(t, c.AceitaMarketing("sms"))
}

func TestNovoClienteNormalizesNilContainers(t *testing.T) {
	c, err := NovoCliente("", "Ana", "12345678901", "ana@b.com", "11987654321", "", nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, c.Preferencias)
	assert.NotNil(t, c.OptIn)
}

func TestNovoClienteRejectsBadFields(t *testing.T) {
	_, err := NovoCliente("", "", "12345678901", "ana@b.com", "11987654321", "", nil, nil)
	assert.True(t, IsValidationError(err), "missing nome")

	_, err = NovoCliente("", "Ana", "111", "ana@b.com", "11987654321", "", nil, nil)
	assert.True(t, IsValidationError(err), "bad cpf")

	_, err = NovoCliente("", "Ana", "12345678901", "ana@", "11987654321", "", nil, nil)
	assert.True(t, IsValidationError(err), "bad email")

	_, err = NovoCliente("", "Ana", "12345678901", "ana@b.com", "", "", nil, nil)
	assert.True(t, IsValidationError(err), "missing telefone")

	_, err = NovoCliente("", "Ana", "12345678901", "ana@b.com", "11987654321", "", nil,
		map[string]bool{"pombo": true})
	assert.True(t, IsValidationError(err), "unknown opt-in channel")
}

func TestValidationErrorNamesField(t *testing.T) {
	_, err := NovoCliente("", "Ana", "111", "ana@b.com", "11987654321", "", nil, nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "cpf", verr.Field)
}

func TestClienteRepresentationRoundTrip(t *testing.T) {
	c, err := NovoCliente("c1", "Ana", "12345678901", "ana@b.com", "11987654321",
		"Rua A, 10, Suzano", []string{"calabresa"}, map[string]bool{"email": true, "sms": false})
	require.NoError(t, err)

	got := ClienteFromRepresentation(c.Representation())
	assert.Equal(t, c, got)
}

func TestClienteFromRepresentationIsLenient(t *testing.T) {
	// store-shaped input: JSON decoding gives []interface{} and
	// map[string]interface{}; missing keys give zero values
	got := ClienteFromRepresentation(Representation{
		"id":           "c1",
		"nome":         "Ana",
		"preferencias": []interface{}{"calabresa", "mussarela"},
		"opt_in":       map[string]interface{}{"email": true},
	})
	assert.Equal(t, []string{"calabresa", "mussarela"}, got.Preferencias)
	assert.True(t, got.AceitaMarketing("email"))
	assert.Empty(t, got.CPF)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCPF(t *testing.T) {
	assert.True(t, ValidCPF("12345678901"))
	assert.True(t, ValidCPF("123.456.789-01"), "formatting is stripped before checking")
	assert.True(t, ValidCPF(" 123 456 789 01 "))

	assert.False(t, ValidCPF(""))
	assert.False(t, ValidCPF("1234567890"), "10 digits")
	assert.False(t, ValidCPF("123456789012"), "12 digits")
	assert.False(t, ValidCPF("11111111111"), "all-identical digits")
	assert.False(t, ValidCPF("111.111.111-11"))
}

func TestValidCNH(t *testing.T) {
	assert.True(t, ValidCNH("98765432100"))
	assert.True(t, ValidCNH("987-654-321.00"))
	assert.False(t, ValidCNH("12345"))
	assert.False(t, ValidCNH(""))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("ana@pizzaria.com"))
	assert.True(t, ValidEmail("a.b+c@sub.dominio.br"))
	assert.False(t, ValidEmail("ana@pizzaria"))
	assert.False(t, ValidEmail("ana pizzaria.com"))
	assert.False(t, ValidEmail("@dominio.com"))
	assert.False(t, ValidEmail(""))
}

func TestValidTelefone(t *testing.T) {
	assert.True(t, ValidTelefone("11987654321"))
	assert.True(t, ValidTelefone("+55 (11) 98765-4321"))
	assert.False(t, ValidTelefone(""))
	assert.False(t, ValidTelefone("onze"))
}

func TestValidData(t *testing.T) {
	assert.True(t, ValidData("2024-06-15", LayoutData))
	assert.False(t, ValidData("15/06/2024", LayoutData))
	assert.False(t, ValidData("2024-13-01", LayoutData))
	assert.True(t, ValidData("2024-06-15 20:30:00", LayoutDataHora))
	assert.False(t, ValidData("2024-06-15", LayoutDataHora))
}

func TestValidNota(t *testing.T) {
	assert.True(t, ValidNota(1))
	assert.True(t, ValidNota(3.5))
	assert.True(t, ValidNota(5))
	assert.False(t, ValidNota(0))
	assert.False(t, ValidNota(5.1))
	assert.False(t, ValidNota(-1))
}

func TestValidTaxa(t *testing.T) {
	assert.True(t, ValidTaxa(0))
	assert.True(t, ValidTaxa(100))
	assert.False(t, ValidTaxa(-0.1))
	assert.False(t, ValidTaxa(100.1))
}

func TestSomenteDigitos(t *testing.T) {
	assert.Equal(t, "12345678901", SomenteDigitos("123.456.789-01"))
	assert.Equal(t, "", SomenteDigitos("abc"))
}

package domain

import (
	"fmt"
	"time"
)

// Loyalty tiers.
const (
	NivelBronze = "bronze"
	NivelPrata  = "prata"
	NivelOuro   = "ouro"
)

// ValidNivel reports whether nivel is bronze, prata or ouro.
func ValidNivel(nivel string) bool {
	return nivel == NivelBronze || nivel == NivelPrata || nivel == NivelOuro
}

// Fidelidade is a loyalty account. It back-references the owning customer
// by id and keeps a denormalized copy of the name for listings (synced at
// write time, never live-linked). Historico is an append-only list of
// human-readable point movements.
type Fidelidade struct {
	ID          string
	ClienteID   string
	ClienteNome string
	Pontos      int
	Nivel       string
	Validade    string
	Historico   []string
}

// NovaFidelidade validates every field and returns a loyalty account ready
// to persist.
func NovaFidelidade(id, clienteID, clienteNome string, pontos int, nivel, validade string) (*Fidelidade, error) {
	if clienteID == "" {
		return nil, NewValidationError("cliente_id", clienteID, "obrigatório")
	}
	if pontos < 0 {
		return nil, NewValidationError("pontos", pontos, "não pode ser negativo")
	}
	if !ValidNivel(nivel) {
		return nil, NewValidationError("nivel", nivel, "deve ser bronze, prata ou ouro")
	}
	if !ValidData(validade, LayoutData) {
		return nil, NewValidationError("validade", validade, "formato esperado YYYY-MM-DD")
	}
	return &Fidelidade{
		ID:          id,
		ClienteID:   clienteID,
		ClienteNome: clienteNome,
		Pontos:      pontos,
		Nivel:       nivel,
		Validade:    validade,
		Historico:   []string{},
	}, nil
}

// AdicionarPontos grants points and appends a history entry.
func (f *Fidelidade) AdicionarPontos(pontos int, motivo string) error {
	if pontos <= 0 {
		return NewValidationError("pontos", pontos, "deve ser positivo")
	}
	f.Pontos += pontos
	f.registrar(fmt.Sprintf("+%d pontos: %s", pontos, motivo))
	return nil
}

// ResgatarPontos redeems points. Redeeming more than the current balance
// returns false and changes nothing; the balance never goes negative.
func (f *Fidelidade) ResgatarPontos(pontos int, motivo string) bool {
	if pontos <= 0 || pontos > f.Pontos {
		return false
	}
	f.Pontos -= pontos
	f.registrar(fmt.Sprintf("-%d pontos: %s", pontos, motivo))
	return true
}

func (f *Fidelidade) registrar(mov string) {
	f.Historico = append(f.Historico, fmt.Sprintf("%s %s", time.Now().Format(LayoutDataHora), mov))
}

// EstaExpirada reports whether the expiry date is strictly before today.
func (f *Fidelidade) EstaExpirada() bool {
	return f.Validade < time.Now().Format(LayoutData)
}

// Representation returns the storable key-value form of the record.
func (f *Fidelidade) Representation() Representation {
	return Representation{
		"id":           f.ID,
		"cliente_id":   f.ClienteID,
		"cliente_nome": f.ClienteNome,
		"pontos":       f.Pontos,
		"nivel":        f.Nivel,
		"validade":     f.Validade,
		"historico":    f.Historico,
	}
}

// FidelidadeFromRepresentation rehydrates a persisted record without
// re-running validation.
func FidelidadeFromRepresentation(rep Representation) *Fidelidade {
	f := &Fidelidade{
		ID:          repString(rep, "id"),
		ClienteID:   repString(rep, "cliente_id"),
		ClienteNome: repString(rep, "cliente_nome"),
		Pontos:      repInt(rep, "pontos"),
		Nivel:       repString(rep, "nivel"),
		Validade:    repString(rep, "validade"),
		Historico:   repStringSlice(rep, "historico"),
	}
	if f.Historico == nil {
		f.Historico = []string{}
	}
	return f
}

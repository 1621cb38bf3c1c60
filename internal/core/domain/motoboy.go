package domain

// Operational statuses for couriers. The two states are freely
// transitionable by assignment; "available for assignment" is defined
// purely as status == Online.
const (
	StatusOnline  = "Online"
	StatusOffline = "Offline"
)

// ValidStatusOperacional reports whether s is Online or Offline.
func ValidStatusOperacional(s string) bool {
	return s == StatusOnline || s == StatusOffline
}

// Motoboy is a delivery courier: identity plus driver license, operational
// status, served zones, availability windows and denormalized performance
// numbers (mean rating, mean delivery time in minutes).
type Motoboy struct {
	Identity
	CNH                 string
	StatusOperacional   string
	ZonasAtuacao        []string
	HorariosDisponiveis []string
	AvaliacaoMedia      float64
	TempoMedioEntrega   int
}

// NovoMotoboy validates every field and returns a courier ready to persist.
func NovoMotoboy(id, nome, cpf, cnh, telefone, status string, zonas, horarios []string, avaliacaoMedia float64, tempoMedioEntrega int) (*Motoboy, error) {
	m := &Motoboy{
		Identity:            Identity{ID: id, Nome: nome, Perfil: PerfilMotoboy, CPF: cpf, Telefone: telefone},
		CNH:                 cnh,
		StatusOperacional:   status,
		ZonasAtuacao:        zonas,
		HorariosDisponiveis: horarios,
		AvaliacaoMedia:      avaliacaoMedia,
		TempoMedioEntrega:   tempoMedioEntrega,
	}
	if err := validarIdentity(m.Identity); err != nil {
		return nil, err
	}
	if !ValidCNH(cnh) {
		return nil, NewValidationError("cnh", cnh, "deve conter 11 dígitos")
	}
	if !ValidStatusOperacional(status) {
		return nil, NewValidationError("status_operacional", status, "deve ser Online ou Offline")
	}
	if avaliacaoMedia < 0 || avaliacaoMedia > 5 {
		return nil, NewValidationError("avaliacao_media", avaliacaoMedia, "deve estar entre 0.0 e 5.0")
	}
	if tempoMedioEntrega < 0 {
		return nil, NewValidationError("tempo_medio_entrega", tempoMedioEntrega, "não pode ser negativo")
	}
	if m.ZonasAtuacao == nil {
		m.ZonasAtuacao = []string{}
	}
	if m.HorariosDisponiveis == nil {
		m.HorariosDisponiveis = []string{}
	}
	return m, nil
}

// SetStatusOperacional flips the courier between Online and Offline.
func (m *Motoboy) SetStatusOperacional(status string) error {
	if !ValidStatusOperacional(status) {
		return NewValidationError("status_operacional", status, "deve ser Online ou Offline")
	}
	m.StatusOperacional = status
	return nil
}

// EstaDisponivel reports whether the courier can take an assignment.
func (m *Motoboy) EstaDisponivel() bool {
	return m.StatusOperacional == StatusOnline
}

// AtendeZona reports whether the courier serves the named zone.
func (m *Motoboy) AtendeZona(zona string) bool {
	for _, z := range m.ZonasAtuacao {
		if z == zona {
			return true
		}
	}
	return false
}

// Representation returns the storable key-value form of the record.
func (m *Motoboy) Representation() Representation {
	return Representation{
		"id":                   m.ID,
		"nome":                 m.Nome,
		"perfil":               string(m.Perfil),
		"cpf":                  m.CPF,
		"telefone":             m.Telefone,
		"cnh":                  m.CNH,
		"status_operacional":   m.StatusOperacional,
		"zonas_atuacao":        m.ZonasAtuacao,
		"horarios_disponiveis": m.HorariosDisponiveis,
		"avaliacao_media":      m.AvaliacaoMedia,
		"tempo_medio_entrega":  m.TempoMedioEntrega,
	}
}

// MotoboyFromRepresentation rehydrates a persisted record without
// re-running validation.
func MotoboyFromRepresentation(rep Representation) *Motoboy {
	m := &Motoboy{
		Identity: Identity{
			ID:       repString(rep, "id"),
			Nome:     repString(rep, "nome"),
			Perfil:   Perfil(repString(rep, "perfil")),
			CPF:      repString(rep, "cpf"),
			Telefone: repString(rep, "telefone"),
		},
		CNH:                 repString(rep, "cnh"),
		StatusOperacional:   repString(rep, "status_operacional"),
		ZonasAtuacao:        repStringSlice(rep, "zonas_atuacao"),
		HorariosDisponiveis: repStringSlice(rep, "horarios_disponiveis"),
		AvaliacaoMedia:      repFloat(rep, "avaliacao_media"),
		TempoMedioEntrega:   repInt(rep, "tempo_medio_entrega"),
	}
	if m.ZonasAtuacao == nil {
		m.ZonasAtuacao = []string{}
	}
	if m.HorariosDisponiveis == nil {
		m.HorariosDisponiveis = []string{}
	}
	return m
}

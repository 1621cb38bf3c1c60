package domain

// Canais de comunicação aceitos para opt-in e campanhas.
const (
	CanalEmail    = "email"
	CanalSMS      = "sms"
	CanalWhatsApp = "whatsapp"
)

// ValidCanal reports whether canal is one of email, sms or whatsapp.
func ValidCanal(canal string) bool {
	return canal == CanalEmail || canal == CanalSMS || canal == CanalWhatsApp
}

// Cliente is a customer record: identity plus contact address, preference
// tags and per-channel marketing consent.
type Cliente struct {
	Identity
	Email        string
	Endereco     string
	Preferencias []string
	OptIn        map[string]bool
}

// NovoCliente validates every field and returns a customer ready to
// persist. Nil Preferencias/OptIn are normalized to empty containers.
func NovoCliente(id, nome, cpf, email, telefone, endereco string, preferencias []string, optIn map[string]bool) (*Cliente, error) {
	c := &Cliente{
		Identity:     Identity{ID: id, Nome: nome, Perfil: PerfilCliente, CPF: cpf, Telefone: telefone},
		Email:        email,
		Endereco:     endereco,
		Preferencias: preferencias,
		OptIn:        optIn,
	}
	if err := validarIdentity(c.Identity); err != nil {
		return nil, err
	}
	if !ValidEmail(email) {
		return nil, NewValidationError("email", email, "formato esperado local@dominio.tld")
	}
	for canal := range optIn {
		if !ValidCanal(canal) {
			return nil, NewValidationError("opt_in", canal, "canal deve ser email, sms ou whatsapp")
		}
	}
	if c.Preferencias == nil {
		c.Preferencias = []string{}
	}
	if c.OptIn == nil {
		c.OptIn = map[string]bool{}
	}
	return c, nil
}

// AceitaMarketing reports whether the customer opted in to the given channel.
func (c *Cliente) AceitaMarketing(canal string) bool {
	return c.OptIn[canal]
}

// Representation returns the storable key-value form of the record.
func (c *Cliente) Representation() Representation {
	return Representation{
		"id":           c.ID,
		"nome":         c.Nome,
		"perfil":       string(c.Perfil),
		"cpf":          c.CPF,
		"telefone":     c.Telefone,
		"email":        c.Email,
		"endereco":     c.Endereco,
		"preferencias": c.Preferencias,
		"opt_in":       c.OptIn,
	}
}

// ClienteFromRepresentation rehydrates a persisted record without
// re-running validation.
func ClienteFromRepresentation(rep Representation) *Cliente {
	c := &Cliente{
		Identity: Identity{
			ID:       repString(rep, "id"),
			Nome:     repString(rep, "nome"),
			Perfil:   Perfil(repString(rep, "perfil")),
			CPF:      repString(rep, "cpf"),
			Telefone: repString(rep, "telefone"),
		},
		Email:        repString(rep, "email"),
		Endereco:     repString(rep, "endereco"),
		Preferencias: repStringSlice(rep, "preferencias"),
		OptIn:        repBoolMap(rep, "opt_in"),
	}
	if c.Preferencias == nil {
		c.Preferencias = []string{}
	}
	if c.OptIn == nil {
		c.OptIn = map[string]bool{}
	}
	return c
}

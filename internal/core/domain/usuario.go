package domain

import (
	"pizzaria-crm/internal/pkg/password"
)

// Perfil represents the access profile of a system user.
type Perfil string

const (
	PerfilFuncionario Perfil = "Funcionario"
	PerfilCliente     Perfil = "Cliente"
	PerfilMotoboy     Perfil = "Motoboy"
)

// ValidPerfil reports whether p is one of the known profiles.
func ValidPerfil(p Perfil) bool {
	return p == PerfilFuncionario || p == PerfilCliente || p == PerfilMotoboy
}

// Identity carries the fields shared by every person-shaped entity.
// Cliente and Motoboy embed it by composition; there is no entity
// hierarchy and no polymorphic (de)serialization.
type Identity struct {
	ID       string
	Nome     string
	Perfil   Perfil
	CPF      string
	Telefone string
}

func validarIdentity(id Identity) error {
	if id.Nome == "" {
		return NewValidationError("nome", id.Nome, "obrigatório")
	}
	if !ValidPerfil(id.Perfil) {
		return NewValidationError("perfil", id.Perfil, "deve ser Funcionario, Cliente ou Motoboy")
	}
	if !ValidCPF(id.CPF) {
		return NewValidationError("cpf", id.CPF, "deve conter 11 dígitos, não todos iguais")
	}
	if !ValidTelefone(id.Telefone) {
		return NewValidationError("telefone", id.Telefone, "deve conter apenas dígitos, espaços, hífens, parênteses ou '+'")
	}
	return nil
}

// Usuario is the login credential record. SenhaHash is a 64-character
// lowercase hex sha256 digest; NovoUsuario accepts either a digest or a
// plaintext secret and hashes the latter transparently.
type Usuario struct {
	Identity
	SenhaHash string
}

// NovoUsuario validates every field and returns a credential record ready
// to persist. senha may be empty (credential-less record), a plaintext
// secret, or an already-computed digest.
func NovoUsuario(id, nome string, perfil Perfil, cpf, telefone, senha string) (*Usuario, error) {
	u := &Usuario{
		Identity: Identity{ID: id, Nome: nome, Perfil: perfil, CPF: cpf, Telefone: telefone},
	}
	if err := validarIdentity(u.Identity); err != nil {
		return nil, err
	}
	if senha != "" {
		if password.IsDigest(senha) {
			u.SenhaHash = senha
		} else {
			u.SenhaHash = password.Digest(senha)
		}
	}
	return u, nil
}

// VerificarSenha compares a plaintext secret against the stored digest.
func (u *Usuario) VerificarSenha(senha string) bool {
	return u.SenhaHash != "" && password.Digest(senha) == u.SenhaHash
}

// Representation returns the storable key-value form of the record.
func (u *Usuario) Representation() Representation {
	return Representation{
		"id":         u.ID,
		"nome":       u.Nome,
		"perfil":     string(u.Perfil),
		"cpf":        u.CPF,
		"telefone":   u.Telefone,
		"senha_hash": u.SenhaHash,
	}
}

// UsuarioFromRepresentation rehydrates a persisted record without
// re-running validation.
func UsuarioFromRepresentation(rep Representation) *Usuario {
	return &Usuario{
		Identity: Identity{
			ID:       repString(rep, "id"),
			Nome:     repString(rep, "nome"),
			Perfil:   Perfil(repString(rep, "perfil")),
			CPF:      repString(rep, "cpf"),
			Telefone: repString(rep, "telefone"),
		},
		SenhaHash: repString(rep, "senha_hash"),
	}
}

package repositories

import (
	"context"
	"log"
	"strings"

	"pizzaria-crm/internal/adapters/persistence/store"
	"pizzaria-crm/internal/core/domain"
	"pizzaria-crm/internal/pkg/password"

	"github.com/google/uuid"
)

// usuarioRepository implements UsuarioRepository over the "usuarios"
// collection.
type usuarioRepository struct {
	col *Collection
}

// NewUsuarioRepository creates a new usuario repository.
func NewUsuarioRepository(s store.Store) UsuarioRepository {
	return &usuarioRepository{col: NewCollection(s, "usuarios")}
}

// Criar persists a credential record, generating an id when absent.
func (r *usuarioRepository) Criar(ctx context.Context, u *domain.Usuario) (string, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if !r.col.Criar(ctx, u.ID, u.Representation()) {
		return "", ErrOperacaoFalhou
	}
	return u.ID, nil
}

func (r *usuarioRepository) BuscarPorID(ctx context.Context, id string) *domain.Usuario {
	doc := r.col.BuscarPorID(ctx, id)
	if doc == nil {
		return nil
	}
	return domain.UsuarioFromRepresentation(doc)
}

// BuscarPorNome returns the first usuario whose name matches exactly,
// case-insensitive. The store does not enforce name uniqueness; first
// match in iteration order is the defined resolution.
func (r *usuarioRepository) BuscarPorNome(ctx context.Context, nome string) *domain.Usuario {
	if nome == "" {
		return nil
	}
	for _, u := range r.ListarTodos(ctx) {
		if strings.EqualFold(u.Nome, nome) {
			return u
		}
	}
	return nil
}

func (r *usuarioRepository) ListarTodos(ctx context.Context) []*domain.Usuario {
	docs := r.col.ListarTodos(ctx)
	out := make([]*domain.Usuario, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.UsuarioFromRepresentation(doc))
	}
	return out
}

func (r *usuarioRepository) Atualizar(ctx context.Context, u *domain.Usuario) bool {
	if u.ID == "" {
		log.Printf("[usuarios] atualização rejeitada: usuário sem id")
		return false
	}
	return r.col.Atualizar(ctx, u.ID, u.Representation())
}

func (r *usuarioRepository) Deletar(ctx context.Context, id string) bool {
	return r.col.Deletar(ctx, id)
}

// Autenticar fetches the record by login name, computes the digest of the
// supplied secret and compares it against the stored one. Any lookup miss
// or digest mismatch yields (nil, false), never an error.
func (r *usuarioRepository) Autenticar(ctx context.Context, nome, senha string) (*domain.Usuario, bool) {
	u := r.BuscarPorNome(ctx, nome)
	if u == nil || u.SenhaHash == "" {
		return nil, false
	}
	if !password.Verify(senha, u.SenhaHash) {
		return nil, false
	}
	return u, true
}

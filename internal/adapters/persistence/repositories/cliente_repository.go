package repositories

import (
	"context"
	"log"
	"strings"

	"pizzaria-crm/internal/adapters/persistence/store"
	"pizzaria-crm/internal/core/domain"

	"github.com/google/uuid"
)

// clienteRepository implements ClienteRepository over the "clientes"
// collection. All filtered queries materialize the collection in memory
// and filter in-process; at hundreds of records that is the whole design.
type clienteRepository struct {
	col *Collection
}

// NewClienteRepository creates a new cliente repository.
func NewClienteRepository(s store.Store) ClienteRepository {
	return &clienteRepository{col: NewCollection(s, "clientes")}
}

// Criar persists a customer, generating an id when absent. A customer
// with the same normalized CPF or the same email (case-insensitive) as an
// existing one is rejected with domain.ErrDuplicateEntry.
func (r *clienteRepository) Criar(ctx context.Context, c *domain.Cliente) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if r.BuscarPorCPF(ctx, c.CPF) != nil || r.BuscarPorEmail(ctx, c.Email) != nil {
		log.Printf("[clientes] criação rejeitada: CPF ou e-mail já cadastrado")
		return "", domain.ErrDuplicateEntry
	}
	if !r.col.Criar(ctx, c.ID, c.Representation()) {
		return "", ErrOperacaoFalhou
	}
	return c.ID, nil
}

func (r *clienteRepository) BuscarPorID(ctx context.Context, id string) *domain.Cliente {
	doc := r.col.BuscarPorID(ctx, id)
	if doc == nil {
		return nil
	}
	return domain.ClienteFromRepresentation(doc)
}

// BuscarPorNome returns the first exact name match, case-insensitive.
func (r *clienteRepository) BuscarPorNome(ctx context.Context, nome string) *domain.Cliente {
	if nome == "" {
		return nil
	}
	for _, c := range r.ListarTodos(ctx) {
		if strings.EqualFold(c.Nome, nome) {
			return c
		}
	}
	return nil
}

// BuscarPorEmail returns the first e-mail match, case-insensitive.
func (r *clienteRepository) BuscarPorEmail(ctx context.Context, email string) *domain.Cliente {
	if email == "" {
		return nil
	}
	for _, c := range r.ListarTodos(ctx) {
		if strings.EqualFold(c.Email, email) {
			return c
		}
	}
	return nil
}

// BuscarPorCPF compares only the digits, so "123.456.789-09" and
// "12345678909" are the same CPF.
func (r *clienteRepository) BuscarPorCPF(ctx context.Context, cpf string) *domain.Cliente {
	alvo := domain.SomenteDigitos(cpf)
	if alvo == "" {
		return nil
	}
	for _, c := range r.ListarTodos(ctx) {
		if domain.SomenteDigitos(c.CPF) == alvo {
			return c
		}
	}
	return nil
}

func (r *clienteRepository) ListarTodos(ctx context.Context) []*domain.Cliente {
	docs := r.col.ListarTodos(ctx)
	out := make([]*domain.Cliente, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.ClienteFromRepresentation(doc))
	}
	return out
}

// ListarPorCidade returns customers whose free-text address contains the
// city, case-insensitive. Fragile by design: the address is one string
// and the city is assumed to appear in it.
func (r *clienteRepository) ListarPorCidade(ctx context.Context, cidade string) []*domain.Cliente {
	out := []*domain.Cliente{}
	if cidade == "" {
		return out
	}
	alvo := strings.ToLower(cidade)
	for _, c := range r.ListarTodos(ctx) {
		if strings.Contains(strings.ToLower(c.Endereco), alvo) {
			out = append(out, c)
		}
	}
	return out
}

// ListarComOptIn returns customers that consented to the given channel.
func (r *clienteRepository) ListarComOptIn(ctx context.Context, canal string) []*domain.Cliente {
	out := []*domain.Cliente{}
	if canal == "" {
		return out
	}
	for _, c := range r.ListarTodos(ctx) {
		if c.AceitaMarketing(canal) {
			out = append(out, c)
		}
	}
	return out
}

// ContarPorCidade counts customers per city, taking the city as the last
// comma-separated token of the address ("Rua X, Bairro Y, Suzano").
func (r *clienteRepository) ContarPorCidade(ctx context.Context) map[string]int {
	contador := map[string]int{}
	for _, c := range r.ListarTodos(ctx) {
		partes := strings.Split(strings.ToLower(c.Endereco), ",")
		cidade := strings.TrimSpace(partes[len(partes)-1])
		if cidade == "" {
			cidade = "não informado"
		}
		contador[cidade]++
	}
	return contador
}

func (r *clienteRepository) Atualizar(ctx context.Context, c *domain.Cliente) bool {
	if c.ID == "" {
		log.Printf("[clientes] atualização rejeitada: cliente sem id")
		return false
	}
	return r.col.Atualizar(ctx, c.ID, c.Representation())
}

func (r *clienteRepository) Deletar(ctx context.Context, id string) bool {
	return r.col.Deletar(ctx, id)
}

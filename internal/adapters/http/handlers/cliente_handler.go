package handlers

import (
	"errors"
	"strings"

	"pizzaria-crm/internal/adapters/persistence/repositories"
	"pizzaria-crm/internal/core/domain"
	"pizzaria-crm/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClienteHandler handles customer endpoints
type ClienteHandler struct {
	repo repositories.ClienteRepository
}

// NewClienteHandler creates a new customer handler
func NewClienteHandler(repo repositories.ClienteRepository) *ClienteHandler {
	return &ClienteHandler{repo: repo}
}

// ClienteRequest represents the customer create/update request body
type ClienteRequest struct {
	Nome         string          `json:"nome"`
	CPF          string          `json:"cpf"`
	Email        string          `json:"email"`
	Telefone     string          `json:"telefone"`
	Endereco     string          `json:"endereco"`
	Preferencias []string        `json:"preferencias"`
	OptIn        map[string]bool `json:"opt_in"`
}

func (r *ClienteRequest) toDomain(id string) (*domain.Cliente, error) {
	return domain.NovoCliente(
		id,
		strings.TrimSpace(r.Nome),
		strings.TrimSpace(r.CPF),
		strings.TrimSpace(r.Email),
		strings.TrimSpace(r.Telefone),
		strings.TrimSpace(r.Endereco),
		r.Preferencias,
		r.OptIn,
	)
}

// Criar handles customer creation
func (h *ClienteHandler) Criar(c *fiber.Ctx) error {
	var req ClienteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	cliente, err := req.toDomain("")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	id, err := h.repo.Criar(c.Context(), cliente)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return response.Conflict(c, "cpf ou email já cadastrado")
		}
		return response.InternalServerError(c, "não foi possível salvar o cliente")
	}

	return response.Created(c, "cliente cadastrado", fiber.Map{"id": id})
}

// Buscar handles customer lookup by id
func (h *ClienteHandler) Buscar(c *fiber.Ctx) error {
	cliente := h.repo.BuscarPorID(c.Context(), c.Params("id"))
	if cliente == nil {
		return response.NotFound(c, "cliente não encontrado")
	}
	return response.Success(c, "cliente encontrado", cliente.Representation())
}

// Listar handles customer listing, optionally filtered by cidade or
// marketing opt-in channel via query params.
func (h *ClienteHandler) Listar(c *fiber.Ctx) error {
	var clientes []*domain.Cliente

	switch {
	case c.Query("cidade") != "":
		clientes = h.repo.ListarPorCidade(c.Context(), c.Query("cidade"))
	case c.Query("opt_in") != "":
		clientes = h.repo.ListarComOptIn(c.Context(), c.Query("opt_in"))
	default:
		clientes = h.repo.ListarTodos(c.Context())
	}

	out := make([]domain.Representation, 0, len(clientes))
	for _, cl := range clientes {
		out = append(out, cl.Representation())
	}
	return response.Success(c, "clientes listados", fiber.Map{
		"total":    len(out),
		"clientes": out,
	})
}

// ContarPorCidade handles the customers-per-city aggregation
func (h *ClienteHandler) ContarPorCidade(c *fiber.Ctx) error {
	return response.Success(c, "clientes por cidade", h.repo.ContarPorCidade(c.Context()))
}

// Atualizar handles customer update
func (h *ClienteHandler) Atualizar(c *fiber.Ctx) error {
	var req ClienteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	cliente, err := req.toDomain(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	if !h.repo.Atualizar(c.Context(), cliente) {
		return response.NotFound(c, "cliente não encontrado")
	}
	return response.Success(c, "cliente atualizado", nil)
}

// Deletar handles customer removal
func (h *ClienteHandler) Deletar(c *fiber.Ctx) error {
	if !h.repo.Deletar(c.Context(), c.Params("id")) {
		return response.NotFound(c, "cliente não encontrado")
	}
	return response.Success(c, "cliente removido", nil)
}

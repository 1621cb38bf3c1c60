package handlers

import (
	"strings"

	"pizzaria-crm/internal/adapters/persistence/repositories"
	"pizzaria-crm/internal/core/domain"
	"pizzaria-crm/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// FidelidadeHandler handles loyalty program endpoints
type FidelidadeHandler struct {
	repo repositories.FidelidadeRepository
}

// NewFidelidadeHandler creates a new loyalty handler
func NewFidelidadeHandler(repo repositories.FidelidadeRepository) *FidelidadeHandler {
	return &FidelidadeHandler{repo: repo}
}

// FidelidadeRequest represents the loyalty account create request body
type FidelidadeRequest struct {
	ClienteID   string `json:"cliente_id"`
	ClienteNome string `json:"cliente_nome"`
	Pontos      int    `json:"pontos"`
	Nivel       string `json:"nivel"`
	Validade    string `json:"validade"`
}

// PontosRequest represents an add/redeem points body
type PontosRequest struct {
	Pontos int    `json:"pontos"`
	Motivo string `json:"motivo"`
}

// Criar handles loyalty account creation
func (h *FidelidadeHandler) Criar(c *fiber.Ctx) error {
	var req FidelidadeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	fidelidade, err := domain.NovaFidelidade(
		"",
		strings.TrimSpace(req.ClienteID),
		strings.TrimSpace(req.ClienteNome),
		req.Pontos,
		req.Nivel,
		req.Validade,
	)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	id, err := h.repo.Criar(c.Context(), fidelidade)
	if err != nil {
		return response.InternalServerError(c, "não foi possível salvar a fidelidade")
	}

	return response.Created(c, "fidelidade cadastrada", fiber.Map{"id": id})
}

// Buscar handles loyalty account lookup by id, or by cliente_id query
func (h *FidelidadeHandler) Buscar(c *fiber.Ctx) error {
	fidelidade := h.repo.BuscarPorID(c.Context(), c.Params("id"))
	if fidelidade == nil {
		return response.NotFound(c, "fidelidade não encontrada")
	}
	return response.Success(c, "fidelidade encontrada", fidelidade.Representation())
}

// BuscarPorCliente handles lookup of a customer's loyalty account
func (h *FidelidadeHandler) BuscarPorCliente(c *fiber.Ctx) error {
	fidelidade := h.repo.BuscarPorCliente(c.Context(), c.Params("clienteId"))
	if fidelidade == nil {
		return response.NotFound(c, "cliente sem fidelidade cadastrada")
	}
	return response.Success(c, "fidelidade encontrada", fidelidade.Representation())
}

// Listar handles loyalty account listing; expiradas=true filters to
// accounts past their expiry date.
func (h *FidelidadeHandler) Listar(c *fiber.Ctx) error {
	var fidelidades []*domain.Fidelidade

	if c.QueryBool("expiradas") {
		fidelidades = h.repo.ListarExpiradas(c.Context())
	} else {
		fidelidades = h.repo.ListarTodas(c.Context())
	}

	out := make([]domain.Representation, 0, len(fidelidades))
	for _, f := range fidelidades {
		out = append(out, f.Representation())
	}
	return response.Success(c, "fidelidades listadas", fiber.Map{
		"total":       len(out),
		"fidelidades": out,
	})
}

// AdicionarPontos handles crediting points to an account
func (h *FidelidadeHandler) AdicionarPontos(c *fiber.Ctx) error {
	var req PontosRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	fidelidade := h.repo.BuscarPorID(c.Context(), c.Params("id"))
	if fidelidade == nil {
		return response.NotFound(c, "fidelidade não encontrada")
	}

	if err := fidelidade.AdicionarPontos(req.Pontos, req.Motivo); err != nil {
		return response.BadRequest(c, err.Error())
	}

	if !h.repo.Atualizar(c.Context(), fidelidade) {
		return response.InternalServerError(c, "não foi possível salvar os pontos")
	}
	return response.Success(c, "pontos adicionados", fidelidade.Representation())
}

// ResgatarPontos handles redeeming points from an account. Insufficient
// balance leaves the account untouched.
func (h *FidelidadeHandler) ResgatarPontos(c *fiber.Ctx) error {
	var req PontosRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	fidelidade := h.repo.BuscarPorID(c.Context(), c.Params("id"))
	if fidelidade == nil {
		return response.NotFound(c, "fidelidade não encontrada")
	}

	if !fidelidade.ResgatarPontos(req.Pontos, req.Motivo) {
		return response.BadRequest(c, "saldo de pontos insuficiente")
	}

	if !h.repo.Atualizar(c.Context(), fidelidade) {
		return response.InternalServerError(c, "não foi possível salvar o resgate")
	}
	return response.Success(c, "pontos resgatados", fidelidade.Representation())
}

// Deletar handles loyalty account removal
func (h *FidelidadeHandler) Deletar(c *fiber.Ctx) error {
	if !h.repo.Deletar(c.Context(), c.Params("id")) {
		return response.NotFound(c, "fidelidade não encontrada")
	}
	return response.Success(c, "fidelidade removida", nil)
}

package handlers

import (
	"errors"
	"strings"

	"pizzaria-crm/internal/adapters/persistence/repositories"
	"pizzaria-crm/internal/core/domain"
	"pizzaria-crm/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MotoboyHandler handles courier endpoints
type MotoboyHandler struct {
	repo repositories.MotoboyRepository
}

// NewMotoboyHandler creates a new courier handler
func NewMotoboyHandler(repo repositories.MotoboyRepository) *MotoboyHandler {
	return &MotoboyHandler{repo: repo}
}

// MotoboyRequest represents the courier create/update request body
type MotoboyRequest struct {
	Nome                string   `json:"nome"`
	CPF                 string   `json:"cpf"`
	CNH                 string   `json:"cnh"`
	Telefone            string   `json:"telefone"`
	StatusOperacional   string   `json:"status_operacional"`
	ZonasAtuacao        []string `json:"zonas_atuacao"`
	HorariosDisponiveis []string `json:"horarios_disponiveis"`
	AvaliacaoMedia      float64  `json:"avaliacao_media"`
	TempoMedioEntrega   int      `json:"tempo_medio_entrega"`
}

func (r *MotoboyRequest) toDomain(id string) (*domain.Motoboy, error) {
	return domain.NovoMotoboy(
		id,
		strings.TrimSpace(r.Nome),
		strings.TrimSpace(r.CPF),
		strings.TrimSpace(r.CNH),
		strings.TrimSpace(r.Telefone),
		r.StatusOperacional,
		r.ZonasAtuacao,
		r.HorariosDisponiveis,
		r.AvaliacaoMedia,
		r.TempoMedioEntrega,
	)
}

// Criar handles courier creation
func (h *MotoboyHandler) Criar(c *fiber.Ctx) error {
	var req MotoboyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	motoboy, err := req.toDomain("")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	id, err := h.repo.Criar(c.Context(), motoboy)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return response.Conflict(c, "cpf ou cnh já cadastrado")
		}
		return response.InternalServerError(c, "não foi possível salvar o motoboy")
	}

	return response.Created(c, "motoboy cadastrado", fiber.Map{"id": id})
}

// Buscar handles courier lookup by id
func (h *MotoboyHandler) Buscar(c *fiber.Ctx) error {
	motoboy := h.repo.BuscarPorID(c.Context(), c.Params("id"))
	if motoboy == nil {
		return response.NotFound(c, "motoboy não encontrado")
	}
	return response.Success(c, "motoboy encontrado", motoboy.Representation())
}

// Listar handles courier listing, optionally filtered by status, zona or
// the "ativos" shortcut via query params.
func (h *MotoboyHandler) Listar(c *fiber.Ctx) error {
	var motoboys []*domain.Motoboy

	switch {
	case c.QueryBool("ativos"):
		motoboys = h.repo.ListarAtivos(c.Context())
	case c.Query("status") != "":
		motoboys = h.repo.ListarPorStatus(c.Context(), c.Query("status"))
	case c.Query("zona") != "":
		motoboys = h.repo.ListarPorZona(c.Context(), c.Query("zona"))
	default:
		motoboys = h.repo.ListarTodos(c.Context())
	}

	out := make([]domain.Representation, 0, len(motoboys))
	for _, m := range motoboys {
		out = append(out, m.Representation())
	}
	return response.Success(c, "motoboys listados", fiber.Map{
		"total":    len(out),
		"motoboys": out,
	})
}

// Estatisticas handles the courier fleet aggregation
func (h *MotoboyHandler) Estatisticas(c *fiber.Ctx) error {
	return response.Success(c, "estatísticas dos motoboys", h.repo.ObterEstatisticas(c.Context()))
}

// AtualizarStatus flips a courier between Online and Offline
func (h *MotoboyHandler) AtualizarStatus(c *fiber.Ctx) error {
	var req struct {
		StatusOperacional string `json:"status_operacional"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	motoboy := h.repo.BuscarPorID(c.Context(), c.Params("id"))
	if motoboy == nil {
		return response.NotFound(c, "motoboy não encontrado")
	}

	if err := motoboy.SetStatusOperacional(req.StatusOperacional); err != nil {
		return response.BadRequest(c, err.Error())
	}

	if !h.repo.Atualizar(c.Context(), motoboy) {
		return response.InternalServerError(c, "não foi possível atualizar o status")
	}
	return response.Success(c, "status atualizado", motoboy.Representation())
}

// Atualizar handles courier update
func (h *MotoboyHandler) Atualizar(c *fiber.Ctx) error {
	var req MotoboyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	motoboy, err := req.toDomain(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	if !h.repo.Atualizar(c.Context(), motoboy) {
		return response.NotFound(c, "motoboy não encontrado")
	}
	return response.Success(c, "motoboy atualizado", nil)
}

// Deletar handles courier removal
func (h *MotoboyHandler) Deletar(c *fiber.Ctx) error {
	if !h.repo.Deletar(c.Context(), c.Params("id")) {
		return response.NotFound(c, "motoboy não encontrado")
	}
	return response.Success(c, "motoboy removido", nil)
}

package handlers

import (
	"strings"

	"pizzaria-crm/internal/adapters/persistence/repositories"
	"pizzaria-crm/internal/core/domain"
	"pizzaria-crm/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AvaliacaoHandler handles rating endpoints
type AvaliacaoHandler struct {
	repo repositories.AvaliacaoRepository
}

// NewAvaliacaoHandler creates a new rating handler
func NewAvaliacaoHandler(repo repositories.AvaliacaoRepository) *AvaliacaoHandler {
	return &AvaliacaoHandler{repo: repo}
}

// AvaliacaoRequest represents the rating create request body
type AvaliacaoRequest struct {
	Avaliador  string  `json:"avaliador"`
	Avaliado   string  `json:"avaliado"`
	Nota       float64 `json:"nota"`
	Comentario string  `json:"comentario"`
	DataHora   string  `json:"data_hora"`
}

// Criar handles rating creation
func (h *AvaliacaoHandler) Criar(c *fiber.Ctx) error {
	var req AvaliacaoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	avaliacao, err := domain.NovaAvaliacao(
		"",
		strings.TrimSpace(req.Avaliador),
		strings.TrimSpace(req.Avaliado),
		req.Nota,
		strings.TrimSpace(req.Comentario),
		req.DataHora,
	)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	id, err := h.repo.Criar(c.Context(), avaliacao)
	if err != nil {
		return response.InternalServerError(c, "não foi possível salvar a avaliação")
	}

	return response.Created(c, "avaliação registrada", fiber.Map{"id": id})
}

// Buscar handles rating lookup by id
func (h *AvaliacaoHandler) Buscar(c *fiber.Ctx) error {
	avaliacao := h.repo.BuscarPorID(c.Context(), c.Params("id"))
	if avaliacao == nil {
		return response.NotFound(c, "avaliação não encontrada")
	}
	return response.Success(c, "avaliação encontrada", avaliacao.Representation())
}

// Listar handles rating listing with the dashboard filters as query
// params: avaliador, avaliado, positivas, negativas, com_comentarios,
// recentes=N.
func (h *AvaliacaoHandler) Listar(c *fiber.Ctx) error {
	var avaliacoes []*domain.Avaliacao

	switch {
	case c.Query("avaliador") != "":
		avaliacoes = h.repo.ListarPorAvaliador(c.Context(), c.Query("avaliador"))
	case c.Query("avaliado") != "":
		avaliacoes = h.repo.ListarPorAvaliado(c.Context(), c.Query("avaliado"))
	case c.QueryBool("positivas"):
		avaliacoes = h.repo.ListarPositivas(c.Context())
	case c.QueryBool("negativas"):
		avaliacoes = h.repo.ListarNegativas(c.Context())
	case c.QueryBool("com_comentarios"):
		avaliacoes = h.repo.ListarComComentarios(c.Context())
	case c.QueryInt("recentes") > 0:
		avaliacoes = h.repo.ListarRecentes(c.Context(), c.QueryInt("recentes"))
	default:
		avaliacoes = h.repo.ListarTodas(c.Context())
	}

	out := make([]domain.Representation, 0, len(avaliacoes))
	for _, a := range avaliacoes {
		out = append(out, a.Representation())
	}
	return response.Success(c, "avaliações listadas", fiber.Map{
		"total":      len(out),
		"avaliacoes": out,
	})
}

// Media handles the per-ratee mean score
func (h *AvaliacaoHandler) Media(c *fiber.Ctx) error {
	avaliado := c.Query("avaliado")
	if avaliado == "" {
		return response.BadRequest(c, "avaliado é obrigatório")
	}
	media := h.repo.CalcularMediaPorAvaliado(c.Context(), avaliado)
	return response.Success(c, "média calculada", fiber.Map{
		"avaliado": avaliado,
		"media":    media,
	})
}

// Estatisticas handles the overall rating aggregation
func (h *AvaliacaoHandler) Estatisticas(c *fiber.Ctx) error {
	return response.Success(c, "estatísticas das avaliações", h.repo.ObterEstatisticasGerais(c.Context()))
}

// Deletar handles rating removal
func (h *AvaliacaoHandler) Deletar(c *fiber.Ctx) error {
	if !h.repo.Deletar(c.Context(), c.Params("id")) {
		return response.NotFound(c, "avaliação não encontrada")
	}
	return response.Success(c, "avaliação removida", nil)
}

package handlers

import (
	"strings"
	"time"

	"pizzaria-crm/internal/adapters/persistence/repositories"
	"pizzaria-crm/internal/core/domain"
	"pizzaria-crm/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CampanhaHandler handles marketing campaign endpoints
type CampanhaHandler struct {
	repo repositories.CampanhaRepository
}

// NewCampanhaHandler creates a new campaign handler
func NewCampanhaHandler(repo repositories.CampanhaRepository) *CampanhaHandler {
	return &CampanhaHandler{repo: repo}
}

// CampanhaRequest represents the campaign create request body
type CampanhaRequest struct {
	Nome                string   `json:"nome"`
	Objetivo            string   `json:"objetivo"`
	DataInicio          string   `json:"data_inicio"`
	DataFim             string   `json:"data_fim"`
	Canais              []string `json:"canais"`
	PublicosSegmentados []string `json:"publicos_segmentados"`
}

// ResultadosRequest represents the campaign results body
type ResultadosRequest struct {
	ClientesAtingidos int     `json:"clientes_atingidos"`
	TaxaResposta      float64 `json:"taxa_resposta"`
	Conversao         float64 `json:"conversao"`
	ROI               float64 `json:"roi"`
}

// Criar handles campaign creation
func (h *CampanhaHandler) Criar(c *fiber.Ctx) error {
	var req CampanhaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	campanha, err := domain.NovaCampanha(
		"",
		strings.TrimSpace(req.Nome),
		strings.TrimSpace(req.Objetivo),
		req.DataInicio,
		req.DataFim,
		req.Canais,
		req.PublicosSegmentados,
	)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	id, err := h.repo.Criar(c.Context(), campanha)
	if err != nil {
		return response.InternalServerError(c, "não foi possível salvar a campanha")
	}

	return response.Created(c, "campanha criada", fiber.Map{"id": id})
}

// Buscar handles campaign lookup by id
func (h *CampanhaHandler) Buscar(c *fiber.Ctx) error {
	campanha := h.repo.BuscarPorID(c.Context(), c.Params("id"))
	if campanha == nil {
		return response.NotFound(c, "campanha não encontrada")
	}
	return response.Success(c, "campanha encontrada", campanha.Representation())
}

// Listar handles campaign listing; ativas=true filters to campaigns
// running today.
func (h *CampanhaHandler) Listar(c *fiber.Ctx) error {
	var campanhas []*domain.Campanha

	if c.QueryBool("ativas") {
		hoje := time.Now().Format(domain.LayoutData)
		campanhas = h.repo.ListarAtivas(c.Context(), hoje)
	} else {
		campanhas = h.repo.ListarTodas(c.Context())
	}

	out := make([]domain.Representation, 0, len(campanhas))
	for _, cp := range campanhas {
		out = append(out, cp.Representation())
	}
	return response.Success(c, "campanhas listadas", fiber.Map{
		"total":     len(out),
		"campanhas": out,
	})
}

// RegistrarResultados handles the campaign results update
func (h *CampanhaHandler) RegistrarResultados(c *fiber.Ctx) error {
	var req ResultadosRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	campanha := h.repo.BuscarPorID(c.Context(), c.Params("id"))
	if campanha == nil {
		return response.NotFound(c, "campanha não encontrada")
	}

	if err := campanha.RegistrarResultados(req.ClientesAtingidos, req.TaxaResposta, req.Conversao, req.ROI); err != nil {
		return response.BadRequest(c, err.Error())
	}

	if !h.repo.Atualizar(c.Context(), campanha) {
		return response.InternalServerError(c, "não foi possível salvar os resultados")
	}
	return response.Success(c, "resultados registrados", campanha.Representation())
}

// Deletar handles campaign removal
func (h *CampanhaHandler) Deletar(c *fiber.Ctx) error {
	if !h.repo.Deletar(c.Context(), c.Params("id")) {
		return response.NotFound(c, "campanha não encontrada")
	}
	return response.Success(c, "campanha removida", nil)
}

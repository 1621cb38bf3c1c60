package services

import (
	"context"
	"math"

	"pizzaria-crm/internal/adapters/persistence/repositories"
	"pizzaria-crm/internal/core/domain"
)

// VisaoGeral is the single-response aggregation behind the main screen.
// Every field is zero-valued when its collection is empty.
type VisaoGeral struct {
	TotalClientes      int                                 `json:"total_clientes"`
	ClientesPorCidade  map[string]int                      `json:"clientes_por_cidade"`
	TotalMotoboys      int                                 `json:"total_motoboys"`
	MotoboysOnline     int                                 `json:"motoboys_online"`
	Avaliacoes         repositories.EstatisticasAvaliacoes `json:"avaliacoes"`
	FidelidadePorNivel map[string]int                      `json:"fidelidade_por_nivel"`
	TotalCampanhas     int                                 `json:"total_campanhas"`
	ClientesAtingidos  int                                 `json:"clientes_atingidos"`
	TaxaRespostaMedia  float64                             `json:"taxa_resposta_media"`
	ConversaoMedia     float64                             `json:"conversao_media"`
}

// DashboardService aggregates the five collections for the overview screen.
type DashboardService struct {
	clienteRepo    repositories.ClienteRepository
	motoboyRepo    repositories.MotoboyRepository
	avaliacaoRepo  repositories.AvaliacaoRepository
	campanhaRepo   repositories.CampanhaRepository
	fidelidadeRepo repositories.FidelidadeRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	clienteRepo repositories.ClienteRepository,
	motoboyRepo repositories.MotoboyRepository,
	avaliacaoRepo repositories.AvaliacaoRepository,
	campanhaRepo repositories.CampanhaRepository,
	fidelidadeRepo repositories.FidelidadeRepository,
) *DashboardService {
	return &DashboardService{
		clienteRepo:    clienteRepo,
		motoboyRepo:    motoboyRepo,
		avaliacaoRepo:  avaliacaoRepo,
		campanhaRepo:   campanhaRepo,
		fidelidadeRepo: fidelidadeRepo,
	}
}

// ObterVisaoGeral builds the overview from all collections.
func (s *DashboardService) ObterVisaoGeral(ctx context.Context) *VisaoGeral {
	visao := &VisaoGeral{
		ClientesPorCidade:  map[string]int{},
		FidelidadePorNivel: map[string]int{},
	}

	visao.TotalClientes = len(s.clienteRepo.ListarTodos(ctx))
	visao.ClientesPorCidade = s.clienteRepo.ContarPorCidade(ctx)

	motoboys := s.motoboyRepo.ListarTodos(ctx)
	visao.TotalMotoboys = len(motoboys)
	for _, m := range motoboys {
		if m.StatusOperacional == domain.StatusOnline {
			visao.MotoboysOnline++
		}
	}

	visao.Avaliacoes = s.avaliacaoRepo.ObterEstatisticasGerais(ctx)

	for _, f := range s.fidelidadeRepo.ListarTodas(ctx) {
		visao.FidelidadePorNivel[f.Nivel]++
	}

	campanhas := s.campanhaRepo.ListarTodas(ctx)
	visao.TotalCampanhas = len(campanhas)
	somaResposta := 0.0
	somaConversao := 0.0
	for _, c := range campanhas {
		visao.ClientesAtingidos += c.ClientesAtingidos
		somaResposta += c.TaxaResposta
		somaConversao += c.Conversao
	}
	if len(campanhas) > 0 {
		visao.TaxaRespostaMedia = math.Round(somaResposta/float64(len(campanhas))*100) / 100
		visao.ConversaoMedia = math.Round(somaConversao/float64(len(campanhas))*100) / 100
	}

	return visao
}

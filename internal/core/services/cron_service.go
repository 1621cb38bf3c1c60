package services

import (
	"context"
	"log"

	"pizzaria-crm/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService keeps the denormalized courier stats fresh and reports
// expired loyalty accounts. Runs nightly at 03:30.
type CronService struct {
	motoboyRepo    repositories.MotoboyRepository
	avaliacaoRepo  repositories.AvaliacaoRepository
	fidelidadeRepo repositories.FidelidadeRepository
	scheduler      *cron.Cron
}

// NewCronService creates a new cron service.
func NewCronService(
	motoboyRepo repositories.MotoboyRepository,
	avaliacaoRepo repositories.AvaliacaoRepository,
	fidelidadeRepo repositories.FidelidadeRepository,
) *CronService {
	return &CronService{
		motoboyRepo:    motoboyRepo,
		avaliacaoRepo:  avaliacaoRepo,
		fidelidadeRepo: fidelidadeRepo,
		scheduler:      cron.New(),
	}
}

// Start registers the nightly job and launches the scheduler.
func (s *CronService) Start() {
	s.scheduler.AddFunc("30 3 * * *", func() {
		ctx := context.Background()
		s.SincronizarMediasMotoboys(ctx)
		s.ReportarFidelidadesExpiradas(ctx)
	})
	s.scheduler.Start()
	log.Println("🚀 CronService started (sync diário 03:30)")
}

// Stop stops the scheduler, waiting for a running job to finish.
func (s *CronService) Stop() {
	<-s.scheduler.Stop().Done()
	log.Println("🛑 CronService stopped")
}

// SincronizarMediasMotoboys recomputes each courier's stored rating mean
// from the ratings addressed to "motoboy:<id>".
func (s *CronService) SincronizarMediasMotoboys(ctx context.Context) int {
	atualizados := 0
	for _, m := range s.motoboyRepo.ListarTodos(ctx) {
		media := s.avaliacaoRepo.CalcularMediaPorAvaliado(ctx, "motoboy:"+m.ID)
		if media == m.AvaliacaoMedia {
			continue
		}
		m.AvaliacaoMedia = media
		if s.motoboyRepo.Atualizar(ctx, m) {
			atualizados++
		} else {
			log.Printf("[cron] não foi possível atualizar a média do motoboy %s", m.ID)
		}
	}
	if atualizados > 0 {
		log.Printf("📊 Médias de %d motoboys sincronizadas", atualizados)
	}
	return atualizados
}

// ReportarFidelidadesExpiradas logs every loyalty account past its
// expiry date. The accounts are kept as-is; expiry handling is manual.
func (s *CronService) ReportarFidelidadesExpiradas(ctx context.Context) int {
	expiradas := s.fidelidadeRepo.ListarExpiradas(ctx)
	for _, f := range expiradas {
		log.Printf("⚠️ Fidelidade expirada: cliente %s (%s), %d pontos, validade %s",
			f.ClienteNome, f.ClienteID, f.Pontos, f.Validade)
	}
	return len(expiradas)
}

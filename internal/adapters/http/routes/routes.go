package routes

import (
	"pizzaria-crm/internal/adapters/http/handlers"
	"pizzaria-crm/internal/adapters/http/middleware"
	"pizzaria-crm/internal/adapters/persistence/repositories"
	"pizzaria-crm/internal/adapters/persistence/store"
	"pizzaria-crm/internal/config"
	"pizzaria-crm/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, st store.Store, cfg *config.Config) {
	// Initialize repositories
	usuarioRepo := repositories.NewUsuarioRepository(st)
	clienteRepo := repositories.NewClienteRepository(st)
	motoboyRepo := repositories.NewMotoboyRepository(st)
	avaliacaoRepo := repositories.NewAvaliacaoRepository(st)
	campanhaRepo := repositories.NewCampanhaRepository(st)
	fidelidadeRepo := repositories.NewFidelidadeRepository(st)

	// Initialize services
	authService := services.NewAuthService(usuarioRepo, clienteRepo, cfg)
	dashboardService := services.NewDashboardService(
		clienteRepo,
		motoboyRepo,
		avaliacaoRepo,
		campanhaRepo,
		fidelidadeRepo,
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(st, cfg)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	clienteHandler := handlers.NewClienteHandler(clienteRepo)
	motoboyHandler := handlers.NewMotoboyHandler(motoboyRepo)
	avaliacaoHandler := handlers.NewAvaliacaoHandler(avaliacaoRepo)
	campanhaHandler := handlers.NewCampanhaHandler(campanhaRepo)
	fidelidadeHandler := handlers.NewFidelidadeHandler(fidelidadeRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public, stricter rate limit)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Ratings are open to every authenticated profile: customers and
	// couriers rate each other, employees moderate.
	avaliacaoRoutes := apiV1.Group("/avaliacoes")
	avaliacaoRoutes.Use(middleware.AuthMiddleware(cfg))
	setupAvaliacaoRoutes(avaliacaoRoutes, avaliacaoHandler)

	// Everything else is employee-only back office.
	backoffice := apiV1.Group("")
	backoffice.Use(middleware.AuthMiddleware(cfg))
	backoffice.Use(middleware.FuncionarioOnly())

	setupClienteRoutes(backoffice.Group("/clientes"), clienteHandler)
	setupMotoboyRoutes(backoffice.Group("/motoboys"), motoboyHandler)
	setupCampanhaRoutes(backoffice.Group("/campanhas"), campanhaHandler)
	setupFidelidadeRoutes(backoffice.Group("/fidelidades"), fidelidadeHandler)

	backoffice.Get("/dashboard", dashboardHandler.VisaoGeral)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
}

// setupClienteRoutes configures customer routes
func setupClienteRoutes(router fiber.Router, handler *handlers.ClienteHandler) {
	router.Get("/", handler.Listar)
	router.Get("/por-cidade", handler.ContarPorCidade)
	router.Get("/:id", handler.Buscar)
	router.Post("/", handler.Criar)
	router.Put("/:id", handler.Atualizar)
	router.Delete("/:id", handler.Deletar)
}

// setupMotoboyRoutes configures courier routes
func setupMotoboyRoutes(router fiber.Router, handler *handlers.MotoboyHandler) {
	router.Get("/", handler.Listar)
	router.Get("/estatisticas", handler.Estatisticas)
	router.Get("/:id", handler.Buscar)
	router.Post("/", handler.Criar)
	router.Put("/:id", handler.Atualizar)
	router.Put("/:id/status", handler.AtualizarStatus)
	router.Delete("/:id", handler.Deletar)
}

// setupAvaliacaoRoutes configures rating routes
func setupAvaliacaoRoutes(router fiber.Router, handler *handlers.AvaliacaoHandler) {
	router.Get("/", handler.Listar)
	router.Get("/media", handler.Media)
	router.Get("/estatisticas", handler.Estatisticas)
	router.Get("/:id", handler.Buscar)
	router.Post("/", handler.Criar)
	router.Delete("/:id", middleware.FuncionarioOnly(), handler.Deletar)
}

// setupCampanhaRoutes configures campaign routes
func setupCampanhaRoutes(router fiber.Router, handler *handlers.CampanhaHandler) {
	router.Get("/", handler.Listar)
	router.Get("/:id", handler.Buscar)
	router.Post("/", handler.Criar)
	router.Put("/:id/resultados", handler.RegistrarResultados)
	router.Delete("/:id", handler.Deletar)
}

// setupFidelidadeRoutes configures loyalty routes
func setupFidelidadeRoutes(router fiber.Router, handler *handlers.FidelidadeHandler) {
	router.Get("/", handler.Listar)
	router.Get("/cliente/:clienteId", handler.BuscarPorCliente)
	router.Get("/:id", handler.Buscar)
	router.Post("/", handler.Criar)
	router.Post("/:id/pontos", handler.AdicionarPontos)
	router.Post("/:id/resgate", handler.ResgatarPontos)
	router.Delete("/:id", handler.Deletar)
}

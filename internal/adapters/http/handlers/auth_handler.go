package handlers

import (
	"errors"
	"strings"
	"time"

	"pizzaria-crm/internal/config"
	"pizzaria-crm/internal/core/domain"
	"pizzaria-crm/internal/core/services"
	"pizzaria-crm/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// RegisterRequest represents the customer signup request body
type RegisterRequest struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
	Senha    string `json:"senha"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Nome  string `json:"nome"`
	Senha string `json:"senha"`
}

// Register handles customer self-service signup
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Nome == "" {
		return response.BadRequest(c, "nome é obrigatório")
	}
	if req.Senha == "" {
		return response.BadRequest(c, "senha é obrigatória")
	}
	if len(req.Senha) < 6 {
		return response.BadRequest(c, "senha deve ter ao menos 6 caracteres")
	}

	input := &services.RegisterInput{
		Nome:     strings.TrimSpace(req.Nome),
		CPF:      strings.TrimSpace(req.CPF),
		Email:    strings.TrimSpace(req.Email),
		Telefone: strings.TrimSpace(req.Telefone),
		Endereco: strings.TrimSpace(req.Endereco),
		Senha:    req.Senha,
	}

	result, err := h.authService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCadastroDuplicado):
			return response.Conflict(c, "cpf ou email já cadastrado")
		case domain.IsValidationError(err):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "não foi possível concluir o cadastro")
		}
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Created(c, "cadastro concluído", fiber.Map{
		"access_token": result.AccessToken,
		"usuario": fiber.Map{
			"id":     result.ID,
			"nome":   result.Nome,
			"perfil": result.Perfil,
		},
	})
}

// Login handles user login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Nome == "" {
		return response.BadRequest(c, "nome é obrigatório")
	}
	if req.Senha == "" {
		return response.BadRequest(c, "senha é obrigatória")
	}

	input := &services.LoginInput{
		Nome:  strings.TrimSpace(req.Nome),
		Senha: req.Senha,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrCredenciaisInvalidas) {
			return response.Unauthorized(c, "nome ou senha incorretos")
		}
		return response.InternalServerError(c, "não foi possível efetuar o login")
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Success(c, "login efetuado", fiber.Map{
		"access_token": result.AccessToken,
		"usuario": fiber.Map{
			"id":     result.ID,
			"nome":   result.Nome,
			"perfil": result.Perfil,
		},
	})
}

// RefreshToken handles token refresh
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		return response.Unauthorized(c, "Refresh token not found")
	}

	result, err := h.authService.RefreshToken(c.Context(), refreshToken)
	if err != nil {
		h.clearAuthCookies(c)
		if errors.Is(err, services.ErrTokenExpirado) {
			return response.Unauthorized(c, "sessão expirada, faça login novamente")
		}
		return response.Unauthorized(c, "token inválido")
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Success(c, "token renovado", fiber.Map{
		"access_token": result.AccessToken,
	})
}

// Logout clears the session cookies
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearAuthCookies(c)
	return response.Success(c, "sessão encerrada", nil)
}

// Me returns the authenticated user's identity claims
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	return response.Success(c, "usuário autenticado", fiber.Map{
		"id":     userID,
		"nome":   c.Locals("nome"),
		"perfil": c.Locals("perfil"),
	})
}

// setAuthCookies sets access and refresh token cookies
func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		MaxAge:   h.cfg.JWT.AccessTokenMins * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   h.cfg.JWT.RefreshTokenDays * 24 * 60 * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// clearAuthCookies clears auth cookies
func (h *AuthHandler) clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Now().Add(-1 * time.Hour),
			Secure:   h.cfg.Cookie.Secure,
			HTTPOnly: true,
			SameSite: h.cfg.Cookie.SameSite,
			Domain:   h.cfg.Cookie.Domain,
		})
	}
}

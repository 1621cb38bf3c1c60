package middleware

import (
	"strings"

	"pizzaria-crm/internal/config"
	"pizzaria-crm/internal/pkg/jwt"
	"pizzaria-crm/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Set user info in context
		c.Locals("userID", claims.UserID)
		c.Locals("nome", claims.Nome)
		c.Locals("perfil", claims.Perfil)

		return c.Next()
	}
}

// PerfilMiddleware creates profile-based authorization middleware
func PerfilMiddleware(allowedPerfis ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		perfil, ok := c.Locals("perfil").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowed := range allowedPerfis {
			if perfil == allowed {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// FuncionarioOnly middleware allows only the Funcionario profile
func FuncionarioOnly() fiber.Handler {
	return PerfilMiddleware("Funcionario")
}

package http

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/pkg/jwt"
)

// Claves de c.Locals con el operador autenticado.
const (
	LocalUsername = "username"
	LocalRole     = "role"
)

func deny(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// bearerToken extrae el token de "Authorization: Bearer <token>".
// Si falta o está mal formado devuelve el código de error a responder.
func bearerToken(header string) (token, code, msg string) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", "MISSING_TOKEN", "Authorization header requerido"
	}
	// Solo el esquema, sin token.
	if strings.EqualFold(header, "Bearer") {
		return "", "MISSING_TOKEN", "token vacío"
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", "INVALID_TOKEN", "formato: Bearer <token>"
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", "MISSING_TOKEN", "token vacío"
	}
	return token, "", ""
}

// AuthMiddleware valida el JWT del operador y deja username y role en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, code, msg := bearerToken(c.Get(fiber.HeaderAuthorization))
		if code != "" {
			return deny(c, fiber.StatusUnauthorized, code, msg)
		}
		claims, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return deny(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole deja pasar solo a los roles indicados; va después de AuthMiddleware.
// Token sin rol: 401 MISSING_ROLE. Rol no permitido: 403 FORBIDDEN.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch role := GetRole(c); {
		case role == "":
			return deny(c, fiber.StatusUnauthorized, "MISSING_ROLE", "el token no incluye rol")
		case !slices.Contains(roles, role):
			return deny(c, fiber.StatusForbidden, "FORBIDDEN", "rol sin permiso para el back-office")
		}
		return c.Next()
	}
}

// GetUsername operador autenticado.
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

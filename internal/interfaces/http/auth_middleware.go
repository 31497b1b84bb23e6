package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/pkg/jwt"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// Locals keys con la identidad del token.
const (
	LocalUserID   = "user_id"
	LocalEmail    = "email"
	LocalUsername = "username"
)

// TokenVerifier valida un token y devuelve sus claims (*jwt.Issuer lo implementa).
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

type identityKey struct{}

// AuthMiddleware valida el Bearer Token. Sin cabecera o con formato distinto de
// "Bearer <token>" responde 401; si el token no verifica, 403. En caso de éxito deja la
// identidad en c.Locals y en c.UserContext().
func AuthMiddleware(verifier TokenVerifier, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return writeError(c, log, domain.ErrUnauthenticated)
		}
		claims, err := verifier.Verify(token)
		if err != nil {
			return writeError(c, log, domain.ErrForbidden)
		}
		id := claims.Identity()
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalEmail, id.Email)
		c.Locals(LocalUsername, id.Username)
		c.SetUserContext(context.WithValue(c.UserContext(), identityKey{}, id))
		return c.Next()
	}
}

// bearerToken extrae el token de "Authorization: Bearer <token>"; "" si falta o no tiene ese formato.
func bearerToken(c *fiber.Ctx) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(c.Get(fiber.HeaderAuthorization)), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetIdentity devuelve la identidad completa del token.
func GetIdentity(c *fiber.Ctx) jwt.Identity {
	id, _ := IdentityFromContext(c.UserContext())
	return id
}

// IdentityFromContext recupera la identidad que AuthMiddleware dejó en el context.Context.
func IdentityFromContext(ctx context.Context) (jwt.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(jwt.Identity)
	return id, ok
}

package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Verifier checks the bearer credential on a protected request. Handlers
// depend on this interface only, so swapping the stub for real token
// verification needs no handler changes.
type Verifier interface {
	Verify(token string) error
}

// StubVerifier accepts any bearer token. It preserves the current demo
// behavior: a credential must be present but is not validated.
type StubVerifier struct{}

func (StubVerifier) Verify(string) error { return nil }

// TokenVerifier validates HS256 tokens issued by GenerateToken.
type TokenVerifier struct {
	Secret string
}

func (v TokenVerifier) Verify(token string) error {
	_, err := ParseToken(v.Secret, token)
	return err
}

// Protect rejects requests without a well-formed bearer credential and
// hands the token to the configured Verifier.
func Protect(v Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing Authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header must be 'Bearer <token>'")
		}

		if err := v.Verify(parts[1]); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		return c.Next()
	}
}

package auth

import (
	"log"
	"time"

	"estate-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler authenticates the single configured credential pair and
// issues access and refresh tokens, both returned in the body and set as
// HTTP-only cookies.
func LoginHandler(cfg *config.Config) fiber.Handler {
	// compare a bcrypt digest at request time instead of the raw secret
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("[FATAL] could not hash admin password: %v", err)
	}

	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if body.Username != cfg.AdminUsername ||
			bcrypt.CompareHashAndPassword(passwordHash, []byte(body.Password)) != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "incorrect username or password")
		}

		accessToken, err := GenerateToken(cfg.JWTSecret, body.Username, AccessTokenTTL)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not issue token")
		}
		refreshToken, err := GenerateToken(cfg.JWTSecret, body.Username, RefreshTokenTTL)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not issue token")
		}

		setTokenCookie(c, accessCookie, accessToken, AccessTokenTTL)
		setTokenCookie(c, refreshCookie, refreshToken, RefreshTokenTTL)

		return c.JSON(fiber.Map{
			"message": "Login successful",
			"user": fiber.Map{
				"username": body.Username,
				"role":     "admin",
			},
			"access_token": accessToken,
			"token_type":   "bearer",
		})
	}
}

// LogoutHandler clears both token cookies.
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		expireCookie(c, accessCookie)
		expireCookie(c, refreshCookie)
		return c.JSON(fiber.Map{"message": "Logout successful"})
	}
}

func setTokenCookie(c *fiber.Ctx, name, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "Bearer " + token,
		MaxAge:   int(ttl.Seconds()),
		HTTPOnly: true,
		Secure:   false, // set true behind HTTPS
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func expireCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

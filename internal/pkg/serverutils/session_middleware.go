package serverutils

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionCookieName = "session_id"

// SessionIdentityMiddleware derives a per-caller session id. Every caller
// gets their own conversation history; there is no shared global session.
//
// Resolution order:
//  1. a valid Bearer JWT: the subject claim identifies the caller
//  2. an existing session_id cookie
//  3. a freshly minted uuid, set as a cookie for subsequent requests
func SessionIdentityMiddleware(ctx *fiber.Ctx) error {
	if sub, ok := subjectFromBearer(ctx.Get("Authorization")); ok {
		ctx.Locals("session_id", "user:"+sub)
		return ctx.Next()
	}

	if cookie := ctx.Cookies(sessionCookieName); cookie != "" {
		ctx.Locals("session_id", cookie)
		return ctx.Next()
	}

	sessionID := uuid.New().String()
	ctx.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
	ctx.Locals("session_id", sessionID)
	return ctx.Next()
}

func subjectFromBearer(authHeader string) (string, bool) {
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return "", false
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", false
	}

	token, err := jwt.Parse(authHeader[7:], func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sub, _ := claims.GetSubject()
	if sub == "" {
		return "", false
	}
	return sub, true
}

// JwtMiddleware guards admin routes (corpus management). Unlike session
// identity, a missing or invalid token here is a hard reject.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	ctx.Locals("user_id", claims["user_id"])
	return ctx.Next()
}

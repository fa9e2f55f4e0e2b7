// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/configs"
	authHelper "skm_backend/internals/helpers/auth"
	"skm_backend/internals/log"
)

const LocIdentity = "identity"

// IdentityResolver memetakan id pada klaim token ke identitas yang tersimpan.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, userID uint) (*authHelper.Identity, error)
}

// ResolveIdentity memverifikasi bearer token bila ada. Token kosong, rusak,
// kedaluwarsa, atau user yang sudah tidak ada membuat request tetap anonim;
// 401 hanya dikeluarkan oleh guard pada route yang butuh identitas.
func ResolveIdentity(resolver IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}

		claims, err := authHelper.ParseToken(tokenString, configs.JWTSecret)
		if err != nil {
			log.Debugf("[AUTH] token ditolak: %v", err)
			return c.Next()
		}

		identity, err := resolver.ResolveIdentity(c.UserContext(), claims.ID)
		if err != nil {
			log.Debugf("[AUTH] user id=%d tidak dapat di-resolve: %v", claims.ID, err)
			return c.Next()
		}

		c.Locals(LocIdentity, identity)
		return c.Next()
	}
}

// CurrentIdentity: nil bila request anonim.
func CurrentIdentity(c *fiber.Ctx) *authHelper.Identity {
	id, _ := c.Locals(LocIdentity).(*authHelper.Identity)
	return id
}

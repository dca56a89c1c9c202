package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/fixtrack/internal/models"
)

// authenticateRequest resolves the bearer token to a live user row. The
// subject email is looked up on every request, so tokens for deleted or
// renamed accounts stop working immediately.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (models.User, error) {
	rawToken, err := bearerToken(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return models.User{}, err
	}

	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return models.User{}, errors.New("invalid token")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return models.User{}, errors.New("token expired")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return models.User{}, errors.New("missing token subject")
	}

	handler.ensureDependencies()
	user, err := handler.repositories.Users.FindByNormalizedEmail(claims.Subject)
	if err != nil {
		return models.User{}, errors.New("unknown token subject")
	}
	return user, nil
}

func bearerToken(header string) (string, error) {
	trimmed := strings.TrimSpace(header)
	if trimmed == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.SplitN(trimmed, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}

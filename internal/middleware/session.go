package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextTRN is the gin context key holding the authenticated TRN.
const ContextTRN = "trn"

// RequireSession validates the session bearer token and injects the TRN into
// the context.
func RequireSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		trn, err := TRNFromHeader(c.GetHeader("Authorization"), secret)
		if err != nil {
			log.Println("[SESSION] [ERROR] token validation failed:", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if trn == "" {
			log.Println("[SESSION] [ERROR] missing token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		c.Set(ContextTRN, trn)
		c.Next()
	}
}

// TRNFromHeader extracts the TRN from a bearer token. An absent header is not
// an error: it returns "", nil so callers can treat the request as a guest.
func TRNFromHeader(header, secret string) (string, error) {
	raw := strings.TrimSpace(header)
	if raw == "" {
		return "", nil
	}

	parts := strings.Split(raw, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid token format")
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	trn, ok := claims["trn"].(string)
	if !ok || strings.TrimSpace(trn) == "" {
		return "", errors.New("trn claim missing")
	}

	return trn, nil
}

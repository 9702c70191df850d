package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// ContextUserID gin context key carrying the authenticated actor id
const ContextUserID = "userID"

func parseToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

// JWTAuthMiddleware rejects requests without a valid bearer token.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// OptionalJWTMiddleware resolves the actor when a token is present but lets
// anonymous requests through. Public feeds use it so the visibility
// predicate knows who is asking.
func OptionalJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := parseToken(c); ok {
			c.Set(ContextUserID, userID)
		}
		c.Next()
	}
}

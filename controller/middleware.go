package controller

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hackdesk/hackdesk/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const identityKey = "identity"

// Auth authenticates the bearer token and resolves the caller's identity
// fresh on every request. Nothing is cached across requests: a user who
// switched teams a moment ago is authorized against the new team.
func Auth(identityService *service.IdentityService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if header == "" || tokenStr == header {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return []byte(os.Getenv("HACKDESK_JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		userID, err := primitive.ObjectIDFromHex(sub)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token subject"})
			return
		}

		caller, err := identityService.Resolve(userID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}

		ctx.Set(identityKey, caller)
		ctx.Next()
	}
}

func identity(ctx *gin.Context) *service.Identity {
	v, _ := ctx.Get(identityKey)
	caller, _ := v.(*service.Identity)
	return caller
}

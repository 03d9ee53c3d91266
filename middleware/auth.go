package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/melonapp/backend-booking/config"
	"github.com/melonapp/backend-booking/models"
)

const userContextKey = "user"

// SupabaseClaims are the claims Supabase Auth puts in its access tokens.
// Token issuance and refresh stay with Supabase; this service only verifies.
type SupabaseClaims struct {
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
	jwt.RegisteredClaims
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Error:   "Authorization required",
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Error:   "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(parts[1], &SupabaseClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.SupabaseJWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Error:   "Invalid or expired token",
			})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*SupabaseClaims)
		if !ok || claims.Subject == "" {
			c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Error:   "Invalid token claims",
			})
			c.Abort()
			return
		}

		c.Set(userContextKey, &models.AuthUser{
			ID:       claims.Subject,
			Email:    claims.Email,
			FullName: claims.UserMetadata.FullName,
		})

		c.Next()
	}
}

// CurrentUser returns the verified user for the request, or nil when the
// request was not authenticated.
func CurrentUser(c *gin.Context) *models.AuthUser {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.AuthUser)
	if !ok {
		return nil
	}
	return user
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	JWTUserIDKey  = "jwt_user_id"
	JWTEmailKey   = "jwt_email"
	JWTIsAdminKey = "jwt_is_admin"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTAuth validates the bearer token and stores its claims on the
// context. Requests without a valid access token are rejected.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractClaims(c, jwtService)
		if !ok {
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// OptionalJWTAuth stores claims when a valid token is present but lets
// anonymous requests through. Handlers can then vary their response
// for signed-in visitors.
func OptionalJWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if strings.HasPrefix(authHeader, BearerPrefix) {
			tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
			if claims, err := jwtService.ValidateAccessToken(tokenString); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireAdmin rejects requests whose token does not carry the admin
// flag. Must run after JWTAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(JWTIsAdminKey) {
			abortWithError(c, http.StatusForbidden, dto.ErrCodeForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}

func extractClaims(c *gin.Context, jwtService *auth.JWTService) (*auth.Claims, bool) {
	authHeader := c.GetHeader(AuthHeaderKey)
	if authHeader == "" {
		abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Missing authorization header")
		return nil, false
	}
	if !strings.HasPrefix(authHeader, BearerPrefix) {
		abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Invalid authorization header format")
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
	if tokenString == "" {
		abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Missing token")
		return nil, false
	}

	claims, err := jwtService.ValidateAccessToken(tokenString)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Token validation failed")
		return nil, false
	}

	return claims, true
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(JWTClaimsKey, claims)
	c.Set(JWTUserIDKey, claims.UserID)
	c.Set(JWTEmailKey, claims.Email)
	c.Set(JWTIsAdminKey, claims.IsAdmin)
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}

// GetJWTClaims returns the validated claims stored on the context, or nil
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if v, exists := c.Get(JWTClaimsKey); exists {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetJWTUserID returns the authenticated user's ID string, or ""
func GetJWTUserID(c *gin.Context) string {
	return c.GetString(JWTUserIDKey)
}

// GetJWTEmail returns the authenticated user's email, or ""
func GetJWTEmail(c *gin.Context) string {
	return c.GetString(JWTEmailKey)
}

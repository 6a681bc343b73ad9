package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brightcover/internal/auth"
	"brightcover/pkg"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "A valid bearer token is required", http.StatusUnauthorized)

// RequireAdmin guards the staff console routes with a bearer token check.
func RequireAdmin(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := auth.ValidateToken(token, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set("admin_email", claims.Email)
		c.Next()
	}
}

// CORS allows the public website frontends to call the capture endpoints.
// The allowed origin is a single configured value, "*" in development.
func CORS(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

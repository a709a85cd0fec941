package middleware

import (
	"net/http"

	customErrors "github.com/plateful/backend/internal/auth/errors"
	authsvc "github.com/plateful/backend/internal/auth/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PrincipalKey is where the authenticated account id lands in the gin context.
const PrincipalKey = "principal"

// Auth resolves the Authorization header into a principal before the handler
// runs. OPTIONS requests pass through untouched so CORS preflight is never
// blocked.
func Auth(svc authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		preflight := c.Request.Method == http.MethodOptions

		principal, err := svc.Authenticate(c.Request.Context(), c.GetHeader("Authorization"), preflight)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authMessage(err)})
			return
		}
		if !preflight {
			c.Set(PrincipalKey, principal)
		}
		c.Next()
	}
}

// Principal returns the account id Auth stored for this request.
func Principal(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func authMessage(err error) string {
	switch {
	case customErrors.IsMissingToken(err):
		return "Missing or invalid token"
	case customErrors.IsInvalidTokenPayload(err):
		return "Invalid token payload"
	default:
		return "Invalid or expired token"
	}
}

package handlers

import (
	"net/http"
	"strings"

	"electripro/internal/usecase"
	"electripro/pkg"

	"github.com/gin-gonic/gin"
)

const ownerContextKey = "owner_id"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid session", http.StatusUnauthorized)

// SessionAuth resolves the bearer token to an owner id and stores it on the
// request context. Requests without a valid session never reach the handler.
func SessionAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		ownerID, err := auth.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ownerContextKey, ownerID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func ownerFrom(c *gin.Context) (string, bool) {
	ownerID := c.GetString(ownerContextKey)
	return ownerID, ownerID != ""
}

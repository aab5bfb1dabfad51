package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"product-management/internal/domain"
	"product-management/internal/infra/token"
)

const identityKey = "identity"

func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Success: false, Message: "missing or malformed authorization header"})
			return
		}
		identity, err := h.signer.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Success: false, Message: "invalid or expired token"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

func (h *Handler) adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := currentIdentity(c)
		if !ok || identity.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, Envelope{Success: false, Message: "admin access required"})
			return
		}
		c.Next()
	}
}

func currentIdentity(c *gin.Context) (*token.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*token.Identity)
	return identity, ok
}

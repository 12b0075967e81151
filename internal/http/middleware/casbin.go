package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/you/padelsvc/internal/config"
)

// CasbinMW wraps the casbin enforcer and ownership rules for middleware
type CasbinMW struct {
	enforcer *casbin.Enforcer
	rules    []config.OwnershipRule
}

// NewCasbinMW creates new casbin middleware wrapper
func NewCasbinMW(enforcer *casbin.Enforcer, rules []config.OwnershipRule) *CasbinMW {
	return &CasbinMW{enforcer: enforcer, rules: rules}
}

// Enforce returns the casbin authorization middleware
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		tokenIdentityID, idExists := c.Get("identity_id")
		userType, typeExists := c.Get("user_type")
		if !idExists || !typeExists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Identity or profile type not found in token"})
			c.Abort()
			return
		}

		path := c.Request.URL.Path
		method := c.Request.Method

		// Ownership rules compare a request parameter against the token
		// identity, matched on the route pattern.
		isOwner := false
		for _, rule := range mw.rules {
			if rule.Path == c.FullPath() && rule.Method == method {
				requestID := extractIdentityID(c, rule.Source, rule.ParamName)
				if requestID != "" && requestID == tokenIdentityID.(string) {
					isOwner = true
					break
				}
			}
		}

		casbinRole := "role_" + userType.(string)
		allowed, err := mw.enforcer.Enforce(casbinRole, path, method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			c.Abort()
			return
		}

		// Owners get a second chance under role_owner.
		if !allowed && isOwner {
			allowed, err = mw.enforcer.Enforce("role_owner", path, method)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed for owner"})
				c.Abort()
				return
			}
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access Denied"})
			c.Abort()
			return
		}

		c.Next()
	})
}

func extractIdentityID(c *gin.Context, source, paramName string) string {
	switch source {
	case "path":
		return c.Param(paramName)
	case "query":
		return c.Query(paramName)
	case "header":
		return c.GetHeader(paramName)
	}
	return ""
}

package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/qr-menu-app/utils"
)

// OwnerOnly gates the destructive menu and upload endpoints. Staff
// keep read access through the plain auth middleware.
func OwnerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if userRole != "owner" {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("owner access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

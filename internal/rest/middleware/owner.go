package middleware

import (
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/logger"
	"github.com/coursebill/coursebill/internal/types"
	"github.com/gin-gonic/gin"
)

// OwnerMiddleware extracts the owner (tenant) id scoping the request. How the
// header gets authenticated is outside this service; upstream infrastructure
// sets it.
func OwnerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetHeader(types.HeaderOwnerID)
		if ownerID == "" {
			c.Error(ierr.NewError("missing owner header").
				WithHintf("header %s is required", types.HeaderOwnerID).
				Mark(ierr.ErrPermissionDenied))
			c.Abort()
			return
		}

		ctx := types.SetTenantID(c.Request.Context(), ownerID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

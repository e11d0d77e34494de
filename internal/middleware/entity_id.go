package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/project-tracker/internal/constants"
	apierrors "github.com/yukikurage/project-tracker/internal/errors"
)

// RequireEntityID parses the :id route parameter as a uuid
func RequireEntityID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil || id == uuid.Nil {
			apierrors.BadRequest(c, "Invalid id")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyEntityID, id)
		c.Next()
	}
}

// GetEntityID retrieves the id stored by RequireEntityID
func GetEntityID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(constants.ContextKeyEntityID)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok
}
